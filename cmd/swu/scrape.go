package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matanlurey/swu/api"
	"github.com/matanlurey/swu/cache"
	"github.com/matanlurey/swu/card"
	"github.com/matanlurey/swu/log"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the card list and write it as a flat JSON file",
	Long: `Scrape walks every page of the card list API, flattens each record into a
card and writes the result to a single JSON file. Alternate printings are
folded into the card they are a variant of; records without an expansion
are dropped.

Flags can also be set through the environment (SWU_ENDPOINT, SWU_CACHE,
SWU_OUTPUT), with explicitly passed flags taking precedence.`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().String("endpoint", api.DefaultBaseURL, "card list API endpoint")
	scrapeCmd.Flags().String("cache", "", "directory to cache raw API pages in (empty disables caching)")
	scrapeCmd.Flags().StringP("output", "o", "cards.json", "file to write the card list to")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	v, err := resolveConfig(cmd, "endpoint", "cache", "output")
	if err != nil {
		return err
	}
	endpoint := v.GetString("endpoint")
	cacheDir := v.GetString("cache")
	output := v.GetString("output")

	options := []api.ClientOption{api.WithBaseURL(endpoint)}
	if cacheDir != "" {
		log.Infof("Caching raw pages in %s", cacheDir)
		options = append(options, api.WithCache(cache.New(cacheDir)))
	}
	client := api.NewClient(options...)

	collector := api.NewCollector()
	if err := client.Cards(cmd.Context(), collector.Add); err != nil {
		return err
	}

	cards := collector.Cards()
	if err := card.Save(output, cards); err != nil {
		return err
	}

	log.Infow("Card list written",
		"cards", len(cards),
		"variants", collector.Variants(),
		"unreleased", collector.Unreleased(),
		"output", output,
	)

	color.Green("Scraped %d cards into %s", len(cards), output)
	if collector.Variants()+collector.Unreleased() > 0 {
		fmt.Printf("Folded %d variant printings, dropped %d unreleased records\n",
			collector.Variants(), collector.Unreleased())
	}

	return nil
}
