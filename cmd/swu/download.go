package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matanlurey/swu/assets"
	"github.com/matanlurey/swu/card"
	"github.com/matanlurey/swu/log"
)

const downloadTimeout = time.Minute

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the art referenced by a scraped card file",
	Long: `Download reads a card file produced by scrape and fetches every image it
references into <output>/<front|back|thumb>/<style>/<set>-<number>.png.
Images already on disk are kept, so an interrupted run can simply be
restarted.

Flags can also be set through the environment (SWU_INPUT, SWU_OUTPUT,
SWU_CONCURRENCY), with explicitly passed flags taking precedence.`,
	Args: cobra.NoArgs,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringP("input", "i", "cards.json", "card file to read")
	downloadCmd.Flags().StringP("output", "o", "assets", "directory to download images into")
	downloadCmd.Flags().IntP("concurrency", "c", assets.DefaultWorkers, "number of parallel downloads")
	downloadCmd.Flags().Bool("dry-run", false, "list what would be downloaded without fetching anything")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	v, err := resolveConfig(cmd, "input", "output", "concurrency")
	if err != nil {
		return err
	}
	input := v.GetString("input")
	output := v.GetString("output")
	workers := v.GetInt("concurrency")
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	cards, err := card.Load(input)
	if err != nil {
		return err
	}

	resolved := assets.Resolve(cards)
	log.Infof("Resolved %d images from %d cards", len(resolved), len(cards))

	if dryRun {
		fmt.Printf("%d images would be downloaded into %s\n", len(resolved), output)
		return nil
	}

	client := &http.Client{Timeout: downloadTimeout}
	summary := assets.Fetch(cmd.Context(), client, output, resolved, workers)

	color.Green("Fetched %d images into %s", summary.Fetched, output)
	if summary.Skipped > 0 {
		fmt.Printf("Kept %d images that were already there\n", summary.Skipped)
	}
	if summary.Failed > 0 {
		color.Red("%d downloads failed", summary.Failed)
		return fmt.Errorf("%d of %d downloads failed", summary.Failed, len(resolved))
	}

	return nil
}
