package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matanlurey/swu/log"
)

var debug bool

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "swu",
	Short: "Scrape the Star Wars: Unlimited card list and download card art",
	Long: `swu turns the unofficial Star Wars: Unlimited card list API into a flat
JSON card file and a directory tree of card images.

Scraping and downloading are separate steps, so the card file can be
inspected or versioned before committing to the image download.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func setupLogging() error {
	var zapConf zap.Config

	if debug {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.Encoding = "console"
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zapConf.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		zapConf.EncoderConfig.EncodeCaller = nil
	}

	// Skip 1 caller, since all log calls will be done from swu/log
	built, err := zapConf.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	logger = built
	log.SetLogger(built.Sugar())

	return nil
}

// resolveConfig layers each named flag over its SWU_<NAME> environment
// variable. An explicitly set flag wins over the environment, which wins
// over the flag's default.
func resolveConfig(cmd *cobra.Command, flagNames ...string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("swu")
	v.AutomaticEnv()
	for _, flagName := range flagNames {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func main() {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	rootCmd.Version = shortVersion()
	rootCmd.SetVersionTemplate(buildInformation())
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	err := rootCmd.Execute()

	if logger != nil {
		// Don't check for errors since logger.Sync() can sometimes fail
		// even if the logs were properly displayed
		// See https://github.com/uber-go/zap/issues/328
		_ = logger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}
