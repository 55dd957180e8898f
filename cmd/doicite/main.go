// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doicite CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd resolves a paper URL or DOI to a formatted citation.
var rootCmd = &cobra.Command{
	Use:   "doicite <paper URL or DOI> [<citation style>]",
	Short: "Find a paper's DOI and print its citation",
	Long: `doicite finds the DOI of a paper from its publisher page (or takes a DOI
directly) and prints a formatted citation fetched from doi.org.

The default citation style is apa. For all citation styles see:
     https://github.com/citation-style-language/styles`,
	Example: `  doicite https://dl.acm.org/doi/10.1145/3290605.3300233
  doicite 10.1038/s41586-024-07487-w ieee`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runResolve,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(viper.GetBool("verbose"))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doicite.yaml or ~/.config/doicite/doicite.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log extraction details to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doicite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doicite"))
		}
	}

	viper.SetEnvPrefix("DOICITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging sends zerolog output to stderr so stdout carries only the
// report.
func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
