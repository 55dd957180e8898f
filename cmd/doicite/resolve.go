package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doicite/internal/cite"
	"github.com/pdiddy/doicite/internal/report"
	"github.com/pdiddy/doicite/internal/resolve"
	"github.com/pdiddy/doicite/pkg/types"
)

const defaultStyle = "apa"

// httpClient is used for both outbound requests. Tests swap it for an
// httptest client.
var httpClient = &http.Client{}

func init() {
	rootCmd.Flags().StringP("format", "f", string(types.OutputText), "output format: text, yaml, or json")
	rootCmd.Flags().Bool("explain", false, "show every DOI candidate with its score")
	rootCmd.Flags().String("resolver", cite.DefaultResolverBase, "DOI resolver base URL")
	rootCmd.Flags().String("user-agent", "", "override the browser User-Agent used for page fetches")

	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("explain", rootCmd.Flags().Lookup("explain"))
	_ = viper.BindPFlag("resolver", rootCmd.Flags().Lookup("resolver"))
	_ = viper.BindPFlag("user_agent", rootCmd.Flags().Lookup("user-agent"))
	viper.SetDefault("style", defaultStyle)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg := types.CiteConfig{
		HTTPConfig: types.HTTPConfig{
			UserAgent: viper.GetString("user_agent"),
		},
		Style:        viper.GetString("style"),
		ResolverBase: viper.GetString("resolver"),
		Format:       types.OutputFormat(viper.GetString("format")),
		Explain:      viper.GetBool("explain"),
	}

	if err := report.CheckFormat(cfg.Format); err != nil {
		return err
	}

	style := cfg.Style
	if len(args) > 1 {
		style = args[1]
	}

	res, err := resolve.New(httpClient, cfg).Run(cmd.Context(), args[0], style)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), res, cfg.Format)
}
