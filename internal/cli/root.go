// Package cli implements the catalookup-cli commands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	catalogLocation string
	fetchTimeout    int
	shopName        string
	logLevel        string
)

var rootCmd = &cobra.Command{
	Use:   "catalookup-cli",
	Short: "Product catalog assistant for Order 1057 codes",
	Long: `catalookup-cli - look up catalog positions by hierarchical code or by words
  - catalookup-cli query 1.2.5        exact, partial and similar code matches
  - catalookup-cli query насос        keyword search over product names
  - catalookup-cli chat               interactive assistant`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogLocation, "catalog", "",
		"catalog JSON file path or http(s) URL (default: from config/<ENV>.yaml)")
	rootCmd.PersistentFlags().IntVar(&fetchTimeout, "fetch-timeout", 10, "catalog download timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&shopName, "shop", "", "shop named in availability lines (default: vdm.ru)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}
