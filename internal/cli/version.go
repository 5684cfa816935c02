package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/catalookup/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.Get().String("catalookup-cli"))
	},
}
