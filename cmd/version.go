package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	buildTime  = "unknown"
)

// SetVersion sets the version reported by the version command
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = version
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipInit: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eandb %s (built %s, %s)\n", appVersion, buildTime, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
