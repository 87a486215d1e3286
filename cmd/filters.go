package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// filtersCmd represents the filters command
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the named filters from the config",
	Args:  cobra.NoArgs,
	RunE:  runFilters,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, args []string) error {
	names := filters.ListFilters()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No filters configured")
		return nil
	}

	for _, name := range names {
		f, _ := filters.GetFilter(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, f.Expression())
	}
	return nil
}
