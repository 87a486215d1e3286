package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/eandb/eandb"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Look up a single barcode",
	Long: `Look up a single barcode and print the product.

Exits non-zero when the API answers with an error such as an invalid barcode,
an unknown product or a rejected token.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	barcode := args[0]

	resp, err := client.Lookup(cmd.Context(), barcode)
	if err != nil {
		return err
	}

	out, err := formatter.FormatResults([]eandb.Result{{Barcode: barcode, Response: resp}})
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if errResp, ok := resp.(*eandb.ErrorResponse); ok {
		return errResp.Err()
	}
	return nil
}
