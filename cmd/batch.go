package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/product"
)

var (
	barcodeFile string
	filterExpr  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [barcode...]",
	Short: "Look up several barcodes concurrently",
	Long: `Look up several barcodes concurrently. Barcodes come from the arguments
and, with --file, one per line from a file ("-" reads stdin).

--filter takes a filter name from the config or an inline expression, e.g.

  eandb batch --file codes.txt --filter 'isVegan() and nutriment("proteins") > 5'

Only found products matching the filter are printed.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&barcodeFile, "file", "", "read barcodes from file, one per line (- for stdin)")
	batchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter name or expression applied to found products")
}

func runBatch(cmd *cobra.Command, args []string) error {
	barcodes := append([]string{}, args...)
	if barcodeFile != "" {
		fromFile, err := readBarcodes(cmd.InOrStdin(), barcodeFile)
		if err != nil {
			return err
		}
		barcodes = append(barcodes, fromFile...)
	}
	if len(barcodes) == 0 {
		return fmt.Errorf("no barcodes given")
	}

	logger.Info().Int("count", len(barcodes)).Msg("Looking up barcodes")

	ctx := cmd.Context()
	results := client.LookupMany(ctx, barcodes)

	if filterExpr != "" {
		var err error
		results, err = filterResults(cmd, results)
		if err != nil {
			return err
		}
	}

	out, err := formatter.FormatResults(results)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}

// filterResults keeps the found products that match --filter
func filterResults(cmd *cobra.Command, results []eandb.Result) ([]eandb.Result, error) {
	byProduct := make(map[*product.Product]eandb.Result, len(results))
	products := make([]*product.Product, 0, len(results))
	for _, r := range results {
		if s := r.Product(); s != nil {
			byProduct[s.Product] = r
			products = append(products, s.Product)
		}
	}

	matches, err := filters.Apply(cmd.Context(), filterExpr, products)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	filtered := make([]eandb.Result, 0, len(matches))
	for _, p := range matches {
		filtered = append(filtered, byProduct[p])
	}

	logger.Info().
		Str("filter", filterExpr).
		Int("found", len(products)).
		Int("matched", len(filtered)).
		Msg("Applied filter")

	return filtered, nil
}

// readBarcodes reads one barcode per line, skipping blanks and # comments
func readBarcodes(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open barcode file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var barcodes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		barcodes = append(barcodes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read barcodes: %w", err)
	}
	return barcodes, nil
}
