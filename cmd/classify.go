package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/eandb/eandb"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <code> <description>",
	Short: "Show how an API error would be classified",
	Long: `Classify an error code and description the way the client does, without
calling the API. Useful to check whether a 403 message is still recognised.

  eandb classify 403 "JWT expired"`,
	Args:        cobra.MinimumNArgs(2),
	Annotations: map[string]string{skipInit: "true"},
	RunE:        runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid code %q: %w", args[0], err)
	}
	description := strings.Join(args[1:], " ")

	fmt.Fprintln(cmd.OutOrStdout(), eandb.Classify(code, description))
	return nil
}
