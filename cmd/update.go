package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repository = "s0up4200/eandb"

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:         "update",
	Short:       "Update eandb to the latest release",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipInit: "true"},
	RunE:        runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("cannot update development build %q", appVersion)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repository)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ eandb %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "New release available: %s → %s\n%s\n", current, latest.Version(), latest.URL)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated eandb %s → %s\n", current, latest.Version())
	return nil
}
