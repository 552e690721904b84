package cmd

import (
	"fmt"

	"github.com/inovacc/ghdl/internal/core"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh all downloaded folders",
	Long: `Re-synchronize every previously downloaded folder found under the base
directory against the current state of the remote.

Folders whose remote no longer exists are skipped with a warning. A rate
limit aborts the whole run; supply a token to raise the limit.

Examples:
  ghdl refresh
  ghdl refresh --base-dir ~/vendor`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().StringP("base-dir", "b", ".", "Base directory to search for downloaded folders")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	baseDir, _ := cmd.Flags().GetString("base-dir")

	summary, err := core.Refresh(cmd.Context(), baseDir, commandOptions(cmd))
	if err != nil {
		return err
	}

	if summary.Empty() {
		fmt.Printf("No downloaded folders found in %s\n", baseDir)

		return nil
	}

	fmt.Printf("Refreshed %d folder(s)", len(summary.Refreshed))

	if len(summary.Skipped) > 0 {
		fmt.Printf(", skipped %d (remote gone)", len(summary.Skipped))
	}

	fmt.Println()

	return nil
}
