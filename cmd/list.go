package cmd

import (
	"fmt"

	"github.com/inovacc/ghdl/internal/core"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List downloaded folders",
	Long: `List every downloaded folder found under the base directory, with the
remote coordinates it was downloaded from. Purely local; no remote calls.

Examples:
  ghdl list
  ghdl list --base-dir ~/vendor --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("base-dir", "b", ".", "Base directory to search for downloaded folders")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	baseDir, _ := cmd.Flags().GetString("base-dir")
	jsonOut, _ := cmd.Flags().GetBool("json")

	folders, err := core.ListDownloaded(baseDir)
	if err != nil {
		return err
	}

	if jsonOut {
		return outputJSON(folders)
	}

	if len(folders) == 0 {
		fmt.Printf("No downloaded folders found in %s\n", baseDir)

		return nil
	}

	for _, folder := range folders {
		fmt.Printf("%s\n    %s\n", folder.Dir, folder.Descriptor.Folder())
	}

	return nil
}
