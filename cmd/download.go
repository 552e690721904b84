package cmd

import (
	"fmt"

	"github.com/inovacc/ghdl/internal/core"
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <link>",
	Short: "Download a GitHub folder",
	Long: `Download the contents of a GitHub folder, recursively, from its
browsable URL (https://github.com/owner/repo/tree/ref[/path]).

The output directory must not exist yet or must be empty. A hidden
descriptor file (.github-dl.json) is written into it so the folder can be
refreshed later with 'ghdl refresh'.

Examples:
  ghdl download https://github.com/acme/widgets/tree/main/src/lib --output ./lib
  ghdl download https://github.com/acme/widgets/tree/v1.2.0 --output ./widgets`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringP("output", "o", "", "Output directory to save the folder")
	_ = downloadCmd.MarkFlagRequired("output")
}

func runDownload(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	if err := core.Download(cmd.Context(), args[0], output, commandOptions(cmd)); err != nil {
		return err
	}

	fmt.Printf("Downloaded to %s\n", output)

	return nil
}
