package cmd

import (
	"os"

	"github.com/inovacc/ghdl/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Download GitHub folders",
	Long: `ghdl downloads the contents of a GitHub folder from its browsable URL
and can refresh previously downloaded folders against the remote.

Every downloaded folder carries a hidden descriptor file recording where
it came from, so 'ghdl refresh' can re-synchronize it later.

Authentication:
  Requests are anonymous by default, which is subject to GitHub's low
  unauthenticated rate limit. A token is picked up from (in priority order):
  1. --token flag
  2. GITHUB_TOKEN environment variable
  3. GH_TOKEN environment variable
  4. gh CLI authentication`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("token", "", "GitHub token (default: auto-detect)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
