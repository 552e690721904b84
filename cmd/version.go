package cmd

import (
	"fmt"

	"github.com/inovacc/ghdl/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", application.AppName, application.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
