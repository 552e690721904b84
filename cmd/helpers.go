package cmd

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/inovacc/ghdl/internal/core"
	"github.com/spf13/cobra"
)

// newLogger creates the logger shared by all commands. Progress lands on
// stderr at info level; --verbose adds debug detail.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// commandOptions assembles core.Options from the persistent flags.
func commandOptions(cmd *cobra.Command) core.Options {
	flagToken, _ := cmd.Flags().GetString("token")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := newLogger(verbose)

	token, source := core.ResolveToken(flagToken)
	if token != "" {
		logger.Debug("using GitHub token", slog.String("source", string(source)))
	} else {
		logger.Debug("no GitHub token found, requests are anonymous")
	}

	return core.Options{Token: token, Logger: logger}
}

// outputJSON encodes data as indented JSON to stdout
func outputJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}
