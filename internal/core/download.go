package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/inovacc/ghdl/internal/giturl"
	"github.com/inovacc/ghdl/internal/metadata"
	"github.com/inovacc/ghdl/internal/resolver"
)

// Options carries cross-cutting settings shared by download and refresh.
type Options struct {
	// Token authenticates remote calls when non-empty.
	Token string

	// BaseURL overrides the GitHub API endpoint. Empty means the public
	// API; mainly useful for tests and enterprise installs.
	BaseURL string

	// Logger receives progress and warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}

// Download fetches the folder behind link into output, recursively.
// output must not exist yet, or must be an empty directory.
func Download(ctx context.Context, link, output string, opts Options) error {
	folder, err := giturl.ParseFolderURL(link)
	if err != nil {
		return err
	}

	if err := ensureEmptyDir(output); err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// The descriptor goes in before the first remote call so a crashed
	// download still records where the folder came from.
	if err := metadata.Write(metadata.NewDescriptor(folder, link), output); err != nil {
		return err
	}

	logger := opts.logger()
	logger.Info("downloading",
		slog.String("folder", folder.String()),
		slog.String("output", output),
	)

	r, err := newResolver(ctx, opts)
	if err != nil {
		return err
	}

	return r.Resolve(ctx, folder, output)
}

func newResolver(ctx context.Context, opts Options) (*resolver.Resolver, error) {
	client := NewGitHubClient(ctx, opts.Token)

	if opts.BaseURL != "" {
		base, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", opts.BaseURL, err)
		}

		client.BaseURL = base
	}

	return resolver.New(client, NewDownloadClient(ctx, opts.Token), opts.logger()), nil
}

// ensureEmptyDir rejects an existing non-empty path. A missing path is
// fine, the caller creates it.
func ensureEmptyDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to inspect output directory: %w", err)
	}

	if len(entries) > 0 {
		return fmt.Errorf("output directory %q is not empty", path)
	}

	return nil
}
