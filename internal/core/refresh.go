package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/ghdl/internal/metadata"
	"github.com/inovacc/ghdl/internal/resolver"
)

// RefreshSummary reports what a refresh run did, by original link.
type RefreshSummary struct {
	Refreshed []string
	Skipped   []string
}

// Empty reports whether the run found no descriptors at all.
func (s *RefreshSummary) Empty() bool {
	return len(s.Refreshed) == 0 && len(s.Skipped) == 0
}

// Refresh re-synchronizes every downloaded folder found under baseDir
// against the remote. A folder whose remote no longer exists (404) is
// skipped with a warning; a rate limit (403) or any other probe failure
// aborts the whole run, since it would poison every remaining probe too.
func Refresh(ctx context.Context, baseDir string, opts Options) (*RefreshSummary, error) {
	paths, err := metadata.Discover(baseDir)
	if err != nil {
		return nil, err
	}

	summary := &RefreshSummary{}
	if len(paths) == 0 {
		return summary, nil
	}

	logger := opts.logger()

	r, err := newResolver(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, descriptorPath := range paths {
		descriptor, err := metadata.Read(descriptorPath)
		if err != nil {
			return nil, err
		}

		folder := descriptor.Folder()

		logger.Info("refreshing",
			slog.String("url", descriptor.URL),
			slog.String("folder", folder.String()),
		)

		if err := r.Probe(ctx, folder); err != nil {
			if errors.Is(err, resolver.ErrNotFound) {
				logger.Warn("remote folder no longer exists, skipping",
					slog.String("url", descriptor.URL),
				)

				summary.Skipped = append(summary.Skipped, descriptor.URL)

				continue
			}

			return nil, err
		}

		dir := filepath.Dir(descriptorPath)
		if err := clearFolder(dir); err != nil {
			return nil, err
		}

		if err := r.Resolve(ctx, folder, dir); err != nil {
			return nil, err
		}

		summary.Refreshed = append(summary.Refreshed, descriptor.URL)
	}

	return summary, nil
}

// clearFolder removes everything inside dir except the descriptor file.
func clearFolder(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() == metadata.Filename {
			continue
		}

		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", filepath.Join(dir, entry.Name()), err)
		}
	}

	return nil
}
