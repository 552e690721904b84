// Package resolver recursively materializes a remote GitHub folder as a
// local directory tree, one contents-API listing per directory.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/ghdl/internal/giturl"
)

// Resolver walks remote directory trees. Listings go through the GitHub
// API client; raw file content is fetched from each entry's download_url
// through downloader, which shares the API client's auth transport when a
// token is configured.
type Resolver struct {
	client     *github.Client
	downloader *http.Client
	logger     *slog.Logger
}

// New creates a Resolver.
func New(client *github.Client, downloader *http.Client, logger *slog.Logger) *Resolver {
	if downloader == nil {
		downloader = http.DefaultClient
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{client: client, downloader: downloader, logger: logger}
}

// Resolve makes localDir's contents match the remote folder, recursively.
// Entries are processed sequentially in listing order; the first failure
// aborts the whole call, possibly leaving localDir partially populated.
func (r *Resolver) Resolve(ctx context.Context, folder *giturl.Folder, localDir string) error {
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", localDir, err)
	}

	entries, err := r.fetchListing(ctx, folder)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.GetName()
		target := filepath.Join(localDir, name)

		switch entry.GetType() {
		case "file":
			if entry.DownloadURL == nil {
				r.logger.Debug("file entry has no download_url, skipping",
					slog.String("name", name),
				)

				continue
			}

			if err := r.downloadFile(ctx, entry.GetDownloadURL(), name, target); err != nil {
				return err
			}
		case "dir":
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}

			if err := r.Resolve(ctx, folder.Child(name), target); err != nil {
				return err
			}
		default:
			// symlinks, submodules and anything else GitHub reports have
			// no local materialization
			r.logger.Debug("ignoring entry",
				slog.String("name", name),
				slog.String("type", entry.GetType()),
			)
		}
	}

	return nil
}

// Probe checks whether the remote folder still exists without touching the
// local filesystem. Returns ErrNotFound on 404 so refresh can tell "remote
// gone" apart from every other failure.
func (r *Resolver) Probe(ctx context.Context, folder *giturl.Folder) error {
	_, err := r.fetchListing(ctx, folder)

	var listing *ListingError
	if errors.As(err, &listing) && listing.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, folder)
	}

	return err
}

func (r *Resolver) fetchListing(ctx context.Context, folder *giturl.Folder) ([]*github.RepositoryContent, error) {
	opts := &github.RepositoryContentGetOptions{Ref: folder.Ref}

	file, dir, resp, err := r.client.Repositories.GetContents(ctx, folder.Owner, folder.Repo, folder.Path, opts)
	if err != nil {
		return nil, listingError(folder, resp, err)
	}

	if file != nil {
		return nil, fmt.Errorf("remote path %q of %s is a file, not a directory", folder.Path, folder.FullName())
	}

	return dir, nil
}

// listingError maps a failed listing response onto the error taxonomy.
// Any 403 surfaces as a rate limit regardless of actual cause.
func listingError(folder *giturl.Folder, resp *github.Response, err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{Folder: folder.String()}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitError{Folder: folder.String()}
	}

	if resp == nil {
		return fmt.Errorf("failed to list %s: %w", folder, err)
	}

	if resp.StatusCode == http.StatusForbidden {
		return &RateLimitError{Folder: folder.String()}
	}

	return &ListingError{Folder: folder.String(), StatusCode: resp.StatusCode}
}

func (r *Resolver) downloadFile(ctx context.Context, rawURL, name, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", name, err)
	}

	resp, err := r.downloader.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download file %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &DownloadError{Name: name, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	r.logger.Debug("downloaded file",
		slog.String("name", name),
		slog.Int("bytes", len(data)),
	)

	return nil
}
