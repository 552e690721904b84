package resolver

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a probe against a remote folder that no longer
// exists (deleted, renamed, or never pushed to this reference).
var ErrNotFound = errors.New("remote folder not found")

// RateLimitError indicates GitHub refused a listing with 403, which for
// unauthenticated clients almost always means the API rate limit.
type RateLimitError struct {
	Folder string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("failed to list %s: HTTP 403 Forbidden. Are you hitting the GitHub API rate limit? Try setting the GITHUB_TOKEN environment variable", e.Folder)
}

// ListingError reports any other non-success status from a directory
// listing.
type ListingError struct {
	Folder     string
	StatusCode int
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("failed to list %s: HTTP %d", e.Folder, e.StatusCode)
}

// DownloadError reports a non-success status fetching a file's content.
type DownloadError struct {
	Name       string
	StatusCode int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download file %s: HTTP %d", e.Name, e.StatusCode)
}
