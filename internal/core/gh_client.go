package core

import (
	"context"
	"net/http"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

// NewGitHubClient creates a GitHub API client. With a token it
// authenticates through an oauth2 transport; with an empty token it is
// anonymous, subject to the lower unauthenticated rate limit.
func NewGitHubClient(ctx context.Context, token string) *github.Client {
	return github.NewClient(newHTTPClient(ctx, token))
}

// NewDownloadClient creates the HTTP client used for raw download_url
// fetches, sharing the oauth2 transport when a token is configured.
func NewDownloadClient(ctx context.Context, token string) *http.Client {
	if c := newHTTPClient(ctx, token); c != nil {
		return c
	}

	return http.DefaultClient
}

func newHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	return oauth2.NewClient(ctx, ts)
}
