package core

import (
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
)

const defaultHost = "github.com"

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceFlag      TokenSource = "flag"
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// ResolveToken attempts to find a GitHub token from multiple sources.
// Priority order:
//  1. flagToken (explicit --token flag)
//  2. GITHUB_TOKEN environment variable
//  3. GH_TOKEN environment variable
//  4. gh CLI auth (config file)
//
// An empty result is valid: requests are then anonymous.
func ResolveToken(flagToken string) (token string, source TokenSource) {
	if flagToken != "" {
		return flagToken, TokenSourceFlag
	}

	if token = os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnvGitHub
	}

	if token = os.Getenv("GH_TOKEN"); token != "" {
		return token, TokenSourceEnvGH
	}

	if token, _ = auth.TokenForHost(defaultHost); token != "" {
		return token, TokenSourceGHCLI
	}

	return "", TokenSourceNone
}
