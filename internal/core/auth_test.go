package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name       string
		flagToken  string
		envGitHub  string
		envGH      string
		wantToken  string
		wantSource TokenSource
	}{
		{
			name:       "flag wins over everything",
			flagToken:  "flag-token",
			envGitHub:  "env-token",
			envGH:      "gh-token",
			wantToken:  "flag-token",
			wantSource: TokenSourceFlag,
		},
		{
			name:       "GITHUB_TOKEN wins over GH_TOKEN",
			envGitHub:  "env-token",
			envGH:      "gh-token",
			wantToken:  "env-token",
			wantSource: TokenSourceEnvGitHub,
		},
		{
			name:       "GH_TOKEN as fallback",
			envGH:      "gh-token",
			wantToken:  "gh-token",
			wantSource: TokenSourceEnvGH,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_TOKEN", tt.envGitHub)
			t.Setenv("GH_TOKEN", tt.envGH)

			token, source := ResolveToken(tt.flagToken)
			require.Equal(t, tt.wantToken, token)
			require.Equal(t, tt.wantSource, source)
		})
	}
}
