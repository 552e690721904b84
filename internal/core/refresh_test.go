package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/ghdl/internal/metadata"
	"github.com/inovacc/ghdl/internal/resolver"
	"github.com/stretchr/testify/require"
)

// seedFolder creates a previously-downloaded folder: a descriptor for the
// given remote path plus one stale file that a refresh should replace.
func seedFolder(t *testing.T, baseDir, name, remotePath string) (dir, link string) {
	t.Helper()

	dir = filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))

	link = fmt.Sprintf("https://github.com/acme/widgets/tree/main/%s", remotePath)
	descriptor := &metadata.Descriptor{
		Owner:     "acme",
		Repo:      "widgets",
		Reference: "main",
		Path:      remotePath,
		URL:       link,
	}
	require.NoError(t, metadata.Write(descriptor, dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stale-dir", "nested"), 0755))

	return dir, link
}

func TestRefreshRepopulates(t *testing.T) {
	srv, _ := newFakeAPI(t)

	baseDir := t.TempDir()
	dir, link := seedFolder(t, baseDir, "mirror", "alive")

	summary, err := Refresh(context.Background(), baseDir, testOptions(srv))
	require.NoError(t, err)
	require.Equal(t, []string{link}, summary.Refreshed)
	require.Empty(t, summary.Skipped)

	// stale content cleared, remote content in, descriptor kept
	require.NoFileExists(t, filepath.Join(dir, "stale.txt"))
	require.NoDirExists(t, filepath.Join(dir, "stale-dir"))
	require.FileExists(t, filepath.Join(dir, "fresh.txt"))
	require.FileExists(t, filepath.Join(dir, metadata.Filename))
}

func TestRefreshSkipsMissingRemote(t *testing.T) {
	srv, _ := newFakeAPI(t)

	baseDir := t.TempDir()
	goneDir, goneLink := seedFolder(t, baseDir, "a-gone", "gone")
	aliveDir, aliveLink := seedFolder(t, baseDir, "b-alive", "alive")

	summary, err := Refresh(context.Background(), baseDir, testOptions(srv))
	require.NoError(t, err)
	require.Equal(t, []string{aliveLink}, summary.Refreshed)
	require.Equal(t, []string{goneLink}, summary.Skipped)

	// the skipped folder keeps its local content untouched
	require.FileExists(t, filepath.Join(goneDir, "stale.txt"))
	require.DirExists(t, filepath.Join(goneDir, "stale-dir"))

	// the live folder was still processed after the skip
	require.FileExists(t, filepath.Join(aliveDir, "fresh.txt"))
	require.NoFileExists(t, filepath.Join(aliveDir, "stale.txt"))
}

func TestRefreshAbortsOnRateLimit(t *testing.T) {
	srv, rec := newFakeAPI(t)

	baseDir := t.TempDir()
	seedFolder(t, baseDir, "a-limited", "limited")
	laterDir, _ := seedFolder(t, baseDir, "b-later", "later")

	summary, err := Refresh(context.Background(), baseDir, testOptions(srv))

	var rateLimited *resolver.RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	require.Nil(t, summary)

	// the run stopped before touching the remaining descriptor
	require.Equal(t, []string{"limited"}, rec.requested())
	require.FileExists(t, filepath.Join(laterDir, "stale.txt"))
}

func TestRefreshAbortsOnProbeFailure(t *testing.T) {
	srv, _ := newFakeAPI(t)

	baseDir := t.TempDir()
	seedFolder(t, baseDir, "mirror", "boom")

	_, err := Refresh(context.Background(), baseDir, testOptions(srv))

	var listing *resolver.ListingError
	require.ErrorAs(t, err, &listing)
	require.Equal(t, 500, listing.StatusCode)
}

func TestRefreshNothingFound(t *testing.T) {
	srv, rec := newFakeAPI(t)

	summary, err := Refresh(context.Background(), t.TempDir(), testOptions(srv))
	require.NoError(t, err)
	require.True(t, summary.Empty())
	require.Empty(t, rec.requested(), "no remote calls without descriptors")
}

func TestRefreshCorruptDescriptor(t *testing.T) {
	srv, rec := newFakeAPI(t)

	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, metadata.Filename), []byte("{broken"), 0644))

	_, err := Refresh(context.Background(), baseDir, testOptions(srv))

	var corrupt *metadata.CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Empty(t, rec.requested())
}

func TestListDownloaded(t *testing.T) {
	baseDir := t.TempDir()
	dir, link := seedFolder(t, baseDir, "mirror", "docs")

	folders, err := ListDownloaded(baseDir)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	require.Equal(t, dir, folders[0].Dir)
	require.Equal(t, link, folders[0].Descriptor.URL)
	require.Equal(t, "docs", folders[0].Descriptor.Path)
}

func TestListDownloadedEmpty(t *testing.T) {
	folders, err := ListDownloaded(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, folders)
}
