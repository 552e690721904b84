// Package giturl parses browsable GitHub folder URLs into addressable
// coordinates.
package giturl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const defaultHost = "github.com"

// Parse failure kinds, matched with errors.Is.
var (
	// ErrMalformedLink means the input is not a well-formed absolute URL.
	ErrMalformedLink = errors.New("malformed link")

	// ErrWrongHost means the URL points at a host other than github.com.
	ErrWrongHost = errors.New("not a github.com link")

	// ErrUnsupportedShape means the URL path is not the folder-browsing
	// shape owner/repo/tree/ref[/path].
	ErrUnsupportedShape = errors.New("unsupported link shape")
)

// Folder addresses a directory inside a repository at a specific revision.
// An empty Path means the repository root.
type Folder struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// FullName returns the "owner/repo" string
func (f *Folder) FullName() string {
	return fmt.Sprintf("%s/%s", f.Owner, f.Repo)
}

// Child returns the coordinates of a direct subdirectory.
func (f *Folder) Child(name string) *Folder {
	childPath := name
	if f.Path != "" {
		childPath = f.Path + "/" + name
	}

	return &Folder{Owner: f.Owner, Repo: f.Repo, Ref: f.Ref, Path: childPath}
}

// String renders the coordinates for logs and error messages.
func (f *Folder) String() string {
	if f.Path == "" {
		return fmt.Sprintf("%s/%s@%s", f.Owner, f.Repo, f.Ref)
	}

	return fmt.Sprintf("%s/%s@%s:%s", f.Owner, f.Repo, f.Ref, f.Path)
}

// ParseFolderURL parses a browsable GitHub folder URL into Folder
// coordinates. Supported shapes:
//   - https://github.com/owner/repo/tree/ref
//   - https://github.com/owner/repo/tree/ref/path/to/dir
//
// No network access; pure string parsing.
func ParseFolderURL(raw string) (*Folder, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrMalformedLink, raw)
	}

	if u.Hostname() != defaultHost {
		return nil, fmt.Errorf("%w: host %q", ErrWrongHost, u.Hostname())
	}

	segments := splitSegments(u.Path)
	if len(segments) < 4 || segments[2] != "tree" {
		return nil, fmt.Errorf("%w: expected https://github.com/owner/repo/tree/ref[/path]", ErrUnsupportedShape)
	}

	folder := &Folder{
		Owner: segments[0],
		Repo:  segments[1],
		Ref:   segments[3],
	}

	if len(segments) > 4 {
		folder.Path = strings.Join(segments[4:], "/")
	}

	return folder, nil
}

func splitSegments(path string) []string {
	var segments []string

	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}
