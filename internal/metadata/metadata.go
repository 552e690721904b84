// Package metadata persists the per-folder descriptor that records where a
// downloaded folder came from, and discovers descriptors back during
// refresh.
package metadata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inovacc/ghdl/internal/giturl"
)

// Filename is the fixed hidden name of the descriptor file written into
// every downloaded folder. Its presence is the sole marker of a managed
// folder.
const Filename = ".github-dl.json"

// Descriptor captures folder coordinates plus the original link the user
// supplied. One descriptor lives inside each downloaded folder; the
// directory holding it IS the folder it describes.
type Descriptor struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	Reference string `json:"reference"`
	Path      string `json:"path"`
	URL       string `json:"url"`
}

// CorruptError indicates a descriptor file exists but cannot be parsed.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt descriptor %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// NewDescriptor builds a descriptor from folder coordinates and the
// original link.
func NewDescriptor(folder *giturl.Folder, link string) *Descriptor {
	return &Descriptor{
		Owner:     folder.Owner,
		Repo:      folder.Repo,
		Reference: folder.Ref,
		Path:      folder.Path,
		URL:       link,
	}
}

// Folder returns the coordinates the descriptor was created from.
func (d *Descriptor) Folder() *giturl.Folder {
	return &giturl.Folder{
		Owner: d.Owner,
		Repo:  d.Repo,
		Ref:   d.Reference,
		Path:  d.Path,
	}
}

// Write serializes the descriptor into dir. It runs before the first
// remote fetch of a download so a crashed run still leaves provenance.
func Write(d *Descriptor, dir string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, Filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}

	return nil
}

// Read loads a descriptor from its file path.
func Read(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}

	return &d, nil
}

// Discover walks root in a single pass and returns the path of every
// descriptor file found, at any depth.
func Discover(root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() && entry.Name() == Filename {
			found = append(found, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return found, nil
}
