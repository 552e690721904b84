package core

import (
	"path/filepath"

	"github.com/inovacc/ghdl/internal/metadata"
)

// DownloadedFolder pairs a descriptor with the local folder it describes.
type DownloadedFolder struct {
	Dir        string               `json:"dir"`
	Descriptor *metadata.Descriptor `json:"descriptor"`
}

// ListDownloaded enumerates every managed folder under baseDir. Purely
// local; no remote calls.
func ListDownloaded(baseDir string) ([]DownloadedFolder, error) {
	paths, err := metadata.Discover(baseDir)
	if err != nil {
		return nil, err
	}

	folders := make([]DownloadedFolder, 0, len(paths))

	for _, path := range paths {
		descriptor, err := metadata.Read(path)
		if err != nil {
			return nil, err
		}

		folders = append(folders, DownloadedFolder{
			Dir:        filepath.Dir(path),
			Descriptor: descriptor,
		})
	}

	return folders, nil
}
