package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Library resolves track assets in a directory.
type Library struct {
	dir  string
	fsys fs.FS
}

// NewLibrary returns a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir, fsys: os.DirFS(dir)}
}

// Dir returns the directory tracks are resolved in.
func (l *Library) Dir() string {
	return l.dir
}

// Resolve returns the path of the track's asset, or ErrTrackMissing.
func (l *Library) Resolve(id int) (string, error) {
	name := AssetName(id)
	info, err := fs.Stat(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s in %s", ErrTrackMissing, name, l.dir)
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrTrackMissing, name)
	}
	return filepath.Join(l.dir, name), nil
}

// Available returns the tracks whose assets are present.
func (l *Library) Available() []Track {
	var out []Track
	for _, t := range tracks {
		if _, err := l.Resolve(t.ID); err == nil {
			out = append(out, t)
		}
	}
	return out
}
