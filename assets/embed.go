package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed resources/*.png
var resourcesFS embed.FS

// Default sprite file names inside a resource directory.
const (
	AtlasFile    = "atlas.png"
	TrackFile    = "track.png"
	BuildingFile = "building.png"
	StationFile  = "station.png"
)

var ErrMissingSprite = errors.New("assets: missing sprite")

// Embedded returns the resources bundled with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(resourcesFS, "resources")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return sub
}

// Resources returns the directory at dir, or the embedded resources when dir is empty.
func Resources(dir string) (fs.FS, error) {
	if strings.TrimSpace(dir) == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("resource dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resource dir %q: not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// DecodeImage reads and decodes an image by resource-relative path.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	clean := cleanResourcePath(path)
	f, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", clean, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", clean, err)
	}
	return img, nil
}

func cleanResourcePath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/resources/"); idx >= 0 {
			return s[idx+len("/resources/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "resources/") {
		return strings.TrimPrefix(s, "resources/")
	}
	return s
}
