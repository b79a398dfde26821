// Package assets locates the sprite sheet and sound effects, either compiled
// into the binary or read from a directory on disk.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	SheetFile = "sheet.png"
	soundDir  = "sfx"
	soundExt  = ".wav"
)

//go:embed sheet.png sfx/*.wav
var embedded embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	return embedded
}

// Open returns dir as a file system, or the embedded assets when dir is
// empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}

// LoadImage decodes an image by assets-relative path.
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	b, err := LoadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFile reads an asset by assets-relative path.
func LoadFile(fsys fs.FS, path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", clean, err)
	}
	return b, nil
}

// SoundPath maps an effect name to its file.
func SoundPath(name string) string {
	return soundDir + "/" + name + soundExt
}

// Sounds lists the effect names available in fsys.
func Sounds(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, soundDir+"/*"+soundExt)
	if err != nil {
		return nil, fmt.Errorf("assets: list sounds: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), soundExt))
	}
	return names, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
