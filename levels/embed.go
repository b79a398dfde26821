package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is one authored map.
type Level struct {
	Name       string   `json:"name"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	CellSize   int      `json:"cell_size"`
	Offset     Point    `json:"offset"`
	Colliders  [][]int  `json:"colliders"`
	Tiles      []Tile   `json:"tiles,omitempty"`
	Background string   `json:"background,omitempty"`
	Entities   []Entity `json:"entities,omitempty"`
}

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is a visible platform tile.
type Tile struct {
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Sprite gfx.Sprite `json:"sprite"`
}

// ErrNotFound is returned when a provider has no level by that name.
var ErrNotFound = errors.New("level not found")

// Provider hands out levels by name.
type Provider interface {
	Load(name string) (*Level, error)
	Names() ([]string, error)
}

// FSProvider reads "<name>.json" files from a file system.
type FSProvider struct {
	fsys fs.FS
}

// Embedded returns the levels compiled into the binary.
func Embedded() *FSProvider {
	return &FSProvider{fsys: LevelsFS}
}

// Dir returns a provider reading from a directory on disk.
func Dir(dir string) *FSProvider {
	return &FSProvider{fsys: os.DirFS(dir)}
}

// FromFS wraps any file system.
func FromFS(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

func (p *FSProvider) Load(name string) (*Level, error) {
	if p == nil || p.fsys == nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, ErrNotFound)
	}
	file := fileName(name)
	data, err := fs.ReadFile(p.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("levels: load %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	return lvl, nil
}

func (p *FSProvider) Names() ([]string, error) {
	if p == nil || p.fsys == nil {
		return nil, nil
	}
	matches, err := fs.Glob(p.fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the fields the runtime depends on.
func (l *Level) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("invalid level size %dx%d", l.Width, l.Height)
	case l.CellSize <= 0:
		return fmt.Errorf("invalid cell size %d", l.CellSize)
	}
	return nil
}

// StaticColliders turns every non-zero collider cell into a cell-sized
// rectangle in world space.
func (l *Level) StaticColliders() []geom.Rect {
	if l == nil || l.CellSize <= 0 {
		return nil
	}
	cell := float64(l.CellSize)
	var out []geom.Rect
	for y, row := range l.Colliders {
		for x, v := range row {
			if v <= 0 {
				continue
			}
			out = append(out, geom.R(
				float64(x)*cell+float64(l.Offset.X),
				float64(y)*cell+float64(l.Offset.Y),
				cell, cell,
			))
		}
	}
	return out
}

// Size returns the world size in pixels.
func (l *Level) Size() geom.Vec {
	if l == nil {
		return geom.Zero
	}
	return geom.V(float64(l.Width), float64(l.Height))
}

func fileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
