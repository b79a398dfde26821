package levels

import (
	"math"

	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

// Entity describes one node to spawn. Props holds the author's custom
// fields; every accessor returns the caller's default when a field is
// missing or has the wrong type.
type Entity struct {
	Type   string                 `json:"type"`
	X      float64                `json:"x"`
	Y      float64                `json:"y"`
	Sprite gfx.Sprite             `json:"sprite"`
	Props  map[string]interface{} `json:"props,omitempty"`
}

// Position returns the spawn point.
func (e Entity) Position() geom.Vec {
	return geom.V(e.X, e.Y)
}

// Has reports whether the field is present.
func (e Entity) Has(key string) bool {
	_, ok := e.Props[key]
	return ok
}

func (e Entity) Bool(key string, def bool) bool {
	if v, ok := e.Props[key].(bool); ok {
		return v
	}
	return def
}

func (e Entity) String(key, def string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return def
}

func (e Entity) Float(key string, def float64) float64 {
	switch v := e.Props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (e Entity) Int(key string, def int) int {
	switch v := e.Props[key].(type) {
	case float64:
		return int(math.Round(v))
	case int:
		return v
	}
	return def
}

// Point reads either [x, y] or {"x": .., "y": ..}.
func (e Entity) Point(key string, def geom.Vec) geom.Vec {
	switch v := e.Props[key].(type) {
	case []interface{}:
		if len(v) != 2 {
			return def
		}
		x, okx := v[0].(float64)
		y, oky := v[1].(float64)
		if okx && oky {
			return geom.V(x, y)
		}
	case map[string]interface{}:
		x, okx := v["x"].(float64)
		y, oky := v["y"].(float64)
		if okx && oky {
			return geom.V(x, y)
		}
	}
	return def
}
