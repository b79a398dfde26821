package scene

import (
	"sort"

	"github.com/milk9111/truecolor/levels"
)

// Constructor builds a node for a level entity.
type Constructor func(e levels.Entity) Node

// MiniGameConstructor builds a fresh mini-game.
type MiniGameConstructor func() MiniGameNode

// Registry maps level type names to constructors.
type Registry struct {
	nodes     map[string]Constructor
	miniGames map[string]MiniGameConstructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes:     make(map[string]Constructor),
		miniGames: make(map[string]MiniGameConstructor),
	}
}

// Register binds a type name to a constructor, replacing any earlier one.
func (r *Registry) Register(name string, c Constructor) {
	if r == nil || name == "" || c == nil {
		return
	}
	r.nodes[name] = c
}

// RegisterMiniGame binds a mini-game name to a constructor.
func (r *Registry) RegisterMiniGame(name string, c MiniGameConstructor) {
	if r == nil || name == "" || c == nil {
		return
	}
	r.miniGames[name] = c
}

// Create builds the node for e. Unknown type names report false.
func (r *Registry) Create(e levels.Entity) (Node, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.nodes[e.Type]
	if !ok {
		return nil, false
	}
	n := c(e)
	if n == nil {
		return nil, false
	}
	return n, true
}

// CreateMiniGame builds the named mini-game.
func (r *Registry) CreateMiniGame(name string) (MiniGameNode, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.miniGames[name]
	if !ok {
		return nil, false
	}
	m := c()
	if m == nil {
		return nil, false
	}
	return m, true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.nodes[name]
	return ok
}

// Names lists the registered entity type names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.nodes))
	for k := range r.nodes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
