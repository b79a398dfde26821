package scene

// ChildOfKind returns the first child of parent with the given kind and, when
// name is not empty, the given name. A nil parent searches the root.
func (t *Tree) ChildOfKind(parent Node, kind Kind, name string) Node {
	for _, c := range t.Children(parent) {
		if c.Kind() != kind {
			continue
		}
		if name != "" && c.Core().Name != name {
			continue
		}
		return c
	}
	return nil
}

// ChildrenOfKind returns every child of parent with the given kind.
func (t *Tree) ChildrenOfKind(parent Node, kind Kind) []Node {
	var out []Node
	for _, c := range t.Children(parent) {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindKind walks the whole tree for nodes of kind.
func (t *Tree) FindKind(kind Kind) []Node {
	var out []Node
	t.Walk(func(n Node) bool {
		if n.Kind() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ChildAs returns the first child of parent that is a T, optionally matching
// name.
func ChildAs[T Node](t *Tree, parent Node, name string) (T, bool) {
	var zero T
	for _, c := range t.Children(parent) {
		v, ok := c.(T)
		if !ok {
			continue
		}
		if name != "" && c.Core().Name != name {
			continue
		}
		return v, true
	}
	return zero, false
}

// All returns every linked node that is a T, in pre-order.
func All[T Node](t *Tree) []T {
	var out []T
	t.Walk(func(n Node) bool {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}
