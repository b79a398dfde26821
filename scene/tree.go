package scene

type slot struct {
	node  Node
	gen   generation
	alive bool
}

// Tree owns every node of a session. Top-level nodes hang off an implicit
// root; everything else is reachable through parent handles.
type Tree struct {
	slots []slot
	free  []slotIndex
	top   []NodeID
	world World
	count int
}

// NewTree creates an empty tree whose nodes see w as their World.
func NewTree(w World) *Tree {
	// slot 0 is reserved so a zero NodeID never resolves
	return &Tree{slots: make([]slot, 1), world: w}
}

// SetWorld replaces the services nodes reach through Base.World.
func (t *Tree) SetWorld(w World) {
	if t == nil {
		return
	}
	t.world = w
}

// Len returns the number of live nodes, linked or not.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Attach registers n with the tree without linking it anywhere. Nodes kept
// outside the hierarchy, such as an active mini-game, use it directly.
func (t *Tree) Attach(n Node) NodeID {
	if t == nil || n == nil {
		return 0
	}
	b := n.Core()
	if b.tree == t && t.Alive(b.id) {
		return b.id
	}
	if b.tree != nil && b.tree != t {
		return 0
	}
	var idx slotIndex
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		t.slots = append(t.slots, slot{})
		idx = slotIndex(len(t.slots) - 1)
	}
	s := &t.slots[idx]
	s.node = n
	s.alive = true
	b.id = makeID(idx, s.gen)
	b.tree = t
	b.parent = 0
	b.linked = false
	t.count++
	return b.id
}

// Alive reports whether id refers to a live node.
func (t *Tree) Alive(id NodeID) bool {
	if t == nil || !id.Valid() {
		return false
	}
	idx := id.index()
	if int(idx) >= len(t.slots) {
		return false
	}
	s := t.slots[idx]
	return s.alive && s.gen == id.generation()
}

// Get resolves id, returning nil for stale or unknown handles.
func (t *Tree) Get(id NodeID) Node {
	if !t.Alive(id) {
		return nil
	}
	return t.slots[id.index()].node
}

func (t *Tree) resolve(ids []NodeID) []Node {
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		if n := t.Get(id); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// owns reports whether n is a live member of t.
func (t *Tree) owns(n Node) bool {
	if t == nil || n == nil {
		return false
	}
	b := n.Core()
	return b.tree == t && t.Alive(b.id)
}

func (t *Tree) childList(parent Node) *[]NodeID {
	if parent == nil {
		return &t.top
	}
	return &parent.Core().children
}

// Add appends child under parent. A nil parent means the root. It reports
// false when child already has a parent or the link would form a cycle.
func (t *Tree) Add(parent, child Node) bool {
	return t.link(parent, child, false)
}

// Prepend inserts child as the first child of parent.
func (t *Tree) Prepend(parent, child Node) bool {
	return t.link(parent, child, true)
}

func (t *Tree) canLink(parent, child Node) bool {
	if t == nil || child == nil {
		return false
	}
	if cb := child.Core(); cb.tree != nil && cb.tree != t {
		return false
	}
	if parent == nil {
		return true
	}
	if !t.owns(parent) {
		return false
	}
	cid := child.Core().id
	if !cid.Valid() {
		return true
	}
	for p := parent; p != nil; p = p.Core().Parent() {
		if p.Core().id == cid {
			return false
		}
	}
	return true
}

func (t *Tree) link(parent, child Node, front bool) bool {
	if !t.canLink(parent, child) {
		return false
	}
	if t.Attach(child) == 0 {
		return false
	}
	cb := child.Core()
	if cb.linked {
		return false
	}
	list := t.childList(parent)
	if front {
		*list = append([]NodeID{cb.id}, *list...)
	} else {
		*list = append(*list, cb.id)
	}
	cb.linked = true
	cb.parent = 0
	if parent != nil {
		cb.parent = parent.Core().id
		if o, ok := parent.(ChildObserver); ok {
			o.OnChildAdded(child)
		}
	}
	return true
}

// Remove detaches child from its parent. The node stays alive and can be
// linked again.
func (t *Tree) Remove(child Node) bool {
	if !t.owns(child) {
		return false
	}
	cb := child.Core()
	if !cb.linked {
		return false
	}
	var list *[]NodeID
	if p := cb.Parent(); p != nil {
		list = &p.Core().children
	} else {
		list = &t.top
	}
	for i, id := range *list {
		if id == cb.id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			break
		}
	}
	cb.linked = false
	cb.parent = 0
	return true
}

// Reparent moves child under newParent (nil for the root) and fires
// OnReparent. The old link is dropped before the new one is made.
func (t *Tree) Reparent(child, newParent Node) bool {
	if !t.owns(child) || !t.canLink(newParent, child) {
		return false
	}
	t.Remove(child)
	if !t.link(newParent, child, false) {
		return false
	}
	if r, ok := child.(Reparentable); ok {
		r.OnReparent()
	}
	return true
}

// MoveChildToRoot hands child from parent to the root. Nothing happens when
// child is not actually parent's child.
func (t *Tree) MoveChildToRoot(parent, child Node) bool {
	if parent == nil || !t.owns(parent) || !t.owns(child) {
		return false
	}
	cb := child.Core()
	if !cb.linked || cb.parent != parent.Core().id {
		return false
	}
	return t.Reparent(child, nil)
}

// MoveChildrenToRoot hands every child of parent to the root.
func (t *Tree) MoveChildrenToRoot(parent Node) {
	if parent == nil {
		return
	}
	for _, c := range parent.Core().Children() {
		t.MoveChildToRoot(parent, c)
	}
}

// Destroy unlinks n and frees it along with all of its descendants.
func (t *Tree) Destroy(n Node) {
	if !t.owns(n) {
		return
	}
	t.Remove(n)
	t.free1(n)
}

func (t *Tree) free1(n Node) {
	b := n.Core()
	for _, c := range t.resolve(b.children) {
		t.free1(c)
	}
	b.children = nil
	idx := b.id.index()
	s := &t.slots[idx]
	s.node = nil
	s.alive = false
	s.gen++
	t.free = append(t.free, idx)
	t.count--
	b.id = 0
	b.parent = 0
	b.linked = false
	b.tree = nil
}

// ClearChildren destroys every child of parent. A nil parent clears the
// root.
func (t *Tree) ClearChildren(parent Node) {
	if t == nil {
		return
	}
	for _, c := range t.Children(parent) {
		t.Destroy(c)
	}
}

// Clear destroys every node, linked or not.
func (t *Tree) Clear() {
	if t == nil {
		return
	}
	for i := range t.slots {
		if s := t.slots[i]; s.alive {
			t.Destroy(s.node)
		}
	}
	t.top = t.top[:0]
}

// Children returns a snapshot of parent's children. A nil parent returns
// the top-level nodes.
func (t *Tree) Children(parent Node) []Node {
	if t == nil {
		return nil
	}
	if parent == nil {
		return t.resolve(t.top)
	}
	if !t.owns(parent) {
		return nil
	}
	return t.resolve(parent.Core().children)
}

// Walk visits every linked node in pre-order. Returning false from fn stops
// the walk. Nodes destroyed during the walk are skipped.
func (t *Tree) Walk(fn func(Node) bool) {
	if t == nil {
		return
	}
	t.walk(t.top, fn)
}

// WalkFrom visits root and its descendants in pre-order.
func (t *Tree) WalkFrom(root Node, fn func(Node) bool) {
	if !t.owns(root) {
		return
	}
	t.walk([]NodeID{root.Core().id}, fn)
}

func (t *Tree) walk(start []NodeID, fn func(Node) bool) {
	stack := make([]NodeID, 0, len(start))
	for i := len(start) - 1; i >= 0; i-- {
		stack = append(stack, start[i])
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Get(id)
		if n == nil {
			continue
		}
		if !fn(n) {
			return
		}
		// re-resolve: fn may have destroyed n
		if n = t.Get(id); n == nil {
			continue
		}
		kids := n.Core().children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}
