package scene

import "strconv"

// NodeID is a generational handle into a Tree. The zero value refers to
// nothing.
type NodeID uint64

type slotIndex uint32
type generation uint32

const slotBits = 32

func makeID(idx slotIndex, gen generation) NodeID {
	return NodeID(uint64(gen)<<slotBits | uint64(idx))
}

func (id NodeID) index() slotIndex {
	return slotIndex(uint32(id))
}

func (id NodeID) generation() generation {
	return generation(uint32(uint64(id) >> slotBits))
}

func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the handle was ever issued.
func (id NodeID) Valid() bool {
	return id > 0
}
