// Package input names the game's logical keys and holds per-frame key
// state. Platform code fills a State; the simulation only reads it.
package input

// Key is a logical key.
type Key int

const (
	Up Key = iota
	Down
	Left
	Right
	Enter
	Interact
	Slot1
	Slot2
	Slot3
	Slot4
	Slot5
	Slot6
	Slot7
	Slot8
	Slot9
	Pause
	Debug
	Restart

	keyCount
)

var keyNames = [keyCount]string{
	"up", "down", "left", "right", "enter", "interact",
	"1", "2", "3", "4", "5", "6", "7", "8", "9",
	"pause", "debug", "restart",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Slot returns the storage slot key for index i (0-based).
func Slot(i int) (Key, bool) {
	if i < 0 || i > 8 {
		return 0, false
	}
	return Slot1 + Key(i), true
}

// Source reports key state for the current frame.
type Source interface {
	Pressed(k Key) bool
	Held(k Key) bool
}

// State is a Source whose keys are set explicitly.
type State struct {
	pressed [keyCount]bool
	held    [keyCount]bool
}

// Set records k for this frame. A pressed key is also held.
func (s *State) Set(k Key, pressed, held bool) {
	if s == nil || k < 0 || k >= keyCount {
		return
	}
	s.pressed[k] = pressed
	s.held[k] = held || pressed
}

// Press marks k as pressed this frame.
func (s *State) Press(k Key) {
	s.Set(k, true, true)
}

// Hold marks k as held without a fresh press.
func (s *State) Hold(k Key) {
	s.Set(k, false, true)
}

// Clear releases every key.
func (s *State) Clear() {
	if s == nil {
		return
	}
	*s = State{}
}

func (s *State) Pressed(k Key) bool {
	if s == nil || k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

func (s *State) Held(k Key) bool {
	if s == nil || k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// Keys lists every logical key.
func Keys() []Key {
	out := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}
