package scene

// MiniGame is embedded by mini-game root nodes. Its terminal state is set
// once.
type MiniGame struct {
	Base
	over bool
	won  bool
}

// Finish ends the mini-game. Later calls are ignored.
func (m *MiniGame) Finish(won bool) {
	if m == nil || m.over {
		return
	}
	m.over = true
	m.won = won
}

func (m *MiniGame) IsOver() bool {
	return m != nil && m.over
}

func (m *MiniGame) IsWon() bool {
	return m != nil && m.won
}

// Kind tags mini-game roots.
func (m *MiniGame) Kind() Kind {
	return KindMiniGame
}

// MiniGameNode is the view the session has of an active mini-game.
type MiniGameNode interface {
	Node
	IsOver() bool
	IsWon() bool
	Finish(won bool)
}
