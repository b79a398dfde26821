package scene

import (
	"testing"

	"github.com/milk9111/truecolor/levels"
)

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()
	r.Register("coin", func(e levels.Entity) Node {
		return &testNode{Base: Base{Name: e.Type}, kind: KindItem}
	})
	r.Register("nothing", func(levels.Entity) Node { return nil })

	cases := []struct {
		name   string
		typ    string
		wantOK bool
	}{
		{"known", "coin", true},
		{"unknown_is_skipped", "decoration", false},
		{"constructor_declines", "nothing", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, ok := r.Create(levels.Entity{Type: c.typ})
			if ok != c.wantOK {
				t.Fatalf("Create(%q) ok = %v, want %v", c.typ, ok, c.wantOK)
			}
			if ok && n.Core().Name != c.typ {
				t.Fatalf("unexpected node %q", n.Core().Name)
			}
		})
	}

	if got := r.Names(); len(got) != 2 || got[0] != "coin" {
		t.Fatalf("Names() = %v", got)
	}
}

type testMiniGame struct {
	MiniGame
}

func TestRegistryMiniGame(t *testing.T) {
	r := NewRegistry()
	r.RegisterMiniGame("cups", func() MiniGameNode { return &testMiniGame{} })
	m, ok := r.CreateMiniGame("cups")
	if !ok || m.IsOver() {
		t.Fatalf("expected a fresh mini-game")
	}
	if _, ok := r.CreateMiniGame("missing"); ok {
		t.Fatalf("unknown mini-game must not be created")
	}
}

func TestMiniGameFinishIsOneWay(t *testing.T) {
	cases := []struct {
		name    string
		calls   []bool
		wantWon bool
	}{
		{"won", []bool{true}, true},
		{"lost", []bool{false}, false},
		{"won_then_lost", []bool{true, false}, true},
		{"lost_then_won", []bool{false, true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m testMiniGame
			for _, won := range c.calls {
				m.Finish(won)
			}
			if !m.IsOver() || m.IsWon() != c.wantWon {
				t.Fatalf("over=%v won=%v, want over=true won=%v", m.IsOver(), m.IsWon(), c.wantWon)
			}
		})
	}
}
