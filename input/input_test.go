package input

import "testing"

func TestStatePressImpliesHeld(t *testing.T) {
	var s State
	s.Press(Enter)
	if !s.Pressed(Enter) || !s.Held(Enter) {
		t.Fatalf("pressed key must also be held")
	}
	s.Hold(Left)
	if s.Pressed(Left) || !s.Held(Left) {
		t.Fatalf("held key is not pressed")
	}
	s.Clear()
	if s.Held(Enter) || s.Held(Left) {
		t.Fatalf("Clear must release every key")
	}
}

func TestSlot(t *testing.T) {
	cases := []struct {
		name string
		i    int
		want Key
		ok   bool
	}{
		{"first", 0, Slot1, true},
		{"last", 8, Slot9, true},
		{"negative", -1, 0, false},
		{"too_high", 9, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Slot(c.i)
			if ok != c.ok || (ok && got != c.want) {
				t.Fatalf("Slot(%d) = %v,%v want %v,%v", c.i, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestOutOfRangeKeys(t *testing.T) {
	var s State
	s.Press(Key(99))
	if s.Pressed(Key(99)) || Key(99).String() != "unknown" {
		t.Fatalf("out of range keys are ignored")
	}
	if len(Keys()) != int(keyCount) {
		t.Fatalf("Keys() should list every key")
	}
}
