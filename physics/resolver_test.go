package physics

import (
	"testing"

	"github.com/milk9111/truecolor/geom"
)

func body(x, y, vx, vy float64) *Body {
	return &Body{
		Position: geom.V(x, y),
		Velocity: geom.V(vx, vy),
		Size:     geom.V(32, 32),
	}
}

func TestResolveGroundSnap(t *testing.T) {
	cases := []struct {
		name       string
		y          float64
		vy         float64
		colliderX  float64
		wantGround bool
	}{
		{"within_tolerance", 51, 40, 100, true},
		{"exactly_tolerance", 55, 40, 100, true},
		{"too_deep", 56, 40, 100, false},
		{"rising_is_not_ground", 53, -40, 100, false},
		{"zero_velocity_is_airborne", 53, 0, 100, false},
		{"thin_horizontal_overlap", 53, 40, 130, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := body(100, c.y, 0, c.vy)
			col := geom.R(c.colliderX, 82, 32, 16)
			got := DefaultResolver().Resolve(b, []geom.Rect{col})
			if got.Grounded != c.wantGround {
				t.Fatalf("Grounded = %v, want %v", got.Grounded, c.wantGround)
			}
			if c.wantGround {
				if b.Velocity.Y != 0 || b.Acceleration.Y != 0 {
					t.Fatalf("expected vertical motion zeroed, got v=%v a=%v", b.Velocity, b.Acceleration)
				}
				if bottom := b.Collider().Bottom(); bottom != col.Top() {
					t.Fatalf("bottom = %v, want %v", bottom, col.Top())
				}
			}
		})
	}
}

func TestResolveCeiling(t *testing.T) {
	b := body(100, 96, 0, -120)
	col := geom.R(100, 70, 32, 30)
	got := DefaultResolver().Resolve(b, []geom.Rect{col})
	if !got.Ceiling {
		t.Fatalf("expected ceiling contact")
	}
	if b.Position.Y != 100 || b.Velocity.Y != 0 {
		t.Fatalf("expected snap below ceiling with vy=0, got pos=%v v=%v", b.Position, b.Velocity)
	}
}

func TestResolveWalls(t *testing.T) {
	cases := []struct {
		name      string
		x         float64
		wantRight bool
		wantLeft  bool
		wantX     float64
	}{
		{"wall_right_snapped", 70, true, false, 68},
		{"wall_right_locked_only", 75, true, false, 75},
		{"wall_left_snapped", 130, false, true, 132},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := body(c.x, 50, 0, 0)
			col := geom.R(100, 40, 32, 64)
			got := DefaultResolver().Resolve(b, []geom.Rect{col})
			if got.LockRight != c.wantRight || got.LockLeft != c.wantLeft {
				t.Fatalf("locks = %+v, want right=%v left=%v", got, c.wantRight, c.wantLeft)
			}
			if b.Position.X != c.wantX {
				t.Fatalf("x = %v, want %v", b.Position.X, c.wantX)
			}
		})
	}
}

func TestResolveSkipsWallAfterGround(t *testing.T) {
	b := body(90, 53, 0, 60)
	col := geom.R(100, 82, 32, 16)
	got := DefaultResolver().Resolve(b, []geom.Rect{col})
	if !got.Grounded {
		t.Fatalf("expected ground contact")
	}
	if got.LockLeft || got.LockRight {
		t.Fatalf("a pair that touched ground must not lock walls: %+v", got)
	}
}

func TestResolveTouchingIsNotContact(t *testing.T) {
	b := body(100, 50, 0, 10)
	got := DefaultResolver().Resolve(b, []geom.Rect{geom.R(100, 82, 32, 16)})
	if got != (Contact{}) {
		t.Fatalf("touching edges should not resolve, got %+v", got)
	}
}

func TestResolveHitboxOffset(t *testing.T) {
	b := &Body{
		Position: geom.V(100, 53),
		Velocity: geom.V(0, 50),
		Offset:   geom.V(6.4, 0),
		Size:     geom.V(19.2, 32),
	}
	got := DefaultResolver().Resolve(b, []geom.Rect{geom.R(80, 82, 32, 16)})
	if !got.Grounded || b.Position.Y != 50 {
		t.Fatalf("expected grounded at y=50, got %+v y=%v", got, b.Position.Y)
	}
}

func TestResolveTrace(t *testing.T) {
	var kinds []ContactKind
	r := DefaultResolver()
	r.Trace = func(_ geom.Rect, k ContactKind) { kinds = append(kinds, k) }
	b := body(100, 53, 0, 60)
	r.Resolve(b, []geom.Rect{geom.R(100, 82, 32, 16), geom.R(500, 500, 32, 32)})
	if len(kinds) != 1 || kinds[0] != ContactGround {
		t.Fatalf("expected a single ground trace, got %v", kinds)
	}
}
