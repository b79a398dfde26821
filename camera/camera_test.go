package camera

import (
	"testing"

	"github.com/milk9111/truecolor/geom"
)

func newTestCamera() *Camera {
	c := New(640, 360)
	c.SetWorldSize(2000, 800)
	c.SetOffset(geom.V(320, 180))
	return c
}

func TestPositionClampsToWorld(t *testing.T) {
	cases := []struct {
		name  string
		focus geom.Vec
		want  geom.Vec
	}{
		{"top_left_corner", geom.V(0, 0), geom.V(320, 180)},
		{"middle", geom.V(1000, 400), geom.V(1000, 400)},
		{"bottom_right_corner", geom.V(5000, 5000), geom.V(2000-320, 800-180)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCamera()
			c.SetFocus(tc.focus)
			if got := c.Position(); got != tc.want {
				t.Fatalf("Position() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPositionWorldSmallerThanScreen(t *testing.T) {
	c := New(640, 360)
	c.SetWorldSize(320, 200)
	c.SetOffset(geom.V(320, 180))
	c.SetFocus(geom.V(900, 900))
	if got := c.Position(); got != geom.V(320, 180) {
		t.Fatalf("expected viewport pinned at origin, got %v", got)
	}
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.SetFocus(geom.V(1000, 400))
	c.SetZoom(2)

	p := geom.V(1010, 390)
	s := c.WorldToScreen(p)
	if want := geom.V(340, 160); s != want {
		t.Fatalf("WorldToScreen = %v, want %v", s, want)
	}
	back := c.ScreenToWorld(s)
	if back.Distance(p) > 1e-9 {
		t.Fatalf("ScreenToWorld(WorldToScreen(p)) = %v, want %v", back, p)
	}
}

func TestOnScreenCulling(t *testing.T) {
	c := newTestCamera()
	c.SetFocus(geom.V(320, 180))

	cases := []struct {
		name string
		p    geom.Vec
		want bool
	}{
		{"inside", geom.V(100, 100), true},
		{"inside_padding", geom.V(660, 100), true},
		{"outside_padding_right", geom.V(700, 100), false},
		{"outside_padding_left", geom.V(-60, 100), false},
		{"far_below", geom.V(100, 700), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsOnScreen(tc.p); got != tc.want {
				t.Fatalf("IsOnScreen(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestIsRectOnScreen(t *testing.T) {
	c := newTestCamera()
	c.SetFocus(geom.V(320, 180))

	cases := []struct {
		name string
		r    geom.Rect
		want bool
	}{
		{"inside", geom.R(100, 100, 32, 32), true},
		{"straddles_right_padding", geom.R(670, 100, 32, 32), true},
		{"straddles_left_padding", geom.R(-70, 100, 32, 32), true},
		{"left_of_padding", geom.R(-80, 100, 32, 32), false},
		{"right_of_padding", geom.R(700, 100, 32, 32), false},
		{"covers_view", geom.R(-100, -100, 900, 600), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsRectOnScreen(tc.r, DefaultPadding); got != tc.want {
				t.Fatalf("IsRectOnScreen(%v) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}

	var nilCam *Camera
	if nilCam.IsRectOnScreen(geom.R(0, 0, 1, 1), 0) {
		t.Fatal("nil camera reported a visible rect")
	}
}

func TestIsOffLimits(t *testing.T) {
	c := newTestCamera()
	if c.IsOffLimits(geom.V(0, 800)) {
		t.Fatalf("point on the world edge is still inside")
	}
	if !c.IsOffLimits(geom.V(0, 800.5)) {
		t.Fatalf("point below the world must be off limits")
	}
}

func TestNilCamera(t *testing.T) {
	var c *Camera
	if c.IsOnScreen(geom.V(0, 0)) {
		t.Fatalf("nil camera sees nothing")
	}
	if got := c.WorldToScreen(geom.V(3, 4)); got != geom.V(3, 4) {
		t.Fatalf("nil camera is the identity transform, got %v", got)
	}
}
