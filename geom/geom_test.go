package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), false},
		{"touching_right_edge", R(0, 0, 10, 10), R(10, 0, 10, 10), false},
		{"touching_bottom_edge", R(0, 0, 10, 10), R(0, 10, 10, 10), false},
		{"touching_corner", R(0, 0, 10, 10), R(10, 10, 10, 10), false},
		{"overlap", R(0, 0, 10, 10), R(9, 9, 10, 10), true},
		{"contained", R(0, 0, 10, 10), R(2, 2, 2, 2), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.a, c.b))
			assert.Equal(t, c.want, Overlaps(c.b, c.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapProjections(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(4, 7, 10, 10)
	assert.InDelta(t, 6, HorizontalOverlap(a, b), 1e-9)
	assert.InDelta(t, 3, VerticalOverlap(a, b), 1e-9)
	assert.Zero(t, HorizontalOverlap(a, R(30, 0, 1, 1)))
}

func TestSegmentIntersects(t *testing.T) {
	r := R(10, 10, 10, 10)

	pts := Intersects(Segment{A: V(0, 15), B: V(30, 15)}, r)
	require.Len(t, pts, 2)
	assert.InDelta(t, 10, pts[0].X, 1e-9, "nearest contact first")
	assert.InDelta(t, 20, pts[1].X, 1e-9)

	pts = Intersects(Segment{A: V(0, 15), B: V(15, 15)}, r)
	require.Len(t, pts, 1)

	assert.Empty(t, Intersects(Segment{A: V(0, 0), B: V(5, 5)}, r))
}

func TestRayCastPicksNearest(t *testing.T) {
	ray := Ray{Origin: V(5, 0), Direction: V(0, 1)}
	near := R(0, 10, 10, 10)
	far := R(0, 40, 10, 10)

	p, hit, ok := ray.Cast(100, []Rect{far, near})
	require.True(t, ok)
	assert.Equal(t, near, hit)
	assert.InDelta(t, 10, p.Y, 1e-9)

	_, _, ok = ray.Cast(5, []Rect{far, near})
	assert.False(t, ok)
}

func TestSnapToGrid(t *testing.T) {
	got := SnapToGrid(V(47, 15), 32)
	assert.Equal(t, V(32, 0), got)
	got = SnapToGrid(V(49, 17), 32)
	assert.Equal(t, V(64, 32), got)
}
