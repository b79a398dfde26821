package geom

import (
	"math"
	"sort"
)

const epsilon = 1e-9

// Segment is the line between A and B.
type Segment struct {
	A, B Vec
}

// Ray starts at Origin and extends along Direction.
type Ray struct {
	Origin    Vec
	Direction Vec
}

// Segment returns the first length units of the ray.
func (r Ray) Segment(length float64) Segment {
	dir := r.Direction
	if dir.Length() > 0 {
		dir = dir.Normalize()
	}
	return Segment{A: r.Origin, B: r.Origin.Add(dir.Mult(length))}
}

// Cast walks length units along the ray and returns the closest contact
// with any of rects.
func (r Ray) Cast(length float64, rects []Rect) (Vec, Rect, bool) {
	seg := r.Segment(length)
	var (
		best     Vec
		bestRect Rect
		bestDist = math.Inf(1)
		found    bool
	)
	for _, rc := range rects {
		pts := Intersects(seg, rc)
		if len(pts) == 0 {
			continue
		}
		if d := pts[0].Distance(seg.A); d < bestDist {
			best, bestRect, bestDist, found = pts[0], rc, d, true
		}
	}
	return best, bestRect, found
}

// Intersects returns the points where s crosses the edges of r, nearest to
// s.A first. Corner hits are reported once.
func Intersects(s Segment, r Rect) []Vec {
	tl := r.Pos
	tr := Vec{X: r.Right(), Y: r.Top()}
	br := Vec{X: r.Right(), Y: r.Bottom()}
	bl := Vec{X: r.Left(), Y: r.Bottom()}
	edges := [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}

	var pts []Vec
	for _, e := range edges {
		p, ok := segmentIntersection(s, e)
		if !ok {
			continue
		}
		dup := false
		for _, q := range pts {
			if q.Distance(p) < 1e-6 {
				dup = true
				break
			}
		}
		if !dup {
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return pts[i].Distance(s.A) < pts[j].Distance(s.A)
	})
	return pts
}

func segmentIntersection(s, e Segment) (Vec, bool) {
	d1 := s.B.Sub(s.A)
	d2 := e.B.Sub(e.A)
	denom := cross(d1, d2)
	if math.Abs(denom) < epsilon {
		return Vec{}, false
	}
	diff := e.A.Sub(s.A)
	t := cross(diff, d2) / denom
	u := cross(diff, d1) / denom
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return Vec{}, false
	}
	return s.A.Add(d1.Mult(t)), true
}

func cross(a, b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}
