// Package dialog keeps the ordered queue of on-screen messages. Only the
// head of the queue is visible and only the head ticks.
package dialog

import (
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

// Entry is one queued message.
type Entry struct {
	Message string
	// Duration is the remaining display time in seconds. Ignored while
	// Persistent is set.
	Duration   float64
	Fullscreen bool
	Persistent bool
	// ID de-duplicates entries. Zero is anonymous and never collides.
	ID int
}

// Queue is a FIFO of dialog entries.
type Queue struct {
	entries []Entry
}

// Add appends e. It reports false when e was rejected: an empty message, a
// non-persistent entry with no time left, or an id already queued.
func (q *Queue) Add(e Entry) bool {
	if q == nil || e.Message == "" {
		return false
	}
	if e.Duration <= 0 && !e.Persistent {
		return false
	}
	if e.ID > 0 {
		for _, d := range q.entries {
			if d.ID == e.ID {
				return false
			}
		}
	}
	q.entries = append(q.entries, e)
	return true
}

// Tick counts down the head entry and pops it once its time is up.
// Persistent heads never expire.
func (q *Queue) Tick(dt float64) {
	if q == nil || len(q.entries) == 0 {
		return
	}
	head := &q.entries[0]
	if head.Persistent {
		return
	}
	head.Duration -= dt
	if head.Duration <= 0 {
		q.pop()
	}
}

// Dismiss pops a persistent head. It reports whether anything was popped.
func (q *Queue) Dismiss() bool {
	if !q.PersistentOpen() {
		return false
	}
	q.pop()
	return true
}

func (q *Queue) pop() {
	copy(q.entries, q.entries[1:])
	q.entries = q.entries[:len(q.entries)-1]
}

// Head returns the visible entry.
func (q *Queue) Head() (Entry, bool) {
	if q == nil || len(q.entries) == 0 {
		return Entry{}, false
	}
	return q.entries[0], true
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.entries)
}

func (q *Queue) Empty() bool {
	return q.Len() == 0
}

func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.entries = q.entries[:0]
}

// PersistentOpen reports whether the head waits for a dismiss.
func (q *Queue) PersistentOpen() bool {
	h, ok := q.Head()
	return ok && h.Persistent
}

// FullscreenOpen reports whether the head covers the whole screen.
func (q *Queue) FullscreenOpen() bool {
	h, ok := q.Head()
	return ok && h.Fullscreen
}

// ShowingID reports whether the head carries id.
func (q *Queue) ShowingID(id int) bool {
	h, ok := q.Head()
	return ok && h.ID == id
}

// Queued reports whether any entry carries id.
func (q *Queue) Queued(id int) bool {
	if q == nil {
		return false
	}
	for _, e := range q.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

const (
	bannerMargin  = 10
	bannerPadding = 10
)

// Draw renders the head entry. Fullscreen entries are centered on a black
// screen, others sit in a shaded banner along the top edge.
func (q *Queue) Draw(r gfx.Renderer) {
	h, ok := q.Head()
	if !ok || r == nil {
		return
	}
	screen := r.ScreenSize()
	size := r.TextSize(h.Message, 1)
	if h.Fullscreen {
		r.DrawRect(geom.Rect{Size: screen}, gfx.Black, true)
		at := screen.Sub(size).Mult(0.5)
		r.DrawText(h.Message, at, 1, gfx.White)
		return
	}
	banner := geom.R(bannerMargin, bannerMargin, screen.X-2*bannerMargin, size.Y+2*bannerPadding)
	r.DrawRect(banner, gfx.Shade, true)
	r.DrawText(h.Message, geom.V(bannerMargin+bannerPadding, bannerMargin+bannerPadding), 1, gfx.White)
}
