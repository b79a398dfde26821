package dialog

import (
	"testing"

	"github.com/milk9111/truecolor/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRejects(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"empty_message", Entry{Duration: 1}, false},
		{"no_time_left", Entry{Message: "hi"}, false},
		{"negative_time", Entry{Message: "hi", Duration: -1}, false},
		{"persistent_without_time", Entry{Message: "hi", Persistent: true}, true},
		{"timed", Entry{Message: "hi", Duration: 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var q Queue
			assert.Equal(t, c.want, q.Add(c.entry))
		})
	}
}

func TestAddDeduplicatesByID(t *testing.T) {
	var q Queue
	require.True(t, q.Add(Entry{Message: "Hi", Duration: 2, ID: 5}))
	assert.False(t, q.Add(Entry{Message: "Hi again", Duration: 1, ID: 5}))

	assert.Equal(t, 1, q.Len())
	head, ok := q.Head()
	require.True(t, ok)
	assert.Equal(t, "Hi", head.Message)
}

func TestQueued(t *testing.T) {
	var q Queue
	q.Add(Entry{Message: "a", Duration: 1})
	q.Add(Entry{Message: "b", Persistent: true, ID: 11})
	assert.True(t, q.Queued(11), "entries behind the head count")
	assert.False(t, q.Queued(10))

	var nilQueue *Queue
	assert.False(t, nilQueue.Queued(11))
}

func TestAnonymousEntriesCoexist(t *testing.T) {
	var q Queue
	q.Add(Entry{Message: "a", Duration: 1})
	q.Add(Entry{Message: "b", Duration: 1})
	q.Add(Entry{Message: "c", Duration: 1})
	assert.Equal(t, 3, q.Len())
}

func TestTickPopsExpiredHead(t *testing.T) {
	var q Queue
	q.Add(Entry{Message: "first", Duration: 0.5})
	q.Add(Entry{Message: "second", Duration: 0.5})

	q.Tick(0.25)
	head, _ := q.Head()
	assert.Equal(t, "first", head.Message)

	q.Tick(0.25)
	head, _ = q.Head()
	assert.Equal(t, "second", head.Message, "only the head ticks")
	assert.Equal(t, 0.5, head.Duration)
}

func TestPersistentHeadWaitsForDismiss(t *testing.T) {
	var q Queue
	q.Add(Entry{Message: "cutscene", Persistent: true, Fullscreen: true, ID: 10})
	q.Add(Entry{Message: "after", Duration: 1})

	for i := 0; i < 100; i++ {
		q.Tick(1)
	}
	require.True(t, q.PersistentOpen())
	assert.True(t, q.FullscreenOpen())
	assert.True(t, q.ShowingID(10))

	assert.True(t, q.Dismiss())
	assert.False(t, q.PersistentOpen())
	assert.False(t, q.Dismiss(), "timed heads are not dismissable")
	assert.Equal(t, 1, q.Len())
}

func TestDraw(t *testing.T) {
	rec := gfx.NewRecorder(640, 360)
	var q Queue
	q.Draw(rec)
	assert.Empty(t, rec.Calls, "empty queue draws nothing")

	q.Add(Entry{Message: "banner", Duration: 1})
	q.Draw(rec)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, "fill", rec.Calls[0].Op)
	assert.Equal(t, []string{"banner"}, rec.Texts())

	rec.Reset()
	q.Clear()
	q.Add(Entry{Message: "full", Duration: 1, Fullscreen: true})
	q.Draw(rec)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, 640.0, rec.Calls[0].Rect.Size.X)
}
