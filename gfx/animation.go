package gfx

// Animation steps through sprite-sheet frames at a fixed rate. Frames are
// given as cell offsets from a base sprite, left-to-right, top-to-bottom.
type Animation struct {
	Frames []Sprite
	FPS    float64
	Loop   bool

	current int
	elapsed float64
}

// Cell is a frame offset in whole sprite units.
type Cell struct {
	Col, Row int
}

// NewAnimation creates an animation. fps defaults to 12 when <= 0. With no
// cells the animation shows base alone.
func NewAnimation(base Sprite, fps float64, loop bool, cells ...Cell) *Animation {
	if fps <= 0 {
		fps = 12
	}
	if len(cells) == 0 {
		cells = []Cell{{}}
	}
	frames := make([]Sprite, len(cells))
	for i, c := range cells {
		frames[i] = Sprite{X: base.X + c.Col*base.W, Y: base.Y + c.Row*base.H, W: base.W, H: base.H}
	}
	return &Animation{Frames: frames, FPS: fps, Loop: loop}
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a == nil || len(a.Frames) <= 1 || dt <= 0 {
		return
	}
	a.elapsed += dt
	step := 1 / a.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.current++
		if a.current >= len(a.Frames) {
			if a.Loop {
				a.current = 0
			} else {
				a.current = len(a.Frames) - 1
			}
		}
	}
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsed = 0
}

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil || len(a.Frames) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	a.current = i
	a.elapsed = 0
}

func (a *Animation) Index() int {
	if a == nil {
		return 0
	}
	return a.current
}

// Frame returns the sprite to draw now.
func (a *Animation) Frame() Sprite {
	if a == nil || len(a.Frames) == 0 {
		return Sprite{}
	}
	return a.Frames[a.current]
}

// Animator switches between named animations.
type Animator struct {
	clips   map[string]*Animation
	name    string
	current *Animation
}

func NewAnimator() *Animator {
	return &Animator{clips: make(map[string]*Animation)}
}

// Add registers a clip. The first clip added starts playing.
func (an *Animator) Add(name string, a *Animation) {
	if an == nil || a == nil {
		return
	}
	an.clips[name] = a
	if an.current == nil {
		an.name = name
		an.current = a
	}
}

// Play switches to the named clip, restarting it when it was not already
// playing. Unknown names are ignored.
func (an *Animator) Play(name string) {
	if an == nil || name == an.name {
		return
	}
	a, ok := an.clips[name]
	if !ok {
		return
	}
	an.name = name
	an.current = a
	a.Reset()
}

// Playing returns the current clip name.
func (an *Animator) Playing() string {
	if an == nil {
		return ""
	}
	return an.name
}

func (an *Animator) Update(dt float64) {
	if an == nil {
		return
	}
	an.current.Update(dt)
}

func (an *Animator) Frame() Sprite {
	if an == nil {
		return Sprite{}
	}
	return an.current.Frame()
}
