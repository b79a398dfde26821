package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/truecolor/input"
)

const stickDeadZone = 0.3

var keyBindings = map[input.Key][]ebiten.Key{
	input.Up:       {ebiten.KeyW, ebiten.KeyArrowUp},
	input.Down:     {ebiten.KeyS, ebiten.KeyArrowDown},
	input.Left:     {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.Right:    {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Enter:    {ebiten.KeySpace, ebiten.KeyEnter},
	input.Interact: {ebiten.KeyX},
	input.Slot1:    {ebiten.KeyDigit1},
	input.Slot2:    {ebiten.KeyDigit2},
	input.Slot3:    {ebiten.KeyDigit3},
	input.Slot4:    {ebiten.KeyDigit4},
	input.Slot5:    {ebiten.KeyDigit5},
	input.Slot6:    {ebiten.KeyDigit6},
	input.Slot7:    {ebiten.KeyDigit7},
	input.Slot8:    {ebiten.KeyDigit8},
	input.Slot9:    {ebiten.KeyDigit9},
	input.Pause:    {ebiten.KeyP},
	input.Debug:    {ebiten.KeyTab},
	input.Restart:  {ebiten.KeyEscape},
}

var padBindings = map[input.Key][]ebiten.StandardGamepadButton{
	input.Up:       {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonLeftTop},
	input.Down:     {ebiten.StandardGamepadButtonLeftBottom},
	input.Left:     {ebiten.StandardGamepadButtonLeftLeft},
	input.Right:    {ebiten.StandardGamepadButtonLeftRight},
	input.Enter:    {ebiten.StandardGamepadButtonRightLeft},
	input.Interact: {ebiten.StandardGamepadButtonRightRight},
	input.Pause:    {ebiten.StandardGamepadButtonCenterRight},
	input.Restart:  {ebiten.StandardGamepadButtonCenterLeft},
}

// Poller reads the keyboard and the first gamepad into an input.State once
// per frame.
type Poller struct {
	state input.State
	// previous stick directions for edge detection on axis-mapped keys
	prevStick [2]bool
}

func NewPoller() *Poller {
	return &Poller{}
}

// State returns the keys read by the last Poll.
func (p *Poller) State() *input.State {
	return &p.state
}

// Poll samples the devices.
func (p *Poller) Poll() *input.State {
	pad, hasPad := firstGamepad()
	for _, k := range input.Keys() {
		var pressed, held bool
		for _, key := range keyBindings[k] {
			pressed = pressed || inpututil.IsKeyJustPressed(key)
			held = held || ebiten.IsKeyPressed(key)
		}
		if hasPad {
			for _, b := range padBindings[k] {
				pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(pad, b)
				held = held || ebiten.IsStandardGamepadButtonPressed(pad, b)
			}
		}
		p.state.Set(k, pressed, held)
	}
	if hasPad {
		p.pollStick(pad)
	}
	return &p.state
}

// pollStick maps the left stick onto Left and Right.
func (p *Poller) pollStick(pad ebiten.GamepadID) {
	x := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	dirs := [2]input.Key{input.Left, input.Right}
	active := [2]bool{x < -stickDeadZone, x > stickDeadZone}
	for i, k := range dirs {
		if !active[i] {
			continue
		}
		pressed := p.state.Pressed(k) || !p.prevStick[i]
		p.state.Set(k, pressed, true)
	}
	p.prevStick = active
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	if !ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		return 0, false
	}
	return ids[0], true
}
