package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/input"
)

// World is what nodes may ask of the session that owns them. Nodes never
// reach into another node's state except through the methods listed here
// and the public methods of the node itself.
type World interface {
	Camera() *camera.Camera
	Input() input.Source
	Sounds() *audio.Bank
	Logger() *log.Logger
	Rand() *rand.Rand
	Debug() bool

	// AddDialog queues a message. It reports whether the entry was queued.
	AddDialog(e dialog.Entry) bool
	Dialogs() *dialog.Queue
	PersistentDialogOpen() bool

	Flag(name string) bool
	SetFlag(name string, v bool)

	// OnScreenColliders is the static geometry near the viewport this frame.
	OnScreenColliders() []geom.Rect

	// Player returns the designated player node, or nil.
	Player() Node

	// StartMiniGame builds and activates a mini-game by name.
	StartMiniGame(name string) bool
	MiniGameActive() bool

	EnablePortal()
	PortalEnabled() bool
	// RequestLevel schedules a level change for the end of the frame.
	RequestLevel(name string)

	GameOver()
	IsGameOver() bool
}
