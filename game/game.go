// Package game owns a play session: the node tree, the loaded level and the
// services nodes reach through scene.World.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/obj"
	"github.com/milk9111/truecolor/physics"
	"github.com/milk9111/truecolor/scene"
)

const introSeconds = 3.0

// Options configures a session. Zero fields fall back to defaults.
type Options struct {
	Config   config.Config
	Logger   *log.Logger
	Provider levels.Provider
	// Registry builds level entities. Nil registers the built-in types.
	Registry *scene.Registry
	Audio    audio.Backend
	Input    input.Source
	// Watcher, when set, reloads the current level as its file changes.
	Watcher *levels.Watcher
	Rand    *rand.Rand
	// StartInMenu opens the title menu instead of starting a session.
	StartInMenu bool
}

// Game is the root coordinator. It is not safe for concurrent use.
type Game struct {
	cfg      config.Config
	logger   *log.Logger
	provider levels.Provider
	registry *scene.Registry
	watcher  *levels.Watcher

	tree    *scene.Tree
	cam     *camera.Camera
	in      input.Source
	sounds  *audio.Bank
	rng     *rand.Rand
	clock   *physics.Clock
	dialogs dialog.Queue
	flags   map[string]bool

	level     *levels.Level
	levelName string
	static    []geom.Rect
	onScreen  []geom.Rect
	player    scene.NodeID

	miniGame     scene.MiniGameNode
	miniGameName string

	menu    *obj.Menu
	inMenu  bool
	portal  bool
	pending string
	over    bool
	debug   bool
	paused  bool
	quit    bool
}

// New builds a session. Unless opts.StartInMenu is set the start level is
// loaded right away.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg.Window.Width == 0 {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		logger:   opts.Logger,
		provider: opts.Provider,
		registry: opts.Registry,
		watcher:  opts.Watcher,
		in:       opts.Input,
		rng:      opts.Rand,
		flags:    make(map[string]bool),
		debug:    cfg.Game.Debug,
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.provider == nil {
		g.provider = levels.Embedded()
	}
	if g.registry == nil {
		stepper := physics.DefaultStepper()
		stepper.Gravity = cfg.Physics.Gravity
		stepper.MaxFallSpeed = cfg.Physics.MaxFallSpeed
		g.registry = scene.NewRegistry()
		obj.Register(g.registry, cfg.Player, stepper)
	}
	if g.in == nil {
		g.in = &input.State{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.cam = camera.New(float64(cfg.Window.Width), float64(cfg.Window.Height))
	g.sounds = audio.NewBank(opts.Audio, g.logger)
	g.clock = physics.NewClock(cfg.Physics.Step, cfg.Physics.SpikeThreshold)
	g.clock.MaxSteps = cfg.Physics.MaxSteps
	g.tree = scene.NewTree(g)

	g.menu = obj.NewMenu()
	g.tree.Attach(g.menu)
	scene.Create(g.menu)

	if opts.StartInMenu {
		g.OpenMenu()
		return g, nil
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Tree exposes the node tree, mostly for tests and tooling.
func (g *Game) Tree() *scene.Tree { return g.tree }

// Level returns the loaded level, or nil before the first load.
func (g *Game) Level() *levels.Level { return g.level }

// LevelName returns the name the loaded level was requested by.
func (g *Game) LevelName() string { return g.levelName }

// Config returns the configuration the session runs with.
func (g *Game) Config() config.Config { return g.cfg }

// SetInput swaps the key source, for hosts that rebuild it every frame.
func (g *Game) SetInput(in input.Source) {
	if in == nil {
		in = &input.State{}
	}
	g.in = in
}

// Restart begins a new session at the configured start level. Flags,
// played sounds and the game-over latch are reset.
func (g *Game) Restart() error {
	g.flags = make(map[string]bool)
	g.sounds.Reset()
	g.clock.Reset()
	g.over = false
	g.paused = false
	g.pending = ""
	if err := g.LoadLevel(g.cfg.Game.StartLevel); err != nil {
		return err
	}
	if g.cfg.Game.Intro != "" {
		g.dialogs.Add(dialog.Entry{Message: g.cfg.Game.Intro, Duration: introSeconds, Fullscreen: true})
	}
	g.logger.Info("session started", "level", g.levelName)
	return nil
}

// LoadLevel replaces the current level. On error the previous level stays
// in place.
func (g *Game) LoadLevel(name string) error {
	lvl, err := g.provider.Load(name)
	if err != nil {
		return fmt.Errorf("game: load level %s: %w", name, err)
	}

	g.closeMiniGame()
	g.tree.ClearChildren(nil)
	g.dialogs.Clear()
	g.portal = false
	g.player = 0

	g.level = lvl
	g.levelName = name
	g.cam.SetWorldSize(float64(lvl.Width), float64(lvl.Height))
	g.static = lvl.StaticColliders()

	var created []scene.Node
	for _, e := range lvl.Entities {
		n, ok := g.registry.Create(e)
		if !ok {
			g.logger.Debug("unknown entity type", "level", name, "type", e.Type)
			continue
		}
		if e.Type == "player" {
			if g.player.Valid() {
				g.logger.Warn("extra player ignored", "level", name, "x", e.X, "y", e.Y)
				continue
			}
			g.tree.Add(nil, n)
			g.player = n.Core().ID()
		} else {
			g.tree.Prepend(nil, n)
		}
		created = append(created, n)
	}
	if !g.player.Valid() {
		g.logger.Warn("level has no player", "level", name)
	}

	hud := obj.NewHUD()
	g.tree.Add(nil, hud)
	created = append(created, hud)

	for _, n := range created {
		scene.Create(n)
	}
	for _, n := range created {
		if o, ok := n.(scene.AllCreatedObserver); ok {
			o.OnAllCreated()
		}
	}

	g.refreshColliders()
	g.logger.Debug("level loaded", "level", name, "entities", len(created), "colliders", len(g.static))
	return nil
}

// Frame advances the session by one host frame of the given wall time.
func (g *Game) Frame(elapsed float64) {
	steps, dt := g.clock.Advance(elapsed)
	g.HandleInput()
	g.refreshColliders()
	for i := 0; i < steps; i++ {
		g.Physics(g.clock.Step)
	}
	g.Update(dt)
}

// HandleInput turns this frame's key state into actions.
func (g *Game) HandleInput() {
	in := g.in
	if in.Pressed(input.Debug) {
		g.debug = !g.debug
	}

	if g.inMenu {
		g.menuInput(in)
		return
	}

	if in.Pressed(input.Restart) {
		if err := g.Restart(); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		return
	}
	if in.Pressed(input.Pause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if in.Pressed(input.Enter) && g.dialogs.Dismiss() {
		return
	}
	if g.dialogs.FullscreenOpen() {
		return
	}

	var actions []scene.Action
	if in.Held(input.Up) {
		actions = append(actions, scene.ActionUp)
	}
	if in.Held(input.Left) {
		actions = append(actions, scene.ActionLeft)
	}
	if in.Held(input.Right) {
		actions = append(actions, scene.ActionRight)
	}
	if in.Pressed(input.Down) {
		actions = append(actions, scene.ActionDown)
	}
	if in.Pressed(input.Enter) {
		actions = append(actions, scene.ActionEnter)
	}
	for _, a := range actions {
		g.dispatch(a)
	}
}

// dispatch hands a to the top-level nodes in order. While a mini-game runs
// only the mini-game listens.
func (g *Game) dispatch(a scene.Action) {
	if g.miniGame != nil {
		if c, ok := g.miniGame.(scene.Controllable); ok {
			c.OnAction(a)
		}
		return
	}
	for _, n := range g.tree.Children(nil) {
		if !g.tree.Alive(n.Core().ID()) {
			continue
		}
		if c, ok := n.(scene.Controllable); ok {
			c.OnAction(a)
		}
	}
}

// Physics runs one fixed step over the tree.
func (g *Game) Physics(dt float64) {
	if g.inMenu || g.paused || g.miniGame != nil || g.dialogs.FullscreenOpen() {
		return
	}
	for _, n := range g.tree.Children(nil) {
		if g.tree.Alive(n.Core().ID()) {
			scene.Physics(n, dt)
		}
	}
}

// Update runs the variable-rate part of a frame.
func (g *Game) Update(dt float64) {
	g.pollWatcher()

	if g.inMenu {
		scene.Update(g.menu, dt)
		return
	}
	if g.paused {
		return
	}

	if g.dialogs.FullscreenOpen() {
		g.dialogs.Tick(dt)
		g.applyPending()
		return
	}

	if g.miniGame != nil {
		g.updateMiniGame(dt)
		g.dialogs.Tick(dt)
		return
	}

	g.refreshColliders()

	p := g.Player()
	if p != nil {
		scene.Update(p, dt)
	}
	for _, n := range g.tree.Children(nil) {
		if n == p || !g.tree.Alive(n.Core().ID()) {
			continue
		}
		scene.Update(n, dt)
	}

	g.dialogs.Tick(dt)
	if g.over {
		g.sounds.PlayOnce(audio.GameOver)
	}
	g.applyPending()
}

// refreshColliders keeps the static boxes near the viewport.
func (g *Game) refreshColliders() {
	g.onScreen = g.onScreen[:0]
	for _, c := range g.static {
		if g.cam.IsOnScreen(c.Pos) {
			g.onScreen = append(g.onScreen, c)
		}
	}
}

func (g *Game) applyPending() {
	if g.pending == "" {
		return
	}
	name := g.pending
	g.pending = ""
	if err := g.LoadLevel(name); err != nil {
		if errors.Is(err, levels.ErrNotFound) {
			g.logger.Warn("portal leads nowhere", "level", name)
			return
		}
		g.logger.Error("level change failed", "level", name, "err", err)
	}
}

func (g *Game) pollWatcher() {
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if name != g.levelName {
			continue
		}
		g.logger.Info("level changed on disk, reloading", "level", name)
		if err := g.LoadLevel(name); err != nil {
			g.logger.Error("reload failed", "level", name, "err", err)
		}
	}
}

// Paused reports whether the pause overlay is up.
func (g *Game) Paused() bool { return g.paused }

// SetPaused shows or hides the pause overlay.
func (g *Game) SetPaused(v bool) {
	g.paused = v
	if v {
		g.clock.Reset()
	}
}

// Quit asks the host to stop after this frame.
func (g *Game) Quit() { g.quit = true }

// Done reports whether the session asked to stop.
func (g *Game) Done() bool { return g.quit }
