package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/truecolor/assets"
	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/game"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/platform"
)

var (
	flagLevel     string
	flagDebug     bool
	flagWatch     bool
	flagLevelsDir string
	flagAssetsDir string
	flagMenu      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and start a session.

Keys: arrows or WASD move, W/Up jumps, SPACE collects and talks, X sprays,
1-9 select carried items, P pauses, TAB toggles the debug overlay and ESC
restarts.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start at this level instead of the configured one")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw colliders and the level name")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the current level when its file changes (needs --levels-dir)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Read levels from this directory instead of the built-in ones")
	playCmd.Flags().StringVar(&flagAssetsDir, "assets-dir", "", "Read the sprite sheet and sounds from this directory")
	playCmd.Flags().BoolVar(&flagMenu, "menu", true, "Show the title menu first")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	applyPlayFlags(cmd, &cfg)

	provider, watcher, err := openLevels(cfg, logger)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}

	fsys := assets.Open(cfg.Game.AssetsDir)
	sheet, err := assets.LoadImage(fsys, assets.SheetFile)
	if err != nil {
		logger.Warn("sprite sheet unavailable, drawing placeholders", "err", err)
	}

	g, err := game.New(game.Options{
		Config:      cfg,
		Logger:      logger,
		Provider:    provider,
		Audio:       platform.NewSounds(fsys),
		Watcher:     watcher,
		StartInMenu: flagMenu,
	})
	if err != nil {
		return err
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	ebiten.SetWindowSize(w*cfg.Window.Scale, h*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := platform.NewHost(g, platform.NewRenderer(sheet, w, h), logger)
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// applyPlayFlags lets explicitly set flags win over the file settings.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flagLevel != "" {
		cfg.Game.StartLevel = flagLevel
	}
	if flags.Changed("debug") {
		cfg.Game.Debug = flagDebug
	}
	if flags.Changed("watch") {
		cfg.Game.Watch = flagWatch
	}
	if flagLevelsDir != "" {
		cfg.Game.LevelsDir = flagLevelsDir
	}
	if flagAssetsDir != "" {
		cfg.Game.AssetsDir = flagAssetsDir
	}
}

// openLevels picks the level source. Watching only works for levels on
// disk.
func openLevels(cfg config.Config, logger *log.Logger) (levels.Provider, *levels.Watcher, error) {
	if cfg.Game.LevelsDir == "" {
		if cfg.Game.Watch {
			logger.Warn("watch ignored for built-in levels")
		}
		return levels.Embedded(), nil, nil
	}

	provider := levels.Dir(cfg.Game.LevelsDir)
	if !cfg.Game.Watch {
		return provider, nil, nil
	}
	watcher, err := levels.NewWatcher(cfg.Game.LevelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", cfg.Game.LevelsDir, err)
	}
	logger.Info("watching levels", "dir", cfg.Game.LevelsDir)
	return provider, watcher, nil
}
