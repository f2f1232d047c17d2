package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chosenoffset.com/tileworld/internal/config"
	"chosenoffset.com/tileworld/internal/game"
	"chosenoffset.com/tileworld/internal/logging"
	ebitenrender "chosenoffset.com/tileworld/internal/render/ebiten"
	"chosenoffset.com/tileworld/internal/world/level"
)

type options struct {
	configPath string
	levelPath  string
	stage      string
	watch      bool
	verbose    bool
	width      int
	height     int
}

func main() {
	if err := newRootCmd(&options{}).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tileworld",
		Short:         "Tile grid prototype with player movement, collision and a follow camera",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.verbose)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "tileworld.yaml", "config file (missing file keeps defaults)")
	f.StringVarP(&opts.levelPath, "level", "l", "", "level file, empty for the built-in level")
	f.StringVarP(&opts.stage, "stage", "s", "", "start stage: grid, pan, move or follow")
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the level file when it changes")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	f.IntVar(&opts.width, "width", 0, "screen width in pixels")
	f.IntVar(&opts.height, "height", 0, "screen height in pixels")

	return cmd
}

// loadConfig reads the config file and environment, then applies the flags
// the user actually set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("level") {
		cfg.Level.Path = opts.levelPath
	}
	if f.Changed("stage") {
		cfg.Stage = opts.stage
	}
	if f.Changed("watch") {
		cfg.Level.Watch = opts.watch
	}
	if f.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Window.Height = opts.height
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	if cfg.Level.Path == "" {
		return level.Default(), nil
	}
	return level.Load(cfg.Level.Path)
}

func run(ctx context.Context, cfg *config.Config, verbose bool) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, lvl, renderer, inputMgr, loader, logger.Named("game"))
	if err != nil {
		return err
	}
	defer g.Assets.Dispose()
	g.SetEngine(engine)

	if cfg.Level.Watch {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		w, err := level.NewWatcher(cfg.Level.Path, logger.Named("watcher"))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
		g.WatchLevels(w.Updates())
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Window.TPS)

	logger.Info("starting",
		zap.String("level", lvl.Name),
		zap.String("stage", cfg.Stage),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("bye")
	return nil
}
