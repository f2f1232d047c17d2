package game

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"chosenoffset.com/tileworld/internal/config"
	"chosenoffset.com/tileworld/internal/entity/player"
	"chosenoffset.com/tileworld/internal/placeholders"
	"chosenoffset.com/tileworld/internal/render"
	"chosenoffset.com/tileworld/internal/sprite"
	"chosenoffset.com/tileworld/internal/world/level"
)

// messageDuration is how long on-screen messages stay up, in seconds.
const messageDuration = 3.0

var (
	hintColor  = color.RGBA{255, 255, 255, 255}
	debugColor = color.RGBA{180, 220, 255, 255}
)

// Game runs the world inside the engine loop: it reads input, applies level
// reloads and draws the world with its text overlay.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *World
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Engine       render.Engine
	Assets       *Assets
	Logger       *zap.Logger

	// UI state
	Messages []Message
	Debug    bool

	dt      float64
	reloads <-chan *level.Level
}

// New creates a game for lvl. The player sprite sheet comes from
// cfg.Player.SheetPath when set, otherwise a placeholder sheet is generated.
func New(cfg *config.Config, lvl *level.Level, r render.Renderer, input render.InputManager, loader render.ResourceLoader, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	assets := NewAssets()
	sheet, err := loadPlayerSheet(cfg, r, loader, assets, logger)
	if err != nil {
		return nil, err
	}

	world, err := NewWorld(lvl, cfg, sheet)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		World:        world,
		Renderer:     r,
		InputMgr:     input,
		Assets:       assets,
		Logger:       logger,
		Debug:        cfg.Debug,
		dt:           1.0 / float64(cfg.Window.TPS),
	}

	logger.Info("world ready",
		zap.String("level", lvl.Name),
		zap.Int("cols", world.Grid.Cols()),
		zap.Int("rows", world.Grid.Rows()),
		zap.Stringer("stage", world.Stage),
	)
	return g, nil
}

func loadPlayerSheet(cfg *config.Config, r render.Renderer, loader render.ResourceLoader, assets *Assets, logger *zap.Logger) (*sprite.Sheet, error) {
	if cfg.Player.SheetPath == "" {
		sheet := sprite.DefaultPlayerSheet()
		assets.PlayerSheet = r.NewImageFromImage(placeholders.PlayerSheet(sheet))
		return sheet, nil
	}

	sheet, err := sprite.LoadSheet(cfg.Player.SheetPath)
	if err != nil {
		return nil, err
	}
	img, err := loader.LoadImage(sheet.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet image %s: %w", sheet.ImagePath, err)
	}
	assets.PlayerSheet = img
	logger.Debug("loaded player sprite sheet", zap.String("path", cfg.Player.SheetPath), zap.Strings("anims", sheet.Keys()))
	return sheet, nil
}

// SetEngine gives the game access to engine stats for the debug overlay.
func (g *Game) SetEngine(e render.Engine) {
	g.Engine = e
}

// WatchLevels makes the game pick up levels delivered on ch.
func (g *Game) WatchLevels(ch <-chan *level.Level) {
	g.reloads = ch
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.updateMessages(g.dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Logger.Info("quit requested")
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		next := g.World.Stage.Next()
		g.World.SetStage(next)
		g.ShowMessage(fmt.Sprintf("Stage: %s", next))
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF3) {
		g.Debug = !g.Debug
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyR) && g.World.Stage.HasPlayer() {
		if err := g.World.Respawn(); err != nil {
			g.Logger.Warn("respawn failed", zap.Error(err))
			g.ShowMessage("Respawn failed")
		} else {
			g.ShowMessage("Respawned")
		}
	}

	g.applyReload()

	g.World.Update(g.readInput())
	return nil
}

func (g *Game) applyReload() {
	if g.reloads == nil {
		return
	}

	select {
	case lvl := <-g.reloads:
		if err := g.World.Reload(lvl); err != nil {
			g.Logger.Warn("level reload rejected", zap.Error(err))
			g.ShowMessage("Level reload failed")
			return
		}
		g.ShowMessage(fmt.Sprintf("Level %q reloaded", lvl.Name))
	default:
	}
}

func (g *Game) readInput() player.Input {
	pressed := func(keys ...render.Key) bool {
		for _, k := range keys {
			if g.InputMgr.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	return player.Input{
		Up:    pressed(render.KeyUp, render.KeyW),
		Down:  pressed(render.KeyDown, render.KeyS),
		Left:  pressed(render.KeyLeft, render.KeyA),
		Right: pressed(render.KeyRight, render.KeyD),
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Draw renders the world and the overlay.
func (g *Game) Draw(screen render.Image) {
	g.World.Draw(screen, g.Renderer, g.Assets)
	g.drawUI(screen)
}

func (g *Game) drawUI(screen render.Image) {
	g.Renderer.DrawText(screen, g.World.Stage.Hint(), 100, 40, hintColor)

	stage := fmt.Sprintf("Stage %d/%d: %s (Tab to switch)", int(g.World.Stage)+1, len(config.Stages), g.World.Stage)
	g.Renderer.DrawText(screen, stage, 100, 56, hintColor)

	y := 80
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 100, y, color.RGBA{255, 255, 255, alpha})
		y += 16
	}

	if g.Debug {
		line := g.debugLine()
		_, h := g.Renderer.MeasureText(line)
		g.Renderer.DrawText(screen, line, 8, g.ScreenHeight-h-8, debugColor)
	}
}

func (g *Game) debugLine() string {
	w := g.World
	line := fmt.Sprintf("player (%.0f, %.0f) %s#%d  camera (%.0f, %.0f)",
		w.Player.Body.X, w.Player.Body.Y, w.Player.AnimationKey(), w.Player.Frame(),
		w.Camera.Target.X, w.Camera.Target.Y)
	if g.Engine != nil {
		line += fmt.Sprintf("  TPS %.1f", g.Engine.ActualTPS())
	}
	return line
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	g.Logger.Info("message", zap.String("text", text))
}
