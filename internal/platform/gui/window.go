// Package gui runs slither in a desktop window with Ebitengine.
// The real mouse cursor is the pursuit target; the game logic is shared with
// the terminal frontend.
package gui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/logging"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

// hudHeight is the height in pixels of the status bar above the world.
const hudHeight = 24

// Window adapts a slither game to ebiten.Game.
// One world unit is one logical pixel.
type Window struct {
	game  *slither.Game
	store *storage.Store
	log   *log.Logger
}

// NewWindow creates a window for game. store and logger may be nil.
func NewWindow(game *slither.Game, store *storage.Store, logger *log.Logger) *Window {
	if logger == nil {
		logger = logging.Discard()
	}
	if store != nil {
		game.SetScoreKeeper(store.Keeper(game.ID()))
	}
	return &Window{
		game:  game,
		store: store,
		log:   logger.With("game", game.ID(), "frontend", "gui"),
	}
}

// Update samples input and advances the game one tick.
// Ebitengine calls it TPS times per second.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	p := w.cursorToWorld(ebiten.CursorPosition())
	in.SetPointer(p.X, p.Y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeySpace):
		in.Set(core.ActionPointerPress)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		in.Set(core.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		in.Set(core.ActionBack)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		in.Set(core.ActionRestart)
	}

	result := w.game.Step(in)
	if result.Finished {
		w.recordRun(result.State)
	}
	return nil
}

// cursorToWorld converts a logical screen position to a world point.
// The game clamps points outside the world.
func (w *Window) cursorToWorld(x, y int) core.Vec2 {
	return core.Vec2{X: float64(x), Y: float64(y - hudHeight)}
}

func (w *Window) recordRun(state core.GameState) {
	if w.store == nil {
		return
	}
	if _, err := w.store.RecordFinished(w.game, state); err != nil {
		w.log.Warn("could not record run", "err", err)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	drawFrame(screen, &snap)
}

// Layout fixes the logical screen to the world plus the status bar;
// ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screenSize()
}

func (w *Window) screenSize() (int, int) {
	world := w.game.Config().World
	return int(world.Width), int(world.Height) + hudHeight
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *slither.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	w := NewWindow(game, store, logger)
	game.Reset(cfg)

	width, height := w.screenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Slither")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	w.log.Info("window opened", "width", width, "height", height)
	return ebiten.RunGame(w)
}
