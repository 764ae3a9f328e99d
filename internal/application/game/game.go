// Package game provides the application driver that owns the active
// screen and the shared session, and handles screen transitions.
package game

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/replay"
	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/application/system"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// Default logical screen size and tick rate
const (
	DefaultScreenWidth  = 720
	DefaultScreenHeight = 480
	DefaultTPS          = 60
)

// Game implements ebiten.Game. It owns exactly one active screen and the
// session, and is the only place transitions happen.
//
// Per tick: pointer input is delivered first, then the active screen is
// updated (and possibly replaced), then the active screen is drawn. A
// screen replaced during Update is never drawn again.
type Game struct {
	ctx      *scene.Context
	assets   *render.Assets
	factory  Factory
	current  scene.Screen
	shared   *session.Session
	defaults session.Defaults
	input    system.InputSource
	recorder *replay.Recorder
	logger   *slog.Logger

	screenW int
	screenH int
	tps     int

	exitRequested bool
	transitions   int
}

// Option configures a Game.
type Option func(*Game)

// WithFactory replaces the screen factory.
func WithFactory(f Factory) Option {
	return func(g *Game) { g.factory = f }
}

// WithAssets uses already loaded assets instead of loading them in New.
func WithAssets(a *render.Assets) Option {
	return func(g *Game) { g.assets = a }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithInput sets where Update reads pointer events from.
func WithInput(src system.InputSource) Option {
	return func(g *Game) { g.input = src }
}

// WithRecorder records every tick's pointer events.
func WithRecorder(r *replay.Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithScreenSize sets the logical screen size.
func WithScreenSize(w, h int) Option {
	return func(g *Game) { g.screenW, g.screenH = w, h }
}

// WithTPS sets the tick rate screens use to convert ticks to time.
func WithTPS(tps int) Option {
	return func(g *Game) { g.tps = tps }
}

// WithDefaults sets the forced session defaults.
func WithDefaults(d session.Defaults) Option {
	return func(g *Game) { g.defaults = d }
}

// New creates a Game showing the initial screen. The session starts empty;
// screens that need upstream data get forced defaults, so every screen id
// can be entered directly. Errors are fatal: asset loading or screen
// construction failed.
func New(initial state.ScreenID, opts ...Option) (*Game, error) {
	g := &Game{
		factory:  DefaultFactory,
		shared:   session.New(),
		defaults: session.DefaultDefaults(),
		logger:   slog.New(slog.DiscardHandler),
		screenW:  DefaultScreenWidth,
		screenH:  DefaultScreenHeight,
		tps:      DefaultTPS,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.assets == nil {
		assets, err := render.LoadAssets()
		if err != nil {
			return nil, err
		}
		g.assets = assets
	}

	g.ctx = &scene.Context{
		Assets: g.assets,
		Host:   g,
		Width:  g.screenW,
		Height: g.screenH,
		TPS:    g.tps,
	}

	screen, err := g.build(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial screen %s: %w", initial, err)
	}
	g.current = screen
	g.logger.Info("initial screen", "screen", initial)

	return g, nil
}

// build forces session defaults when id needs them, then constructs the screen.
func (g *Game) build(id state.ScreenID) (scene.Screen, error) {
	if id.NeedsSession() {
		if forced := g.shared.Force(g.defaults); len(forced) > 0 {
			g.logger.Debug("forced session defaults", "screen", id, "fields", forced)
		}
	}
	return g.factory(g.ctx, id, g.shared)
}

// Update delivers this tick's pointer input, then updates the active screen.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	var events []system.PointerEvent
	if g.input != nil {
		events = g.input.Poll()
	}
	if g.recorder != nil {
		g.recorder.Record(events)
	}
	for _, ev := range events {
		g.HandlePointer(ev.Button, ev.X, ev.Y)
	}

	if err := g.TickUpdate(); err != nil {
		return err
	}

	if g.exitRequested {
		return ebiten.Termination
	}
	return nil
}

// TickUpdate updates the active screen and performs the transition it
// requests, if any. At most one transition happens per call.
func (g *Game) TickUpdate() error {
	next, ok := g.current.Update(g.shared)
	if !ok {
		return nil
	}
	return g.Transition(next)
}

// Transition replaces the active screen with a new screen for id. The new
// screen is constructed before the old one is released, so a failure
// leaves the old screen active.
func (g *Game) Transition(id state.ScreenID) error {
	next, err := g.build(id)
	if err != nil {
		return fmt.Errorf("failed to create screen %s: %w", id, err)
	}

	prev := g.current
	g.current = next
	prev.OnExit()
	g.transitions++

	g.logger.Info("screen transition", "from", prev.ID(), "to", id)
	return nil
}

// HandlePointer forwards a pointer press to the active screen.
func (g *Game) HandlePointer(button ebiten.MouseButton, x, y float64) {
	g.current.HandlePointer(button, x, y)
}

// Draw renders the active screen.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.TickRender(screen)
}

// TickRender forwards to the active screen's Draw.
func (g *Game) TickRender(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// RequestExit asks the host loop to stop after the current tick.
// Implements scene.Host.
func (g *Game) RequestExit() {
	if !g.exitRequested {
		g.logger.Info("exit requested", "screen", g.current.ID())
	}
	g.exitRequested = true
}

// ExitRequested reports whether a screen asked the application to quit.
func (g *Game) ExitRequested() bool {
	return g.exitRequested
}

// Current returns the active screen.
func (g *Game) Current() scene.Screen {
	return g.current
}

// CurrentID returns the id of the active screen.
func (g *Game) CurrentID() state.ScreenID {
	return g.current.ID()
}

// Session returns the shared session.
func (g *Game) Session() *session.Session {
	return g.shared
}

// Transitions returns how many transitions have happened.
func (g *Game) Transitions() int {
	return g.transitions
}
