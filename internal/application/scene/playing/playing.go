// Package playing provides the puzzle screen.
package playing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/domain/widget"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// Action is one of the screen's buttons.
type Action int

const (
	ActionFinish Action = iota
	ActionAbandon
	actionCount
)

// Board geometry
const (
	boardX   = 40
	boardY   = 60
	cellSize = 40
	gridSize = 9
)

// Playing is the puzzle screen. It keeps its own copy of the session
// values it shows; finished games are written back through Update.
type Playing struct {
	ctx        *scene.Context
	buttons    []widget.Button
	board      widget.Rect
	difficulty session.Difficulty
	player     string
	ticks      int

	finished bool
	pending  scene.Pending
	released bool
}

// New creates the playing screen from a session whose difficulty and
// player are already populated (forced defaults if nothing was chosen).
func New(ctx *scene.Context, shared *session.Session) *Playing {
	side := float64(ctx.Width) - 240
	buttons := make([]widget.Button, actionCount)
	buttons[ActionFinish] = widget.Button{Rect: widget.Rect{X: side, Y: 300, W: 160, H: 40}, Label: "FINISH"}
	buttons[ActionAbandon] = widget.Button{Rect: widget.Rect{X: side, Y: 360, W: 160, H: 40}, Label: "ABANDON"}

	return &Playing{
		ctx:        ctx,
		buttons:    buttons,
		board:      widget.Rect{X: boardX, Y: boardY, W: cellSize * gridSize, H: cellSize * gridSize},
		difficulty: shared.Difficulty,
		player:     shared.Player,
	}
}

// ID implements scene.Screen.
func (p *Playing) ID() state.ScreenID { return state.ScreenPlaying }

// Bounds returns the region of the given button.
func (p *Playing) Bounds(a Action) widget.Rect {
	return p.buttons[a].Rect
}

// Difficulty returns the difficulty this game is played at.
func (p *Playing) Difficulty() session.Difficulty { return p.difficulty }

// Ticks returns how many ticks the game has been running.
func (p *Playing) Ticks() int { return p.ticks }

// Update advances the clock by one tick, or leaves the screen. Finishing
// records the result in the session before moving to the leader board.
func (p *Playing) Update(shared *session.Session) (state.ScreenID, bool) {
	next, ok := p.pending.Take()
	if !ok {
		p.ticks++
		return 0, false
	}
	if next == state.ScreenLeaderBoard && p.finished {
		shared.Record(session.Result{
			Player:     p.player,
			Difficulty: p.difficulty,
			Ticks:      p.ticks,
		})
	}
	return next, true
}

// Draw renders the grid, the game info and the buttons.
func (p *Playing) Draw(dst *ebiten.Image) {
	dst.Fill(render.ColorBackground)
	p.drawGrid(dst)

	side := float64(p.ctx.Width) - 240
	assets := p.ctx.Assets
	render.DrawTextLeft(dst, p.difficulty.String(), assets.Button, side, 80, render.ColorHighlight)
	render.DrawTextLeft(dst, fmt.Sprintf("Clues: %d", p.difficulty.Clues()), assets.Small, side, 120, render.ColorTextDim)
	render.DrawTextLeft(dst, "Player: "+p.player, assets.Small, side, 145, render.ColorTextDim)
	render.DrawTextLeft(dst, formatClock(p.ticks, p.ctx.TPS), assets.Button, side, 200, render.ColorText)

	for _, b := range p.buttons {
		scene.DrawButton(dst, b, assets.Button, false)
	}
}

func (p *Playing) drawGrid(dst *ebiten.Image) {
	x0, y0 := float32(p.board.X), float32(p.board.Y)
	size := float32(p.board.W)
	for i := 0; i <= gridSize; i++ {
		offset := float32(i * cellSize)
		width, clr := float32(1), render.ColorGridThin
		if i%3 == 0 {
			width, clr = 3, render.ColorGridThick
		}
		vector.StrokeLine(dst, x0+offset, y0, x0+offset, y0+size, width, clr, false)
		vector.StrokeLine(dst, x0, y0+offset, x0+size, y0+offset, width, clr, false)
	}
}

// HandlePointer records Finish or Abandon.
func (p *Playing) HandlePointer(button ebiten.MouseButton, x, y float64) {
	for _, i := range widget.Hits(p.buttons, button, x, y) {
		switch Action(i) {
		case ActionFinish:
			p.finished = true
			p.pending.Request(state.ScreenLeaderBoard)
		case ActionAbandon:
			p.finished = false
			p.pending.Request(state.ScreenMainMenu)
		}
	}
}

// OnExit releases the buttons.
func (p *Playing) OnExit() {
	p.buttons = nil
	p.released = true
}

// Released reports whether OnExit has run.
func (p *Playing) Released() bool { return p.released }

// formatClock renders ticks as mm:ss at the given tick rate.
func formatClock(ticks, tps int) string {
	if tps <= 0 {
		tps = 60
	}
	secs := ticks / tps
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
