// Package leaderboard provides the results screen.
package leaderboard

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/domain/widget"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// MaxRows is how many results the board lists.
const MaxRows = 10

// LeaderBoard lists the fastest finished games of this session.
type LeaderBoard struct {
	ctx      *scene.Context
	back     widget.Button
	rows     []session.Result
	pending  scene.Pending
	released bool
}

// New creates the leader board from a snapshot of the session's results.
func New(ctx *scene.Context, shared *session.Session) *LeaderBoard {
	return &LeaderBoard{
		ctx:  ctx,
		back: widget.Button{Rect: widget.Rect{X: 20, Y: float64(ctx.Height) - 60, W: 80, H: 40}, Label: "BACK"},
		rows: shared.Leaders(session.DifficultyUnset, MaxRows),
	}
}

// ID implements scene.Screen.
func (l *LeaderBoard) ID() state.ScreenID { return state.ScreenLeaderBoard }

// BackBounds returns the region of the Back button.
func (l *LeaderBoard) BackBounds() widget.Rect { return l.back.Rect }

// Rows returns the results shown, fastest first.
func (l *LeaderBoard) Rows() []session.Result { return l.rows }

// Update returns to the main menu once Back was pressed.
func (l *LeaderBoard) Update(_ *session.Session) (state.ScreenID, bool) {
	return l.pending.Take()
}

// Draw renders the ranked results.
func (l *LeaderBoard) Draw(dst *ebiten.Image) {
	dst.Fill(render.ColorBackground)

	assets := l.ctx.Assets
	w := float64(l.ctx.Width)
	render.DrawText(dst, "LEADERBOARD", assets.Button, w/2, 50, render.ColorText)

	if len(l.rows) == 0 {
		render.DrawText(dst, "No finished games yet", assets.Small, w/2, 200, render.ColorTextDim)
	}
	for i, r := range l.rows {
		y := 100 + float64(i)*28
		line := fmt.Sprintf("%2d. %-12s %-6s %8s", i+1, r.Player, r.Difficulty, r.Duration(l.ctx.TPS))
		render.DrawTextLeft(dst, line, assets.Small, w/2-180, y, rowColor(i))
	}

	scene.DrawButton(dst, l.back, assets.Button, false)
}

// rowColor returns the text color of the row at rank (zero-based).
// The fastest result is highlighted.
func rowColor(rank int) color.Color {
	var clr color.Color = render.ColorText
	if rank == 0 {
		clr = render.ColorHighlight
	}
	return clr
}

// HandlePointer records a return to the main menu.
func (l *LeaderBoard) HandlePointer(button ebiten.MouseButton, x, y float64) {
	if len(widget.Hits([]widget.Button{l.back}, button, x, y)) > 0 {
		l.pending.Request(state.ScreenMainMenu)
	}
}

// OnExit drops the result snapshot.
func (l *LeaderBoard) OnExit() {
	l.rows = nil
	l.released = true
}

// Released reports whether OnExit has run.
func (l *LeaderBoard) Released() bool { return l.released }
