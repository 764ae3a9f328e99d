// Package mainmenu provides the title screen.
package mainmenu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/domain/widget"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// Action is one of the main menu's buttons.
type Action int

const (
	ActionPlay Action = iota
	ActionLeaderBoard
	ActionExit
	actionCount
)

// Background gradient colors
var (
	colorEdgeA = color.RGBA{4, 0, 6, 255}
	colorEdgeB = color.RGBA{0, 0, 20, 255}
	colorMid   = color.RGBA{28, 0, 40, 255}
)

// MainMenu is the title screen.
type MainMenu struct {
	ctx        *scene.Context
	buttons    []widget.Button
	background *render.Mesh
	pending    scene.Pending
	released   bool
}

// New creates the main menu.
func New(ctx *scene.Context) *MainMenu {
	cx := float64(ctx.Width) / 2
	buttons := make([]widget.Button, actionCount)
	buttons[ActionPlay] = widget.Button{Rect: widget.Rect{X: cx - 40, Y: 200, W: 80, H: 40}, Label: "PLAY"}
	buttons[ActionLeaderBoard] = widget.Button{Rect: widget.Rect{X: cx - 80, Y: 260, W: 160, H: 40}, Label: "LEADERBOARD"}
	buttons[ActionExit] = widget.Button{Rect: widget.Rect{X: cx - 40, Y: 320, W: 80, H: 40}, Label: "EXIT"}

	return &MainMenu{
		ctx:        ctx,
		buttons:    buttons,
		background: render.GradientBackground(float32(ctx.Width), float32(ctx.Height), colorEdgeA, colorEdgeB, colorMid),
	}
}

// ID implements scene.Screen.
func (m *MainMenu) ID() state.ScreenID { return state.ScreenMainMenu }

// Bounds returns the region of the given button.
func (m *MainMenu) Bounds(a Action) widget.Rect {
	return m.buttons[a].Rect
}

// Update returns the transition recorded by the last pointer press.
func (m *MainMenu) Update(_ *session.Session) (state.ScreenID, bool) {
	return m.pending.Take()
}

// Draw renders the title, author line and buttons over the gradient.
func (m *MainMenu) Draw(dst *ebiten.Image) {
	dst.Fill(render.ColorBackground)
	m.background.Draw(dst)

	for _, b := range m.buttons {
		scene.DrawButton(dst, b, m.ctx.Assets.Button, false)
	}

	w, h := float64(m.ctx.Width), float64(m.ctx.Height)
	render.DrawText(dst, "SUDOKU", m.ctx.Assets.Title, w/2, 100, render.ColorText)
	render.DrawText(dst, "Made by alimulap", m.ctx.Assets.Small, w-80, h-30, render.ColorText)
}

// HandlePointer activates every button under the pointer. Exit asks the
// host to quit right away; the other buttons wait for the next Update.
func (m *MainMenu) HandlePointer(button ebiten.MouseButton, x, y float64) {
	for _, i := range widget.Hits(m.buttons, button, x, y) {
		switch Action(i) {
		case ActionPlay:
			m.pending.Request(state.ScreenSelectDifficulty)
		case ActionLeaderBoard:
			m.pending.Request(state.ScreenLeaderBoard)
		case ActionExit:
			if m.ctx.Host != nil {
				m.ctx.Host.RequestExit()
			}
		}
	}
}

// OnExit releases the menu's buttons and background.
func (m *MainMenu) OnExit() {
	m.buttons = nil
	m.background.Release()
	m.released = true
}

// Released reports whether OnExit has run.
func (m *MainMenu) Released() bool { return m.released }
