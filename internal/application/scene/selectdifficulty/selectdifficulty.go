// Package selectdifficulty provides the screen where the player picks a
// puzzle difficulty before playing.
package selectdifficulty

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/domain/widget"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// Action is one of the screen's buttons.
type Action int

const (
	ActionEasy Action = iota
	ActionMedium
	ActionHard
	ActionBack
	actionCount
)

// difficulties maps the difficulty buttons to their value.
var difficulties = [...]session.Difficulty{
	ActionEasy:   session.DifficultyEasy,
	ActionMedium: session.DifficultyMedium,
	ActionHard:   session.DifficultyHard,
}

// SelectDifficulty lets the player choose Easy, Medium or Hard.
type SelectDifficulty struct {
	ctx     *scene.Context
	buttons []widget.Button
	current session.Difficulty

	// chosen is written to the session by the Update that requests Playing.
	chosen   session.Difficulty
	pending  scene.Pending
	released bool
}

// New creates the screen. current is the difficulty already stored in the
// session, if any, and is highlighted.
func New(ctx *scene.Context, current session.Difficulty) *SelectDifficulty {
	cx := float64(ctx.Width) / 2
	buttons := make([]widget.Button, actionCount)
	buttons[ActionEasy] = widget.Button{Rect: widget.Rect{X: cx - 60, Y: 160, W: 120, H: 40}, Label: "EASY"}
	buttons[ActionMedium] = widget.Button{Rect: widget.Rect{X: cx - 60, Y: 220, W: 120, H: 40}, Label: "MEDIUM"}
	buttons[ActionHard] = widget.Button{Rect: widget.Rect{X: cx - 60, Y: 280, W: 120, H: 40}, Label: "HARD"}
	buttons[ActionBack] = widget.Button{Rect: widget.Rect{X: 20, Y: float64(ctx.Height) - 60, W: 80, H: 40}, Label: "BACK"}

	return &SelectDifficulty{
		ctx:     ctx,
		buttons: buttons,
		current: current,
	}
}

// ID implements scene.Screen.
func (s *SelectDifficulty) ID() state.ScreenID { return state.ScreenSelectDifficulty }

// Bounds returns the region of the given button.
func (s *SelectDifficulty) Bounds(a Action) widget.Rect {
	return s.buttons[a].Rect
}

// Update stores the chosen difficulty and requests Playing, or returns
// to the main menu.
func (s *SelectDifficulty) Update(shared *session.Session) (state.ScreenID, bool) {
	next, ok := s.pending.Take()
	if !ok {
		return 0, false
	}
	if next == state.ScreenPlaying {
		shared.Difficulty = s.chosen
	}
	return next, true
}

// Draw renders the heading and buttons.
func (s *SelectDifficulty) Draw(dst *ebiten.Image) {
	dst.Fill(render.ColorBackground)

	w := float64(s.ctx.Width)
	render.DrawText(dst, "SELECT DIFFICULTY", s.ctx.Assets.Button, w/2, 100, render.ColorText)

	for i, b := range s.buttons {
		highlighted := Action(i) < ActionBack && difficulties[i] == s.current
		scene.DrawButton(dst, b, s.ctx.Assets.Button, highlighted)
	}
}

// HandlePointer records the chosen difficulty or a return to the menu.
func (s *SelectDifficulty) HandlePointer(button ebiten.MouseButton, x, y float64) {
	for _, i := range widget.Hits(s.buttons, button, x, y) {
		switch a := Action(i); a {
		case ActionEasy, ActionMedium, ActionHard:
			s.chosen = difficulties[a]
			s.pending.Request(state.ScreenPlaying)
		case ActionBack:
			s.pending.Request(state.ScreenMainMenu)
		}
	}
}

// OnExit releases the buttons.
func (s *SelectDifficulty) OnExit() {
	s.buttons = nil
	s.released = true
}

// Released reports whether OnExit has run.
func (s *SelectDifficulty) Released() bool { return s.released }
