// Package scene defines the Screen interface for application screens.
//
// Each screen (main menu, difficulty selection, playing, leader board)
// implements Screen. The game driver owns exactly one active Screen,
// forwards input and frame callbacks to it, and swaps it when Update
// requests a transition.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// Screen represents one application screen.
type Screen interface {
	// ID returns which screen this is.
	ID() state.ScreenID

	// Update advances the screen by one tick.
	// shared is lent exclusively for the duration of the call.
	// Returns the next screen and true when a transition is requested,
	// at most once per recorded intent.
	Update(shared *session.Session) (next state.ScreenID, ok bool)

	// Draw renders the screen. It must not change any state.
	Draw(dst *ebiten.Image)

	// HandlePointer records the intent of a pointer press at (x, y) in
	// screen coordinates. It never performs a transition itself.
	HandlePointer(button ebiten.MouseButton, x, y float64)

	// OnExit is called once the replacement screen exists.
	// Use this for resource release.
	OnExit()
}

// Host is the hosting application. Screens use it for effects that are
// not screen transitions.
type Host interface {
	RequestExit()
}

// Context carries what every screen constructor needs.
type Context struct {
	Assets *render.Assets
	Host   Host
	Width  int
	Height int
	TPS    int
}

// Pending is a single-slot pending transition. A later request replaces
// an earlier one that has not been taken yet.
type Pending struct {
	next state.ScreenID
	ok   bool
}

// Request records a transition to id.
func (p *Pending) Request(id state.ScreenID) {
	p.next = id
	p.ok = true
}

// Take returns the pending transition and clears it.
func (p *Pending) Take() (state.ScreenID, bool) {
	if !p.ok {
		return 0, false
	}
	next := p.next
	p.next, p.ok = 0, false
	return next, true
}

// Peek reports the pending transition without clearing it.
func (p *Pending) Peek() (state.ScreenID, bool) {
	return p.next, p.ok
}
