package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent is a pointer press in screen coordinates.
type PointerEvent struct {
	Button ebiten.MouseButton
	X, Y   float64
}

// InputSource yields the pointer events of the current tick.
type InputSource interface {
	Poll() []PointerEvent
}

// polledButtons are the mouse buttons forwarded to screens.
var polledButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenInput reads presses from ebiten. Positions are already in the
// logical screen space returned by Layout.
type EbitenInput struct {
	touches []ebiten.TouchID
}

// NewEbitenInput creates a new ebiten input source
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll returns the buttons pressed this tick. Touches count as primary
// button presses.
func (s *EbitenInput) Poll() []PointerEvent {
	var events []PointerEvent

	mx, my := ebiten.CursorPosition()
	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, PointerEvent{Button: b, X: float64(mx), Y: float64(my)})
		}
	}

	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		tx, ty := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{Button: ebiten.MouseButtonLeft, X: float64(tx), Y: float64(ty)})
	}

	return events
}

// ScriptedInput replays fixed events keyed by tick number. Useful for
// tests and headless runs.
type ScriptedInput struct {
	events map[int][]PointerEvent
	tick   int
}

// NewScriptedInput creates a scripted source. events maps a tick index
// (starting at 0) to the presses delivered on that tick.
func NewScriptedInput(events map[int][]PointerEvent) *ScriptedInput {
	return &ScriptedInput{events: events}
}

// Poll returns the events for the current tick and advances.
func (s *ScriptedInput) Poll() []PointerEvent {
	ev := s.events[s.tick]
	s.tick++
	return ev
}

// Tick returns how many ticks have been polled.
func (s *ScriptedInput) Tick() int {
	return s.tick
}
