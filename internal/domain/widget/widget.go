// Package widget provides the clickable regions screens are built from.
package widget

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is a labeled clickable region.
type Button struct {
	Rect  Rect
	Label string
}

// PrimaryButton is the pointer button that activates regions.
const PrimaryButton = ebiten.MouseButtonLeft

// Hits returns the indices of every button whose bounds contain (x, y) when
// the primary button was pressed. Overlapping buttons all register; no
// first-match-wins.
func Hits(buttons []Button, button ebiten.MouseButton, x, y float64) []int {
	if button != PrimaryButton {
		return nil
	}
	var hits []int
	for i, b := range buttons {
		if b.Rect.Contains(x, y) {
			hits = append(hits, i)
		}
	}
	return hits
}
