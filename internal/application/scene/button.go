package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sudoku/internal/domain/widget"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// DrawButton renders b. Highlighted buttons get a brighter fill.
func DrawButton(dst *ebiten.Image, b widget.Button, face text.Face, highlighted bool) {
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.W), float32(b.Rect.H)
	vector.DrawFilledRect(dst, x, y, w, h, buttonFill(highlighted), false)
	vector.StrokeRect(dst, x, y, w, h, 2, render.ColorButtonLine, false)

	cx, cy := b.Rect.Center()
	render.DrawText(dst, b.Label, face, cx, cy, render.ColorText)
}

func buttonFill(highlighted bool) color.Color {
	if highlighted {
		return render.ColorButtonFocus
	}
	return render.ColorButton
}
