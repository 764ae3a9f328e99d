// Package render holds the drawing resources shared by every screen:
// font faces, the color palette and the background mesh.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Colors for rendering
var (
	ColorBackground  = color.RGBA{10, 4, 18, 255}
	ColorText        = color.White
	ColorTextDim     = color.RGBA{150, 150, 170, 255}
	ColorHighlight   = color.RGBA{255, 215, 0, 255}
	ColorButton      = color.RGBA{40, 36, 70, 255}
	ColorButtonLine  = color.RGBA{120, 110, 200, 255}
	ColorButtonFocus = color.RGBA{70, 60, 130, 255}
	ColorGridThin    = color.RGBA{80, 80, 100, 255}
	ColorGridThick   = color.RGBA{180, 180, 210, 255}
)

// Font sizes in points at 72 DPI.
const (
	SizeTitle  = 80
	SizeButton = 20
	SizeSmall  = 15
)

// Assets are the faces every screen draws text with.
type Assets struct {
	Title  text.Face
	Button text.Face
	Small  text.Face
}

// LoadAssets parses the embedded Go fonts. A failure here is fatal for the
// application: no screen can be shown without its faces.
func LoadAssets() (*Assets, error) {
	title, err := NewFace(gobold.TTF, SizeTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	button, err := NewFace(gobold.TTF, SizeButton)
	if err != nil {
		return nil, fmt.Errorf("failed to load button font: %w", err)
	}
	small, err := NewFace(goregular.TTF, SizeSmall)
	if err != nil {
		return nil, fmt.Errorf("failed to load small font: %w", err)
	}
	return &Assets{Title: title, Button: button, Small: small}, nil
}

// NewFace builds a face of the given size from TrueType data.
func NewFace(ttf []byte, size float64) (text.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return text.NewGoXFace(face), nil
}

// DrawText draws s centered on (x, y).
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawTextLeft draws s with its left edge at x, vertically centered on y.
func DrawTextLeft(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
