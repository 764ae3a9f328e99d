package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteImage returns a 1x1 white source for DrawTriangles. The inner pixel
// of a 3x3 image avoids sampling the edges.
func whiteImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// Mesh is colored triangle geometry in screen coordinates.
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// GradientBackground builds a five-point fan covering a w x h screen:
// the four corners and the center, with the center tinted by mid and the
// corners alternating between edge colors a and b.
func GradientBackground(w, h float32, a, b, mid color.RGBA) *Mesh {
	v := func(x, y float32, c color.RGBA) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   0,
			SrcY:   0,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255,
		}
	}
	return &Mesh{
		Vertices: []ebiten.Vertex{
			v(0, 0, a),
			v(w, 0, b),
			v(w/2, h/2, mid),
			v(w, h, a),
			v(0, h, b),
		},
		Indices: []uint16{0, 1, 2, 2, 1, 3, 3, 2, 4, 4, 2, 0},
	}
}

// Draw renders the mesh onto dst.
func (m *Mesh) Draw(dst *ebiten.Image) {
	if m == nil || len(m.Indices) == 0 {
		return
	}
	dst.DrawTriangles(m.Vertices, m.Indices, whiteImage(), &ebiten.DrawTrianglesOptions{})
}

// Release drops the geometry. Drawing a released mesh is a no-op.
func (m *Mesh) Release() {
	if m == nil {
		return
	}
	m.Vertices = nil
	m.Indices = nil
}
