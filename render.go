package dragdrop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used for solid color boxes. Created on
// first draw.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Draw paints the surface and every element at its absolute position,
// siblings in ZIndex order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawNode(screen, s.root, 1)
}

func drawNode(dst *ebiten.Image, n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if n.Width > 0 && n.Height > 0 && alpha > 0 {
		drawBox(dst, n, alpha)
	}
	for _, child := range n.paintOrder() {
		drawNode(dst, child, alpha)
	}
}

// drawBox stretches the node's image (or a white pixel tinted by Color)
// over its screen-space box.
func drawBox(dst *ebiten.Image, n *Node, alpha float64) {
	img := n.Image
	tint := ColorWhite
	if img == nil {
		img = solidPixel()
		tint = n.Color
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	o := n.Origin()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	op.GeoM.Translate(o.X, o.Y)

	a := tint.A * alpha
	op.ColorScale.Scale(float32(tint.R*a), float32(tint.G*a), float32(tint.B*a), float32(a))
	dst.DrawImage(img, &op)
}
