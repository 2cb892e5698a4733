package cinder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface adapts an *ebiten.Image to the Surface interface, drawing
// particles as antialiased filled circles. The target is typically the
// screen image handed to ebiten.Game.Draw; call SetTarget each frame if it
// changes.
type ImageSurface struct {
	target *ebiten.Image
}

// NewImageSurface creates a surface drawing onto img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{target: img}
}

// SetTarget redirects subsequent draws onto img.
func (s *ImageSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Width returns the target image width in pixels.
func (s *ImageSurface) Width() float64 {
	if s.target == nil {
		return 0
	}
	return float64(s.target.Bounds().Dx())
}

// Height returns the target image height in pixels.
func (s *ImageSurface) Height() float64 {
	if s.target == nil {
		return 0
	}
	return float64(s.target.Bounds().Dy())
}

// DrawCircle draws a filled circle centered at (x, y). Colors are
// premultiplied at submission, matching ebiten's expectations.
func (s *ImageSurface) DrawCircle(x, y, radius float64, c Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), c.toRGBA(), true)
}
