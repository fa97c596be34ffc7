package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a 2D drawing target in world units.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	StrokeRect(x, y, w, h float64)
	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)
}

// ImageSurface draws onto an ebiten image. OffsetX/OffsetY are subtracted
// from every coordinate.
type ImageSurface struct {
	Image            *ebiten.Image
	OffsetX, OffsetY float64

	stroke    color.Color
	fill      color.Color
	lineWidth float64
}

func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		Image:     img,
		stroke:    color.Black,
		fill:      color.Black,
		lineWidth: 1,
	}
}

func (s *ImageSurface) SetStrokeColor(c color.Color) {
	if s == nil {
		return
	}
	s.stroke = c
}

func (s *ImageSurface) SetFillColor(c color.Color) {
	if s == nil {
		return
	}
	s.fill = c
}

func (s *ImageSurface) SetLineWidth(w float64) {
	if s == nil {
		return
	}
	s.lineWidth = w
}

func (s *ImageSurface) StrokeRect(x, y, w, h float64) {
	if s == nil || s.Image == nil {
		return
	}
	vector.StrokeRect(s.Image, float32(x-s.OffsetX), float32(y-s.OffsetY), float32(w), float32(h), float32(s.lineWidth), s.stroke, false)
}

func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if s == nil || s.Image == nil {
		return
	}
	vector.FillRect(s.Image, float32(x-s.OffsetX), float32(y-s.OffsetY), float32(w), float32(h), s.fill, false)
}
