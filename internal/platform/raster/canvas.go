// Package raster provides a software RGBA framebuffer and the headless
// backend built on it.
package raster

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Canvas is an in-memory framebuffer implementing core.Canvas.
// Drawing outside the surface is clipped.
type Canvas struct {
	img    *image.RGBA
	frames int
}

// NewCanvas allocates a width x height framebuffer.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the framebuffer width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the framebuffer height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Clear fills the whole framebuffer with bg.
func (c *Canvas) Clear(bg core.Color) {
	rgba := toRGBA(bg)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	rgba := toRGBA(col)
	area := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(c.img.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c.img.SetRGBA(x, y, rgba)
		}
	}
}

// FillCircle fills the disk of the given radius centered on (x, y).
func (c *Canvas) FillCircle(x, y, radius int, col core.Color) {
	rgba := toRGBA(col)
	core.RasterizeDisk(x, y, radius, func(px, py int) {
		// SetRGBA clips out-of-bounds points itself
		c.img.SetRGBA(px, py, rgba)
	})
}

// Present counts a finished frame. The buffer is read in place.
func (c *Canvas) Present() {
	c.frames++
}

// Frames returns the number of presented frames.
func (c *Canvas) Frames() int {
	return c.frames
}

// At returns the color of pixel (x, y); out-of-bounds pixels are transparent.
func (c *Canvas) At(x, y int) core.Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return core.Color{}
	}
	p := c.img.RGBAAt(x, y)
	return core.Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Image exposes the framebuffer.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
