package core

import "fmt"

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as "#rrggbb" (alpha is dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
