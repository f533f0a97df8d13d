package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/raster"
)

// halfBlock draws the upper pixel as foreground and the lower as background.
const halfBlock = '▀'

type cellColors struct {
	fg, bg core.Color
}

// Renderer turns a Screen into styled terminal output. Styles are cached per
// color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellColors]lipgloss.Style)}
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.fg.Hex())).
		Background(lipgloss.Color(c.bg.Hex()))
	r.styles[c] = s
	return s
}

// Render converts the screen to a string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// Downsample maps the framebuffer onto the screen with nearest-pixel
// sampling. Each cell covers two vertical samples drawn as a half block.
func Downsample(src *raster.Canvas, dst *core.Screen) {
	cols, rows := dst.Width(), dst.Height()
	if cols == 0 || rows == 0 {
		return
	}
	w, h := src.Width(), src.Height()
	sub := rows * 2

	for cy := range rows {
		upperY := (2 * cy * h) / sub
		lowerY := ((2*cy + 1) * h) / sub
		for cx := range cols {
			px := (cx * w) / cols
			dst.SetCell(cx, cy, core.Cell{
				Rune: halfBlock,
				FG:   src.At(px, upperY),
				BG:   src.At(px, lowerY),
			})
		}
	}
}
