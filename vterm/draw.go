package vterm

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is the display contract Draw needs: the drivers interface plus
// rectangle fills.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

var errNoFont = errors.New("vterm: terminal not configured with a font")

// Draw paints the whole grid onto d and calls Display. Configure must have
// been called first.
func (t *Terminal) Draw(d Displayer) error {
	if t.font == nil {
		return errNoFont
	}

	for y := 0; y < t.rows; y++ {
		py := int16(y) * t.fontHeight
		for x := 0; x < t.cols; x++ {
			c := t.cells[y*t.cols+x]
			px := int16(x) * t.fontWidth
			_ = d.FillRectangle(px, py, t.fontWidth, t.fontHeight, Palette[c.bg&7])
			if c.ch != ' ' && c.ch != 0 {
				t.drawGlyph(d, px, py, c)
			}
		}
	}

	if t.visible {
		px := int16(t.curX) * t.fontWidth
		py := int16(t.curY) * t.fontHeight
		_ = d.FillRectangle(px, py, t.fontWidth, t.fontHeight, Palette[t.fg&7])
	}

	return d.Display()
}

// drawGlyph renders one character clipped to its cell. The clip box extends
// a couple of pixels left and right: some fonts carry a negative XOffset and
// paint into the previous cell.
func (t *Terminal) drawGlyph(d Displayer, px, py int16, c cell) {
	const padX = int16(2)
	clip := clipDisplayer{
		base: d,
		x0:   px - padX,
		y0:   py,
		x1:   px + t.fontWidth + padX,
		y1:   py + t.fontHeight,
	}
	tinyfont.DrawChar(clip, t.font, px, py+t.fontOffset, rune(c.ch), Palette[c.fg&7])
}

type clipDisplayer struct {
	base Displayer
	x0   int16
	y0   int16
	x1   int16
	y1   int16
}

func (d clipDisplayer) Size() (x, y int16) { return d.base.Size() }

func (d clipDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.base.SetPixel(x, y, c)
}

func (d clipDisplayer) Display() error { return d.base.Display() }
