package vterm

import "image/color"

// Palette maps the eight ANSI colors to panel colors.
var Palette = [8]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xaa, 0x00, 0x00, 0xff},
	{0x00, 0xaa, 0x00, 0xff},
	{0xaa, 0x55, 0x00, 0xff},
	{0x00, 0x00, 0xaa, 0xff},
	{0xaa, 0x00, 0xaa, 0xff},
	{0x00, 0xaa, 0xaa, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
}

// Surface is an in-memory RGB565 pixel buffer implementing Displayer. It
// stands in for the kind of panel a small terminal usually drives, so the
// desktop blit goes through the same 16-bit format a real display would.
type Surface struct {
	w   int16
	h   int16
	pix []uint16
}

func NewSurface(w, h int16) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Surface{w: w, h: h, pix: make([]uint16, int(w)*int(h))}
}

func (s *Surface) Size() (x, y int16) { return s.w, s.h }

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.pix[int(y)*int(s.w)+int(x)] = rgb565(c.R, c.G, c.B)
}

func (s *Surface) Display() error { return nil }

// FillRectangle clips against the surface bounds rather than reporting an
// error: glyph cells are padded past their box to cover font overhang.
func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0, y0 := int(x), int(y)
	x1, y1 := x0+int(width), y0+int(height)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > int(s.w) {
		x1 = int(s.w)
	}
	if y1 > int(s.h) {
		y1 = int(s.h)
	}
	p := rgb565(c.R, c.G, c.B)
	for yy := y0; yy < y1; yy++ {
		row := yy * int(s.w)
		for xx := x0; xx < x1; xx++ {
			s.pix[row+xx] = p
		}
	}
	return nil
}

// At565 returns the raw pixel word at a position, zero out of range.
func (s *Surface) At565(x, y int16) uint16 {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return s.pix[int(y)*int(s.w)+int(x)]
}

// WriteRGBA expands the 16-bit pixels into 8-bit RGBA, four bytes per pixel,
// for as many pixels as dst can hold.
func (s *Surface) WriteRGBA(dst []byte) {
	n := len(s.pix)
	if m := len(dst) / 4; m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		r, g, b := rgb888From565(s.pix[i])
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xff
	}
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1f
	gg := uint16(g>>2) & 0x3f
	bb := uint16(b>>3) & 0x1f
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1f
	gg := (p >> 5) & 0x3f
	bb := p & 0x1f

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
