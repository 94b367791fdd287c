package render

import "fmt"

// Framebuffer is an indexed-color pixel buffer, one byte per pixel, row-major
// from the top-left corner. Each byte is a terminal color code.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFramebuffer allocates a framebuffer. Both dimensions must be in 1..255;
// the display path addresses the terminal with single-byte coordinates.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w < 1 || w > 255 || h < 1 || h > 255 {
		return nil, fmt.Errorf("render: framebuffer %dx%d outside 1..255", w, h)
	}
	return &Framebuffer{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h),
	}, nil
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pix returns the backing pixel slice. Callers must treat it as read-only.
func (f *Framebuffer) Pix() []uint8 { return f.pix }

// At returns the color at (x, y), or 0 when out of bounds.
func (f *Framebuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.pix[x+y*f.width]
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c uint8) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Set writes the color at (x, y). Out-of-bounds writes are dropped.
func (f *Framebuffer) Set(x, y int, c uint8) {
	f.setPixel(x, y, c)
}

func (f *Framebuffer) setPixel(x, y int, c uint8) {
	if x >= 0 && y >= 0 && x < f.width && y < f.height {
		f.pix[x+y*f.width] = c
	}
}

// paintf plots at a fractional coordinate, truncating toward zero. The guard
// runs in the float domain so that NaN and out-of-range values never reach
// the integer conversion.
func (f *Framebuffer) paintf(x, y Scalar, c uint8) {
	if x >= 0 && y >= 0 && x < Scalar(f.width) && y < Scalar(f.height) {
		f.setPixel(int(x), int(y), c)
	}
}
