// Package term encodes framebuffer contents and cursor control as ANSI
// escape sequences over a serial byte channel. Every byte waits for channel
// space first, so output proceeds at the pace of the wire.
package term

import (
	"runtime"

	"glint/hal"
	"glint/render"
)

// Terminal drives one serial channel.
type Terminal struct {
	ch hal.Serial
}

// New returns a Terminal writing to ch.
func New(ch hal.Serial) *Terminal {
	return &Terminal{ch: ch}
}

func (t *Terminal) writeByte(b byte) {
	if t == nil || t.ch == nil {
		return
	}
	for !t.ch.SpaceAvailable() {
		runtime.Gosched()
	}
	t.ch.WriteByte(b)
}

// WriteString sends raw text.
func (t *Terminal) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		t.writeByte(s[i])
	}
}

// WriteNumber sends n as decimal digits, most significant first, with
// leading zeroes suppressed. Zero produces no digits at all, so a reset
// goes out in its short "\x1b[m" form.
func (t *Terminal) WriteNumber(n uint8) {
	wrote := false
	if d := n / 100 % 10; d > 0 {
		t.writeByte('0' + d)
		wrote = true
	}
	if d := n / 10 % 10; d > 0 || wrote {
		t.writeByte('0' + d)
		wrote = true
	}
	if d := n % 10; d > 0 || wrote {
		t.writeByte('0' + d)
	}
}

// CursorTo moves the terminal cursor to the zero-based cell (x, y). The wire
// form is one-based row;column.
func (t *Terminal) CursorTo(x, y uint8) {
	t.writeByte(0x1b)
	t.writeByte('[')
	t.WriteNumber(y + 1)
	t.writeByte(';')
	t.WriteNumber(x + 1)
	t.writeByte('H')
}

// SetColor selects an SGR attribute, usually one of the render color codes.
// Zero resets all attributes.
func (t *Terminal) SetColor(c uint8) {
	t.writeByte(0x1b)
	t.writeByte('[')
	t.WriteNumber(c)
	t.writeByte('m')
}

// ClearScreen erases the whole display.
func (t *Terminal) ClearScreen() {
	t.writeByte(0x1b)
	t.writeByte('[')
	t.WriteNumber(2)
	t.writeByte('J')
}

// HideCursor stops the terminal from drawing its cursor over the frame.
func (t *Terminal) HideCursor() {
	t.WriteString("\x1b[?25l")
}

// ShowCursor restores the terminal cursor.
func (t *Terminal) ShowCursor() {
	t.WriteString("\x1b[?25h")
}

// Reset clears the selected attributes back to terminal defaults.
func (t *Terminal) Reset() {
	t.SetColor(0)
}

// DisplayFrame sends a full frame: wait out any transmission in flight, home
// the cursor so the new frame tiles over the old one, then walk the cells in
// row order emitting one space per cell. A color change is sent only when a
// cell differs from the previous one.
func (t *Terminal) DisplayFrame(f *render.Framebuffer) {
	if t == nil || t.ch == nil || f == nil {
		return
	}

	for t.ch.Transmitting() {
		runtime.Gosched()
	}

	t.CursorTo(0, 0)

	w := f.Width()
	lastColor := uint8(0)
	for i, c := range f.Pix() {
		if i > 0 && i%w == 0 {
			t.writeByte('\r')
			t.writeByte('\n')
		}
		if lastColor != c {
			lastColor = c
			t.SetColor(c)
		}
		t.writeByte(' ')
	}
}
