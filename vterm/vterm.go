// Package vterm is a small virtual terminal: a fixed cell grid driven by the
// ANSI escape subset the frame encoder emits. The desktop window feeds frame
// bytes into a Terminal and draws the resulting grid onto a Displayer, so
// the simulator shows exactly what a serial terminal would.
package vterm

import (
	"bytes"
	"strconv"
	"strings"

	"tinygo.org/x/tinyfont"
)

type cell struct {
	ch byte
	fg uint8
	bg uint8
}

type state uint8

const (
	stateInput state = iota
	stateEscape
	stateCSI
)

const (
	defaultFG = 7
	defaultBG = 0
)

// Terminal is a cols x rows cell grid with a cursor and the current SGR
// attributes. It implements io.Writer; bytes pass through an escape parser
// that understands cursor addressing, colors, erase and cursor visibility.
type Terminal struct {
	cols  int
	rows  int
	cells []cell

	curX    int
	curY    int
	fg      uint8
	bg      uint8
	visible bool

	state  state
	params *bytes.Buffer

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16
}

// Config holds the font used when drawing the grid onto a display.
type Config struct {
	Font       tinyfont.Fonter
	FontHeight int16
	FontOffset int16
}

// New returns a Terminal with the given grid size. Dimensions below one are
// raised to one.
func New(cols, rows int) *Terminal {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t := &Terminal{
		cols:   cols,
		rows:   rows,
		cells:  make([]cell, cols*rows),
		params: &bytes.Buffer{},
	}
	t.Reset()
	return t
}

// Configure sets the font for Draw. Parsing works without it.
func (t *Terminal) Configure(cfg *Config) {
	_, charWidth := tinyfont.LineWidth(cfg.Font, "0")
	t.font = cfg.Font
	t.fontWidth = int16(charWidth)
	t.fontHeight = cfg.FontHeight
	t.fontOffset = cfg.FontOffset
}

// Reset clears the grid, homes the cursor and restores default attributes.
func (t *Terminal) Reset() {
	t.fg = defaultFG
	t.bg = defaultBG
	t.visible = true
	t.curX = 0
	t.curY = 0
	t.state = stateInput
	for i := range t.cells {
		t.cells[i] = cell{ch: ' ', fg: defaultFG, bg: defaultBG}
	}
}

// Size returns the grid dimensions in cells.
func (t *Terminal) Size() (cols, rows int) { return t.cols, t.rows }

// Cell returns the character and colors at a grid position. Out of range
// positions return zeroes.
func (t *Terminal) Cell(x, y int) (ch byte, fg, bg uint8) {
	if x < 0 || y < 0 || x >= t.cols || y >= t.rows {
		return 0, 0, 0
	}
	c := t.cells[y*t.cols+x]
	return c.ch, c.fg, c.bg
}

// Cursor returns the cursor position in cells.
func (t *Terminal) Cursor() (x, y int) { return t.curX, t.curY }

// CursorVisible reports whether the emitter has shown the cursor.
func (t *Terminal) CursorVisible() bool { return t.visible }

// PixelSize returns the grid size in pixels under the configured font, or
// zeroes before Configure.
func (t *Terminal) PixelSize() (w, h int16) {
	return int16(t.cols) * t.fontWidth, int16(t.rows) * t.fontHeight
}

// Write feeds bytes through the escape parser.
func (t *Terminal) Write(p []byte) (int, error) {
	for _, b := range p {
		t.putByte(b)
	}
	return len(p), nil
}

// WriteByte feeds a single byte through the escape parser.
func (t *Terminal) WriteByte(b byte) error {
	t.putByte(b)
	return nil
}

func (t *Terminal) putByte(b byte) {
	switch t.state {
	case stateInput:
		switch {
		case b == 0x1b:
			t.state = stateEscape
		case b == '\r':
			t.curX = 0
		case b == '\n':
			t.lf()
		case b >= 0x20 && b <= 0x7e:
			t.drawByte(b)
		}

	case stateEscape:
		switch b {
		case '[':
			t.params.Reset()
			t.state = stateCSI
		case 'c':
			// RIS: Reset to Initial State
			t.Reset()
		default:
			t.state = stateInput
		}

	case stateCSI:
		switch {
		case b >= 0x20 && b <= 0x3f:
			// parameter and intermediate bytes
			t.params.WriteByte(b)
		default:
			t.dispatchCSI(b)
			t.state = stateInput
		}
	}
}

func (t *Terminal) dispatchCSI(final byte) {
	raw := t.params.String()

	switch final {
	case 'H', 'f':
		// CUP: Cursor Position, 1-based row;col
		p := splitParams(raw, 1)
		row := paramAt(p, 0, 1)
		col := paramAt(p, 1, 1)
		t.curY = clamp(row-1, 0, t.rows-1)
		t.curX = clamp(col-1, 0, t.cols-1)
	case 'A':
		t.curY = clamp(t.curY-paramAt(splitParams(raw, 1), 0, 1), 0, t.rows-1)
	case 'B':
		t.curY = clamp(t.curY+paramAt(splitParams(raw, 1), 0, 1), 0, t.rows-1)
	case 'C':
		t.curX = clamp(t.curX+paramAt(splitParams(raw, 1), 0, 1), 0, t.cols-1)
	case 'D':
		t.curX = clamp(t.curX-paramAt(splitParams(raw, 1), 0, 1), 0, t.cols-1)
	case 'J':
		t.eraseInDisplay(paramAt(splitParams(raw, 0), 0, 0))
	case 'K':
		t.eraseInLine(paramAt(splitParams(raw, 0), 0, 0))
	case 'm':
		t.selectGraphicRendition(raw)
	case 'h':
		if privateParam(raw) == 25 {
			t.visible = true
		}
	case 'l':
		if privateParam(raw) == 25 {
			t.visible = false
		}
	}
}

func (t *Terminal) selectGraphicRendition(raw string) {
	for _, p := range splitParams(raw, 0) {
		switch {
		case p == 0:
			t.fg = defaultFG
			t.bg = defaultBG
		case p >= 30 && p <= 37:
			t.fg = uint8(p - 30)
		case p == 39:
			t.fg = defaultFG
		case p >= 40 && p <= 47:
			t.bg = uint8(p - 40)
		case p == 49:
			t.bg = defaultBG
		}
	}
}

func (t *Terminal) eraseInDisplay(mode int) {
	cur := t.curY*t.cols + t.curX
	blank := cell{ch: ' ', fg: t.fg, bg: t.bg}
	switch mode {
	case 1:
		for i := 0; i <= cur; i++ {
			t.cells[i] = blank
		}
	case 2:
		for i := range t.cells {
			t.cells[i] = blank
		}
	default:
		for i := cur; i < len(t.cells); i++ {
			t.cells[i] = blank
		}
	}
}

func (t *Terminal) eraseInLine(mode int) {
	row := t.curY * t.cols
	blank := cell{ch: ' ', fg: t.fg, bg: t.bg}
	switch mode {
	case 1:
		for x := 0; x <= t.curX; x++ {
			t.cells[row+x] = blank
		}
	case 2:
		for x := 0; x < t.cols; x++ {
			t.cells[row+x] = blank
		}
	default:
		for x := t.curX; x < t.cols; x++ {
			t.cells[row+x] = blank
		}
	}
}

// drawByte stores a printable byte at the cursor. Wrapping is deferred until
// the next draw so a newline right after the last column does not skip a row.
func (t *Terminal) drawByte(b byte) {
	if t.curX >= t.cols {
		t.curX = 0
		t.lf()
	}
	t.cells[t.curY*t.cols+t.curX] = cell{ch: b, fg: t.fg, bg: t.bg}
	t.curX++
}

func (t *Terminal) lf() {
	if t.curY+1 < t.rows {
		t.curY++
		return
	}
	t.scrollUp()
}

func (t *Terminal) scrollUp() {
	copy(t.cells, t.cells[t.cols:])
	blank := cell{ch: ' ', fg: t.fg, bg: t.bg}
	last := (t.rows - 1) * t.cols
	for x := 0; x < t.cols; x++ {
		t.cells[last+x] = blank
	}
}

func splitParams(raw string, def int) []int {
	parts := strings.Split(raw, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			n = def
		}
		out[i] = n
	}
	return out
}

func paramAt(p []int, i, def int) int {
	if i >= len(p) {
		return def
	}
	return p[i]
}

func privateParam(raw string) int {
	if !strings.HasPrefix(raw, "?") {
		return -1
	}
	n, err := strconv.Atoi(raw[1:])
	if err != nil {
		return -1
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
