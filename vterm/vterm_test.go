package vterm

import (
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

func feed(t *testing.T, term *Terminal, s string) {
	t.Helper()
	n, err := term.Write([]byte(s))
	if err != nil {
		t.Fatalf("Write(%q) error: %v", s, err)
	}
	if n != len(s) {
		t.Fatalf("Write(%q) = %d; want %d", s, n, len(s))
	}
}

func TestTerminalPlainText(t *testing.T) {
	term := New(10, 3)
	feed(t, term, "hi")

	if ch, fg, bg := term.Cell(0, 0); ch != 'h' || fg != 7 || bg != 0 {
		t.Fatalf("Cell(0,0) = %q/%d/%d; want 'h'/7/0", ch, fg, bg)
	}
	if ch, _, _ := term.Cell(1, 0); ch != 'i' {
		t.Fatalf("Cell(1,0) = %q; want 'i'", ch)
	}
	if x, y := term.Cursor(); x != 2 || y != 0 {
		t.Fatalf("Cursor() = (%d,%d); want (2,0)", x, y)
	}
}

func TestTerminalCursorPosition(t *testing.T) {
	tests := []struct {
		seq  string
		x, y int
	}{
		{"\x1b[5;10H", 9, 4},
		{"\x1b[H", 0, 0},
		{"\x1b[;3H", 2, 0},
		{"\x1b[2H", 0, 1},
		{"\x1b[99;99H", 9, 4},
		{"\x1b[3;4f", 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.seq, func(t *testing.T) {
			term := New(10, 5)
			feed(t, term, tc.seq)
			if x, y := term.Cursor(); x != tc.x || y != tc.y {
				t.Fatalf("cursor after %q = (%d,%d); want (%d,%d)", tc.seq, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestTerminalColors(t *testing.T) {
	term := New(8, 1)
	feed(t, term, "\x1b[44m \x1b[41m \x1b[m \x1b[0;45m ")

	want := []uint8{4, 1, 0, 5}
	for x, bg := range want {
		if _, _, got := term.Cell(x, 0); got != bg {
			t.Fatalf("Cell(%d,0) bg = %d; want %d", x, got, bg)
		}
	}
	if _, fg, _ := term.Cell(2, 0); fg != 7 {
		t.Fatalf("Cell(2,0) fg after reset = %d; want 7", fg)
	}
}

func TestTerminalForegroundColors(t *testing.T) {
	term := New(4, 1)
	feed(t, term, "\x1b[31mx\x1b[39my")

	if _, fg, _ := term.Cell(0, 0); fg != 1 {
		t.Fatalf("Cell(0,0) fg = %d; want 1", fg)
	}
	if _, fg, _ := term.Cell(1, 0); fg != 7 {
		t.Fatalf("Cell(1,0) fg = %d; want 7", fg)
	}
}

func TestTerminalEraseDisplay(t *testing.T) {
	term := New(4, 2)
	feed(t, term, "abcd\r\nefgh")
	feed(t, term, "\x1b[44m\x1b[2J")

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			ch, _, bg := term.Cell(x, y)
			if ch != ' ' || bg != 4 {
				t.Fatalf("Cell(%d,%d) = %q/bg %d; want ' '/bg 4", x, y, ch, bg)
			}
		}
	}
}

func TestTerminalEraseToEnd(t *testing.T) {
	term := New(4, 2)
	feed(t, term, "abcd\r\nefgh")
	feed(t, term, "\x1b[1;3H\x1b[J")

	if ch, _, _ := term.Cell(1, 0); ch != 'b' {
		t.Fatalf("Cell(1,0) = %q; want 'b' untouched", ch)
	}
	if ch, _, _ := term.Cell(2, 0); ch != ' ' {
		t.Fatalf("Cell(2,0) = %q; want erased", ch)
	}
	if ch, _, _ := term.Cell(0, 1); ch != ' ' {
		t.Fatalf("Cell(0,1) = %q; want erased", ch)
	}
}

func TestTerminalCursorVisibility(t *testing.T) {
	term := New(4, 2)
	if !term.CursorVisible() {
		t.Fatal("new terminal should show the cursor")
	}
	feed(t, term, "\x1b[?25l")
	if term.CursorVisible() {
		t.Fatal("cursor still visible after hide")
	}
	feed(t, term, "\x1b[?25h")
	if !term.CursorVisible() {
		t.Fatal("cursor still hidden after show")
	}
}

func TestTerminalFrameStream(t *testing.T) {
	// A full 4x3 frame the way the encoder sends one: home, then cells in
	// row order with color changes only, rows separated by CRLF.
	term := New(4, 3)
	feed(t, term, "\x1b[1;1H\x1b[41m  \x1b[42m  \r\n    \r\n\x1b[40m    ")

	want := [3][4]uint8{
		{1, 1, 2, 2},
		{2, 2, 2, 2},
		{0, 0, 0, 0},
	}
	for y := range want {
		for x, bg := range want[y] {
			ch, _, got := term.Cell(x, y)
			if ch != ' ' {
				t.Fatalf("Cell(%d,%d) ch = %q; want space", x, y, ch)
			}
			if got != bg {
				t.Fatalf("Cell(%d,%d) bg = %d; want %d", x, y, got, bg)
			}
		}
	}
}

func TestTerminalWrapThenNewline(t *testing.T) {
	// Writing exactly cols bytes then CRLF must advance one row, not two.
	term := New(4, 3)
	feed(t, term, "aaaa\r\nb")

	if ch, _, _ := term.Cell(0, 1); ch != 'b' {
		t.Fatalf("Cell(0,1) = %q; want 'b'", ch)
	}
	if ch, _, _ := term.Cell(0, 2); ch != ' ' {
		t.Fatalf("Cell(0,2) = %q; want blank row", ch)
	}
}

func TestTerminalScroll(t *testing.T) {
	term := New(4, 2)
	feed(t, term, "a\r\nb\r\nc")

	if ch, _, _ := term.Cell(0, 0); ch != 'b' {
		t.Fatalf("Cell(0,0) after scroll = %q; want 'b'", ch)
	}
	if ch, _, _ := term.Cell(0, 1); ch != 'c' {
		t.Fatalf("Cell(0,1) after scroll = %q; want 'c'", ch)
	}
}

func TestTerminalResetSequence(t *testing.T) {
	term := New(4, 2)
	feed(t, term, "\x1b[41m\x1b[?25lX\x1bc")

	if ch, _, bg := term.Cell(0, 0); ch != ' ' || bg != 0 {
		t.Fatalf("Cell(0,0) after RIS = %q/bg %d; want blank/0", ch, bg)
	}
	if x, y := term.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor after RIS = (%d,%d); want home", x, y)
	}
	if !term.CursorVisible() {
		t.Fatal("cursor hidden after RIS")
	}
}

func TestSurfaceFillClips(t *testing.T) {
	s := NewSurface(4, 4)
	red := Palette[1]
	if err := s.FillRectangle(-2, -2, 4, 4, red); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	if got := s.At565(0, 0); got != rgb565(red.R, red.G, red.B) {
		t.Fatalf("At565(0,0) = %#x; want red", got)
	}
	if got := s.At565(2, 2); got != 0 {
		t.Fatalf("At565(2,2) = %#x; want untouched", got)
	}
}

func TestSurfaceWriteRGBA(t *testing.T) {
	s := NewSurface(2, 1)
	s.SetPixel(1, 0, Palette[1])

	buf := make([]byte, 8)
	s.WriteRGBA(buf)

	wr, wg, wb := rgb888From565(rgb565(Palette[1].R, Palette[1].G, Palette[1].B))
	if buf[4] != wr || buf[5] != wg || buf[6] != wb || buf[7] != 0xff {
		t.Fatalf("pixel 1 = %v; want [%d %d %d 255]", buf[4:8], wr, wg, wb)
	}
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 0xff {
		t.Fatalf("pixel 0 = %v; want black", buf[0:4])
	}
}

func TestTerminalDraw(t *testing.T) {
	term := New(2, 1)
	term.Configure(&Config{Font: &proggy.TinySZ8pt7b, FontHeight: 10, FontOffset: 6})
	feed(t, term, "\x1b[?25l\x1b[44mX ")

	w, h := term.PixelSize()
	if w <= 0 || h <= 0 {
		t.Fatalf("PixelSize() = (%d,%d); want positive", w, h)
	}
	s := NewSurface(w, h)
	if err := term.Draw(s); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	bg := rgb565(Palette[4].R, Palette[4].G, Palette[4].B)
	cellW := w / 2
	if got := s.At565(cellW+1, 1); got != bg {
		t.Fatalf("blank cell pixel = %#x; want bg %#x", got, bg)
	}

	glyph := 0
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < cellW; x++ {
			if s.At565(x, y) != bg {
				glyph++
			}
		}
	}
	if glyph == 0 {
		t.Fatal("no glyph pixels drawn for 'X'")
	}
}

func TestTerminalDrawWithoutFont(t *testing.T) {
	term := New(2, 1)
	if err := term.Draw(NewSurface(8, 8)); err == nil {
		t.Fatal("Draw without Configure should fail")
	}
}
