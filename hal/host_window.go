//go:build !tinygo

package hal

import (
	"image"
	"image/color"

	"glint/internal/buildinfo"
	"glint/vterm"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"tinygo.org/x/tinyfont/proggy"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Cols  int
	Rows  int
	Scale int
}

// RunWindow opens a desktop window that plays the part of the serial
// terminal: frame bytes from the app are parsed into a character grid and
// drawn with a bitmap font, and keystrokes are injected on the serial
// receive side as the escape sequences a terminal would send. It blocks
// until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Cols <= 0 {
		cfg.Cols = 80
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 24
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}

	term := vterm.New(cfg.Cols, cfg.Rows)
	term.Configure(&vterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})

	h := New().(*hostHAL)
	h.serial.w = term
	step := newApp(h)

	w, hh := term.PixelSize()
	g := &hostGame{h: h, term: term, surf: vterm.NewSurface(w, hh), step: step}

	ebiten.SetWindowTitle("glint (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(w)*cfg.Scale, int(hh)*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	term *vterm.Terminal
	surf *vterm.Surface

	img     *image.RGBA
	gridImg *ebiten.Image
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollKeys()
	g.h.t.advance()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// pollKeys translates window input into the bytes a terminal emulator would
// put on the wire.
func (g *hostGame) pollKeys() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x80 {
			g.h.serial.inject([]byte{byte(r)})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.h.serial.inject([]byte{0x1b, '[', 'A'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.h.serial.inject([]byte{0x1b, '[', 'B'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.h.serial.inject([]byte{0x1b, '[', 'C'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.h.serial.inject([]byte{0x1b, '[', 'D'})
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.surf.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		g.gridImg = ebiten.NewImage(int(w), int(h))
	}

	if err := g.term.Draw(g.surf); err != nil {
		return
	}
	g.surf.WriteRGBA(g.img.Pix)
	g.gridImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.gridImg, nil)

	if g.h.led.lit() {
		for y := 1; y <= 3; y++ {
			for x := int(w) - 4; x < int(w)-1; x++ {
				screen.Set(x, y, color.RGBA{0x00, 0xff, 0x00, 0xff})
			}
		}
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surf.Size()
	return int(w), int(h)
}
