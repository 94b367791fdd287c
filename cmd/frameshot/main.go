//go:build !tinygo

// Command frameshot renders orbit frames offline and writes them out as a
// raw ANSI stream, as PNG images, or both. Handy for goldens and for
// checking a scene without wiring up a device.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"glint/render"
	"glint/scene"
	"glint/term"
	"glint/vterm"
)

// captureSerial collects everything the terminal writes.
type captureSerial struct {
	buf []byte
}

func (s *captureSerial) SpaceAvailable() bool   { return true }
func (s *captureSerial) WriteByte(b byte)       { s.buf = append(s.buf, b) }
func (s *captureSerial) Transmitting() bool     { return false }
func (s *captureSerial) ReadByte() (byte, bool) { return 0, false }

type shot struct {
	frames  int
	every   int
	width   int
	height  int
	fovH    int
	fovV    int
	scale   int
	ansiOut string
	pngOut  string
}

func main() {
	var cfg shot
	flag.IntVar(&cfg.frames, "frames", 1, "Number of frames to render.")
	flag.IntVar(&cfg.every, "every", 1, "Orbit degrees between frames.")
	flag.IntVar(&cfg.width, "w", 80, "Frame width in cells.")
	flag.IntVar(&cfg.height, "h", 24, "Frame height in cells.")
	flag.IntVar(&cfg.fovH, "fovh", 100, "Horizontal field of view in degrees.")
	flag.IntVar(&cfg.fovV, "fovv", 75, "Vertical field of view in degrees.")
	flag.IntVar(&cfg.scale, "scale", 8, "Pixel size of one cell in PNG output.")
	flag.StringVar(&cfg.ansiOut, "ansi", "", "Write the raw ANSI frame stream to this file.")
	flag.StringVar(&cfg.pngOut, "png", "", "Write PNG frames to this path pattern (one %d verb).")
	flag.Parse()

	if cfg.ansiOut == "" && cfg.pngOut == "" {
		fmt.Fprintln(os.Stderr, "error: need -ansi or -png")
		os.Exit(2)
	}
	if cfg.pngOut != "" && !strings.Contains(cfg.pngOut, "%") {
		fmt.Fprintln(os.Stderr, "error: -png pattern needs a %d verb")
		os.Exit(2)
	}
	if cfg.frames < 1 {
		fmt.Fprintln(os.Stderr, "error: -frames must be at least 1")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg shot) error {
	fb, err := render.NewFramebuffer(cfg.width, cfg.height)
	if err != nil {
		return err
	}

	world := scene.Pyramid()
	cam := scene.DefaultCamera()
	cam.FOVHorizontal = cfg.fovH
	cam.FOVVertical = cfg.fovV
	orbit := scene.NewOrbit()

	ser := &captureSerial{}
	t := term.New(ser)

	var ansi *os.File
	if cfg.ansiOut != "" {
		ansi, err = os.Create(cfg.ansiOut)
		if err != nil {
			return fmt.Errorf("create %q: %w", cfg.ansiOut, err)
		}
		defer ansi.Close()

		ser.buf = ser.buf[:0]
		t.HideCursor()
		t.SetColor(render.ColorBlack)
		t.ClearScreen()
		if _, err := ansi.Write(ser.buf); err != nil {
			return fmt.Errorf("write %q: %w", cfg.ansiOut, err)
		}
	}

	for i := 0; i < cfg.frames; i++ {
		orbit.Apply(&cam)
		render.RenderFrame(world, &cam, fb)

		if ansi != nil {
			ser.buf = ser.buf[:0]
			t.DisplayFrame(fb)
			if _, err := ansi.Write(ser.buf); err != nil {
				return fmt.Errorf("write %q: %w", cfg.ansiOut, err)
			}
		}
		if cfg.pngOut != "" {
			path := fmt.Sprintf(cfg.pngOut, i)
			if err := writePNG(path, fb, cfg.scale); err != nil {
				return err
			}
		}

		for d := 0; d < cfg.every; d++ {
			orbit.Step()
		}
	}

	if ansi != nil {
		ser.buf = ser.buf[:0]
		t.CursorTo(0, uint8(cfg.height-1))
		t.Reset()
		t.ShowCursor()
		t.WriteString("\r\n")
		if _, err := ansi.Write(ser.buf); err != nil {
			return fmt.Errorf("write %q: %w", cfg.ansiOut, err)
		}
	}
	return nil
}

// writePNG maps each cell to one pixel, then scales up with a hard-edged
// resampler so the cell grid stays visible.
func writePNG(path string, fb *render.Framebuffer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	w, h := fb.Width(), fb.Height()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, vterm.Palette[fb.At(x, y)&7])
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
