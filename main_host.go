//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glint/app"
	"glint/hal"
	"glint/internal/buildinfo"
)

func main() {
	var (
		window   bool
		headless bool
		tcfg     hal.TerminalConfig
		wcfg     hal.WindowConfig
		acfg     app.Config
	)
	flag.BoolVar(&window, "window", false, "Render into a window instead of the controlling terminal.")
	flag.BoolVar(&headless, "headless", false, "Render without output, for timing runs.")
	flag.IntVar(&tcfg.Hz, "hz", 30, "Step rate in terminal and headless modes.")
	flag.Uint64Var(&tcfg.Frames, "steps", 0, "Stop after N steps (0 = run until interrupted).")
	flag.IntVar(&acfg.Width, "w", 80, "Frame width in cells.")
	flag.IntVar(&acfg.Height, "h", 24, "Frame height in cells.")
	flag.IntVar(&acfg.FOVHorizontal, "fovh", 100, "Horizontal field of view in degrees.")
	flag.IntVar(&acfg.FOVVertical, "fovv", 75, "Vertical field of view in degrees.")
	flag.IntVar(&wcfg.Scale, "scale", 2, "Window pixel scale.")
	flag.BoolVar(&acfg.Status, "status", false, "Overlay loop counters on the bottom row.")
	flag.Parse()

	fmt.Fprintln(os.Stderr, "glint "+buildinfo.Long())

	var a *app.App
	newApp := func(h hal.HAL) func() error {
		var err error
		a, err = app.New(h, acfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}

	var err error
	if window {
		wcfg.Cols = acfg.Width
		wcfg.Rows = acfg.Height
		err = hal.RunWindow(newApp, wcfg)
	} else {
		tcfg.Discard = headless
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunTerminal(ctx, newApp, tcfg)
		if a != nil {
			a.Close()
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
