//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TerminalConfig controls the stdout host runner.
type TerminalConfig struct {
	Hz      int
	Frames  uint64
	Discard bool
}

// RunTerminal steps the app against the hosting terminal: frame bytes go to
// stdout and key escapes arrive from stdin. With Discard set the frame bytes
// are thrown away, which leaves a render-only loop for timing runs.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	h := New().(*hostHAL)
	if cfg.Discard {
		h.serial.w = io.Discard
	}
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
