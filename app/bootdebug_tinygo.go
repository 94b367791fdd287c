//go:build tinygo && bootdebug

package app

import (
	"sync"
	"time"

	"glint/hal"
)

var (
	bootMu   sync.Mutex
	bootStep string
)

// bootMark records the stage Run has reached. Builds with the bootdebug tag
// repeat the stage on the debug console every quarter second, which pins
// down early-boot hangs without a probe attached.
func bootMark(h hal.HAL, msg string) {
	bootMu.Lock()
	running := bootStep != ""
	bootStep = msg
	bootMu.Unlock()

	if running || h == nil {
		return
	}
	l := h.Logger()
	go func() {
		for {
			bootMu.Lock()
			step := bootStep
			bootMu.Unlock()
			if l != nil {
				l.WriteLineString("boot: " + step)
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
