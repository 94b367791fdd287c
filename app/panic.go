package app

import (
	"fmt"

	"glint/hal"
)

// fatal logs err and parks the goroutine. The device build has nowhere to
// return to, so the message stays on the console until a reset.
func fatal(h hal.HAL, err error) {
	if h != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: " + err.Error())
		}
	}
	select {}
}

// guard turns a panic inside the tick loop into a logged halt.
func guard(h hal.HAL) {
	r := recover()
	if r == nil {
		return
	}
	if h != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("panic: %v", r))
		}
	}
	select {}
}
