//go:build tinygo && baremetal

package main

import (
	"glint/app"
	"glint/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
