//go:build !tinygo || !bootdebug

package app

import "glint/hal"

func bootMark(hal.HAL, string) {}
