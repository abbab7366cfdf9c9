// Chromatic - colour conversion, contrast and harmony toolkit
//
// Chromatic converts colours between HEX, RGB, HSV, HSL, CMYK, CIE LAB and
// LCH, grades WCAG contrast, and builds LCH colour harmonies.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/chromatic/internal/cli"
)

func main() {
	cli.Execute()
}
