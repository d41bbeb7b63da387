// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

type Colorizer struct {
	Enabled bool
}

func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter enables colour only when w is a terminal.
func ForWriter(w io.Writer) Colorizer {
	f, ok := w.(interface{ Fd() uintptr })
	return NewColorizer(ok && isTerminalFn(int(f.Fd())))
}

func (c Colorizer) Error(text string) string {
	return c.paint(text, color.FgRed, color.Bold)
}

func (c Colorizer) Dim(text string) string {
	return c.paint(text, color.FgHiBlack)
}

func (c Colorizer) paint(text string, attrs ...color.Attribute) string {
	col := color.New(attrs...)
	if c.Enabled {
		col.EnableColor()
	} else {
		col.DisableColor()
	}
	return col.Sprint(text)
}
