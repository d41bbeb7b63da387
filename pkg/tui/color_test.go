// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"os"
	"testing"
)

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{"disabled", false, "", "xterm", false},
		{"enabled", true, "", "xterm-256color", true},
		{"no color", true, "1", "xterm", false},
		{"dumb term", true, "", "dumb", false},
		{"no term", true, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Errorf("NewColorizer(%v).Enabled = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}

func TestForWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")
	oldIsTerminal := isTerminalFn
	t.Cleanup(func() { isTerminalFn = oldIsTerminal })

	isTerminalFn = func(int) bool { return true }
	if !ForWriter(os.Stderr).Enabled {
		t.Errorf("ForWriter(terminal) disabled colour")
	}
	if ForWriter(new(bytes.Buffer)).Enabled {
		t.Errorf("ForWriter(buffer) enabled colour")
	}

	isTerminalFn = func(int) bool { return false }
	if ForWriter(os.Stderr).Enabled {
		t.Errorf("ForWriter(non-terminal) enabled colour")
	}
}

func TestPaint(t *testing.T) {
	if got := (Colorizer{}).Error("boom"); got != "boom" {
		t.Errorf("disabled Error() = %q, want plain text", got)
	}
	got := Colorizer{Enabled: true}.Error("boom")
	if got != "\x1b[31;1mboom\x1b[0m" {
		t.Errorf("enabled Error() = %q, want red bold", got)
	}
	if got := (Colorizer{Enabled: true}).Dim("x"); got == "x" {
		t.Errorf("enabled Dim() returned plain text")
	}
}
