// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders parse results as shell variable assignments, so a
// script can bind its arguments with eval.
package env

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/margs/pkg/margs"
)

// Prefix is prepended to every variable name written by Write.
const Prefix = "MARGS_"

// Name converts a result key to a variable name: "dry-run" becomes
// "MARGS_DRY_RUN".
func Name(key string) string {
	var b strings.Builder
	b.WriteString(Prefix)
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Quote wraps s in single quotes for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Write writes one NAME='value' line per result key, preceded by
// MARGS_COMMAND holding the resolved command's full name. Keys that map to
// the same variable name keep the first in sorted order.
func Write(w io.Writer, res *margs.Result) error {
	if _, err := fmt.Fprintf(w, "%sCOMMAND=%s\n", Prefix, Quote(res.Command().FullName())); err != nil {
		return err
	}
	written := map[string]bool{Prefix + "COMMAND": true}
	for _, key := range res.Keys() {
		name := Name(key)
		if written[name] {
			continue
		}
		written[name] = true
		v, _ := res.Get(key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, Quote(v.String())); err != nil {
			return err
		}
	}
	return nil
}
