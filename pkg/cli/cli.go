// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yeetrun/margs/pkg/margs"
	"github.com/yeetrun/margs/pkg/tui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps a Parse error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, margs.ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// Report writes a one-line message for err to w.
func Report(w io.Writer, err error, c tui.Colorizer) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", c.Error("error:"), err)
	var sce *margs.ShortClusterError
	if errors.As(err, &sce) {
		fmt.Fprintln(w, c.Dim("pass the value-taking option separately or last in the group"))
	}
}

// Run parses argv (including the program path) against root, reports any
// failure to stderr and returns the exit code.
func Run(ctx context.Context, root *margs.Command, argv []string, stderr io.Writer) int {
	err := root.ParseArgv(ctx, argv)
	Report(stderr, err, tui.ForWriter(stderr))
	return ExitCode(err)
}

// Format selects how WriteResult renders a result.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("invalid format %q (want table or json)", s)
}

type resultJSON struct {
	Command []string       `json:"command"`
	Values  map[string]any `json:"values"`
}

// WriteResult renders res to w.
func WriteResult(w io.Writer, res *margs.Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resultJSON{Command: res.Command().Path(), Values: res.Map()})
	case FormatTable, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "COMMAND\t%s\n", res.Command().FullName())
		for _, key := range res.Keys() {
			v, _ := res.Get(key)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", key, v, v.Kind())
		}
		return tw.Flush()
	}
	return fmt.Errorf("invalid format %q", format)
}
