// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command margs parses a token list against a command tree described in a
// TOML or YAML manifest and prints what was bound.
//
//	margs --manifest washer.toml -- rinse -q socks
//
// A manifest action named "env" prints shell assignments instead, for use
// from scripts:
//
//	eval "$(margs --manifest washer.toml -- "$@")"
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shayne/yargs"
	"github.com/yeetrun/margs/pkg/cli"
	"github.com/yeetrun/margs/pkg/env"
	"github.com/yeetrun/margs/pkg/manifest"
	"github.com/yeetrun/margs/pkg/margs"
	"github.com/yeetrun/margs/pkg/tui"
)

const manifestEnv = "MARGS_MANIFEST"

type globalFlagsParsed struct {
	Manifest string `flag:"manifest" help:"Manifest file describing the command tree (MARGS_MANIFEST)"`
	Format   string `flag:"format" help:"Output format for the print handler: table or json"`
	NoColor  bool   `flag:"no-color" help:"Never colour error output"`
	Dump     string `flag:"dump" help:"Re-encode the manifest as toml or yaml and exit"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	rest := result.RemainingArgs
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return result.Flags, rest, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "margs: ", 0)

	flags, tokens, err := parseGlobalFlags(args)
	if err != nil {
		logger.Printf("%v", err)
		return cli.ExitUsage
	}
	format, err := cli.ParseFormat(flags.Format)
	if err != nil {
		logger.Printf("%v", err)
		return cli.ExitUsage
	}
	path := flags.Manifest
	if path == "" {
		path = os.Getenv(manifestEnv)
	}
	if path == "" {
		logger.Printf("no manifest given: pass --manifest or set %s", manifestEnv)
		return cli.ExitUsage
	}

	m, err := manifest.Load(path)
	if err != nil {
		logger.Printf("%v", err)
		return cli.ExitError
	}
	if flags.Dump != "" {
		return dump(m, flags.Dump, stdout, logger)
	}

	root, err := m.Build(handlers(stdout, format))
	if err != nil {
		logger.Printf("%v", err)
		return cli.ExitError
	}

	colors := tui.ForWriter(stderr)
	if flags.NoColor {
		colors = tui.NewColorizer(false)
	}
	err = root.Parse(ctx, tokens)
	cli.Report(stderr, err, colors)
	return cli.ExitCode(err)
}

func dump(m *manifest.Manifest, name string, stdout io.Writer, logger *log.Logger) int {
	format, err := manifest.ParseFormat(name)
	if err != nil {
		logger.Printf("--dump: %v", err)
		return cli.ExitUsage
	}
	if err := m.Validate(); err != nil {
		logger.Printf("%v", err)
		return cli.ExitError
	}
	if err := m.Encode(stdout, format); err != nil {
		logger.Printf("failed to encode manifest: %v", err)
		return cli.ExitError
	}
	return cli.ExitOK
}

// handlers are the action names a manifest may reference.
func handlers(stdout io.Writer, format cli.Format) manifest.Handlers {
	return manifest.Handlers{
		"print": func(_ context.Context, res *margs.Result) error {
			return cli.WriteResult(stdout, res, format)
		},
		"json": func(_ context.Context, res *margs.Result) error {
			return cli.WriteResult(stdout, res, cli.FormatJSON)
		},
		"env": func(_ context.Context, res *margs.Result) error {
			return env.Write(stdout, res)
		},
		"fail": func(_ context.Context, res *margs.Result) error {
			return fmt.Errorf("%s failed", res.Command().FullName())
		},
	}
}
