// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package margs is a declarative command-line argument parser.
//
// A program declares a tree of commands, each with positional arguments,
// options and an optional action, then parses a token list against it:
//
//	program := margs.New("washer")
//	program.Command("rinse").
//	    Arg("item").
//	    Option("t", "temp").
//	    Flag("s", "spin").
//	    Action(func(ctx context.Context, res *margs.Result) error {
//	        item, _ := res.String("item")
//	        temp, _ := res.String("temp")
//	        fmt.Println(item, temp, res.Bool("spin"))
//	        return nil
//	    })
//	if err := program.ParseArgv(ctx, os.Args); err != nil {
//	    log.Fatal(err)
//	}
//
// # Token Rules
//
// Tokens are consumed left to right against the active command, starting at
// the root:
//   - A value-taking option consumes the next token, whatever it looks like.
//   - --name matches an option by long name.
//   - -abc is a cluster of single-character options. Only the last one may
//     take a value.
//   - A token naming a subcommand makes it the active command. Argument
//     positions restart at zero and the parent's options and arguments are
//     no longer visible.
//   - Any other token fills the next argument slot.
//
// After the last token every argument and option declared on the active
// command must have been given, unless marked Optional or given a Default.
//
// # Results
//
// An option writes its value under both its long and short name. Flags are
// recorded as KindFlag values, everything else as the literal token.
//
// # Errors
//
// All parse failures satisfy errors.Is(err, ErrUsage) and carry a concrete
// type (UnrecognizedOptionError, MissingArgumentError, ...) describing the
// problem. The action never runs when parsing fails.
package margs
