// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command washer is a small program built directly on the margs builder.
//
//	washer rinse -q --temp hot socks
//	washer dry -s tshirt
//	washer manifest yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/yeetrun/margs/pkg/cli"
	"github.com/yeetrun/margs/pkg/manifest"
	"github.com/yeetrun/margs/pkg/margs"
)

var temperatures = []string{"cold", "warm", "hot"}

func validTemp(v string) error {
	if !slices.Contains(temperatures, v) {
		return fmt.Errorf("must be one of %v", temperatures)
	}
	return nil
}

func newWasher() *margs.Command {
	root := margs.New("washer").Describe("Laundry machine controls")

	root.Command("rinse").
		Describe("Rinse a single item").
		Arg("item").
		AddOption(margs.Option{
			Short:       "t",
			Long:        "temp",
			TakesValue:  true,
			Description: "Water temperature",
			Default:     "warm",
			Validate:    validTemp,
		}).
		AddOption(margs.Option{Short: "q", Long: "quick", Optional: true}).
		Action(func(_ context.Context, res *margs.Result) error {
			item, _ := res.String("item")
			temp, _ := res.String("temp")
			mode := "normal"
			if res.Bool("quick") {
				mode = "quick"
			}
			fmt.Printf("rinsing %s at %s (%s)\n", item, temp, mode)
			return nil
		})

	root.Command("dry").
		Describe("Tumble dry an item").
		Arg("item").
		AddOption(margs.Option{Short: "s", Long: "signal", Optional: true}).
		Action(func(_ context.Context, res *margs.Result) error {
			item, _ := res.String("item")
			fmt.Printf("drying %s\n", item)
			if res.Bool("signal") {
				fmt.Println("beep")
			}
			return nil
		})

	root.Command("manifest").
		Describe("Print this command tree as a manifest").
		ArgAt("format", 0).
		Action(func(_ context.Context, res *margs.Result) error {
			name, _ := res.String("format")
			format, err := manifest.ParseFormat(name)
			if err != nil {
				return err
			}
			m := manifest.FromCommand(root, func(c *margs.Command) string { return c.Name() })
			return m.Encode(os.Stdout, format)
		})
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, newWasher(), os.Args, os.Stderr)
	stop()
	os.Exit(code)
}
