// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

import (
	"context"
	"fmt"
	"strings"
)

// ActionFunc is invoked with the parse result when its command is the
// resolved command of a successful parse.
type ActionFunc func(ctx context.Context, res *Result) error

// Command is a node in the command tree. The root command's name is the
// program name and may be empty.
//
// A tree is built with the chainable methods below and must not be modified
// once parsing begins. Parsing never mutates it, so one built tree may be
// parsed from multiple goroutines.
type Command struct {
	name        string
	description string

	parent   *Command
	children []*Command

	args    []*Argument
	options []*Option

	action ActionFunc
}

// New returns a root command named after the program.
func New(name string) *Command {
	return &Command{name: name}
}

// Command appends a subcommand and returns it.
func (c *Command) Command(name string) *Command {
	if name == "" {
		panic("margs: empty subcommand name")
	}
	if c.FindCommand(name) != nil {
		panic(fmt.Sprintf("margs: subcommand %q redefined on %q", name, c.FullName()))
	}
	sub := &Command{name: name, parent: c}
	c.children = append(c.children, sub)
	return sub
}

// Describe sets the free-form description of c.
func (c *Command) Describe(text string) *Command {
	c.description = text
	return c
}

// Action sets the handler run when c is the resolved command. The last call wins.
func (c *Command) Action(f ActionFunc) *Command {
	c.action = f
	return c
}

// Option declares a value-taking option. When long is empty the single name
// given is used as the long name and the option has no short name.
func (c *Command) Option(short, long string) *Command {
	return c.AddOption(newOption(short, long, true))
}

// Flag declares a boolean option; see Option for the naming rule.
func (c *Command) Flag(short, long string) *Command {
	return c.AddOption(newOption(short, long, false))
}

func newOption(short, long string, takesValue bool) Option {
	if long == "" {
		long, short = short, ""
	}
	return Option{Long: long, Short: short, TakesValue: takesValue}
}

// AddOption declares o on c.
func (c *Command) AddOption(o Option) *Command {
	if o.Long == "" {
		o.Long, o.Short = o.Short, ""
	}
	if o.Long == "" {
		panic("margs: option without a name")
	}
	if o.Default != "" && !o.TakesValue {
		panic(fmt.Sprintf("margs: flag %q cannot have a default", o.Long))
	}
	for _, key := range []string{o.Long, o.Short} {
		if key == "" {
			continue
		}
		if c.FindOption(key) != nil {
			panic(fmt.Sprintf("margs: option %q redefined on %q", key, c.FullName()))
		}
	}
	c.options = append(c.options, &o)
	return c
}

// Arg appends a positional argument slot.
func (c *Command) Arg(name string) *Command {
	return c.AddArgument(Argument{Name: name}, -1)
}

// ArgAt places a positional argument slot at index, replacing any slot
// already there. A negative index appends. Indexes past the end of the
// slot list would leave a gap and panic.
func (c *Command) ArgAt(name string, index int) *Command {
	return c.AddArgument(Argument{Name: name}, index)
}

// AddArgument places a at index; see ArgAt.
func (c *Command) AddArgument(a Argument, index int) *Command {
	if a.Name == "" {
		panic("margs: argument without a name")
	}
	switch {
	case index < 0 || index == len(c.args):
		c.args = append(c.args, &a)
	case index < len(c.args):
		c.args[index] = &a
	default:
		panic(fmt.Sprintf("margs: argument %q at index %d leaves a gap after %d slot(s) on %q",
			a.Name, index, len(c.args), c.FullName()))
	}
	return c
}

// FindCommand returns the first subcommand named name, or nil.
func (c *Command) FindCommand(name string) *Command {
	for _, sub := range c.children {
		if sub.name == name {
			return sub
		}
	}
	return nil
}

// FindOption returns the first option whose long or short name is key, or nil.
func (c *Command) FindOption(key string) *Option {
	if key == "" {
		return nil
	}
	for _, o := range c.options {
		if o.Long == key || o.Short == key {
			return o
		}
	}
	return nil
}

// FindArgument returns the argument slot at index, or nil.
func (c *Command) FindArgument(index int) *Argument {
	if index < 0 || index >= len(c.args) {
		return nil
	}
	return c.args[index]
}

func (c *Command) findLong(name string) *Option {
	for _, o := range c.options {
		if o.Long == name {
			return o
		}
	}
	return nil
}

// Name returns the command's name. The root may have an empty name.
func (c *Command) Name() string { return c.name }

// Description returns the text set by Describe.
func (c *Command) Description() string { return c.description }

// Parent returns the enclosing command, or nil for the root.
func (c *Command) Parent() *Command { return c.parent }

// HasAction reports whether an action is set.
func (c *Command) HasAction() bool { return c.action != nil }

// Root returns the root of the tree containing c.
func (c *Command) Root() *Command {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// Path returns the command names from the root down to c.
func (c *Command) Path() []string {
	var path []string
	for n := c; n != nil; n = n.parent {
		path = append([]string{n.name}, path...)
	}
	return path
}

// FullName returns the non-empty names of Path joined by spaces.
func (c *Command) FullName() string {
	var names []string
	for _, n := range c.Path() {
		if n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, " ")
}

// Commands returns a copy of the subcommand list in declaration order.
func (c *Command) Commands() []*Command {
	return append([]*Command(nil), c.children...)
}

// Options returns copies of the declared options in declaration order.
func (c *Command) Options() []Option {
	out := make([]Option, len(c.options))
	for i, o := range c.options {
		out[i] = *o
	}
	return out
}

// Arguments returns copies of the argument slots in position order.
func (c *Command) Arguments() []Argument {
	out := make([]Argument, len(c.args))
	for i, a := range c.args {
		out[i] = *a
	}
	return out
}
