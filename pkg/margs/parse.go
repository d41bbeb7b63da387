// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

import (
	"context"
	"strings"
)

// ParseArgv parses a process argument vector such as os.Args. The first
// element, the program path, is skipped.
func (c *Command) ParseArgv(ctx context.Context, argv []string) error {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	return c.Parse(ctx, argv)
}

// Parse resolves args against the tree rooted at c and runs the resolved
// command's action with the result. args must not include the program path.
//
// The action never runs when parsing fails. A resolved command without an
// action yields a *NoActionError.
func (c *Command) Parse(ctx context.Context, args []string) error {
	res, err := c.Resolve(args)
	if err != nil {
		return err
	}
	cmd := res.command
	if cmd.action == nil {
		return &NoActionError{Command: cmd.FullName()}
	}
	return cmd.action(ctx, res)
}

// Resolve walks args through the tree rooted at c without running any
// action. It returns the bound values and the resolved command, or the first
// error encountered. The result is nil on error.
func (c *Command) Resolve(args []string) (*Result, error) {
	p := &parser{active: c, result: newResult(), seen: make(map[*Option]bool)}
	for _, tok := range args {
		if err := p.next(tok); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	p.result.command = p.active
	return p.result, nil
}

// parser carries the state of a single walk. The tree is only read.
type parser struct {
	active  *Command
	cursor  int     // next argument slot of active
	pending *Option // value-taking option awaiting the next token
	result  *Result

	// seen records options matched on the command that declared them, so a
	// parent's option never satisfies a same-named option of a subcommand.
	seen map[*Option]bool
}

func (p *parser) next(tok string) error {
	switch {
	case p.pending != nil:
		o := p.pending
		p.pending = nil
		return p.bindOption(o, tok)
	case strings.HasPrefix(tok, "--"):
		return p.long(tok)
	case len(tok) > 1 && tok[0] == '-':
		return p.cluster(tok)
	}

	if sub := p.active.FindCommand(tok); sub != nil {
		p.active = sub
		p.cursor = 0
		return nil
	}
	if a := p.active.FindArgument(p.cursor); a != nil {
		if a.Validate != nil {
			if err := a.Validate(tok); err != nil {
				return &InvalidValueError{Name: a.Name, Value: tok, Err: err}
			}
		}
		p.result.set(StringValue(tok), a.Name)
		p.cursor++
		return nil
	}
	return &UnrecognizedPositionalError{Token: tok, Command: p.active.FullName()}
}

func (p *parser) long(tok string) error {
	o := p.active.findLong(tok[2:])
	if o == nil {
		return &UnrecognizedOptionError{Option: tok, Token: tok, Command: p.active.FullName()}
	}
	p.result.set(FlagValue(), o.Keys()...)
	p.seen[o] = true
	if o.TakesValue {
		p.pending = o
	}
	return nil
}

// cluster handles "-abc". Only the last character may take a value.
func (p *parser) cluster(tok string) error {
	var valued *Option
	valuedAt := 0
	for i, r := range []rune(tok[1:]) {
		o := p.active.FindOption(string(r))
		if o == nil {
			return &UnrecognizedOptionError{Option: "-" + string(r), Token: tok, Command: p.active.FullName()}
		}
		if valued != nil {
			return &ShortClusterError{Token: tok, Position: valuedAt}
		}
		p.result.set(FlagValue(), o.Keys()...)
		p.seen[o] = true
		if o.TakesValue {
			valued, valuedAt = o, i
		}
	}
	p.pending = valued
	return nil
}

func (p *parser) bindOption(o *Option, value string) error {
	if o.Validate != nil {
		if err := o.Validate(value); err != nil {
			return &InvalidValueError{Name: o.Display(), Value: value, Err: err}
		}
	}
	p.result.set(StringValue(value), o.Keys()...)
	return nil
}

// finish checks the final command's declarations against the result. An
// option still pending here keeps the presence value it was matched with.
func (p *parser) finish() error {
	cmd := p.active
	// Slots below the cursor were bound at this command's scope.
	for i, a := range cmd.args {
		if i >= p.cursor && !a.Optional {
			return &MissingArgumentError{Name: a.Name, Command: cmd.FullName()}
		}
	}
	for _, o := range cmd.options {
		if p.seen[o] {
			continue
		}
		switch {
		case o.Default != "" && o.TakesValue:
			p.result.set(StringValue(o.Default), o.Keys()...)
		case o.required():
			return &MissingOptionError{Name: o.Display(), Command: cmd.FullName()}
		}
	}
	return nil
}
