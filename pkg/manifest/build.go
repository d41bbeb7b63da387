// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/margs/pkg/margs"
)

// Handlers maps the action names used in a manifest to their functions.
type Handlers map[string]margs.ActionFunc

// ValidationError lists every problem found in a manifest.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid manifest: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid manifest: %d problems:\n  %s", len(e.Problems), strings.Join(e.Problems, "\n  "))
}

type problems []string

func (p *problems) addf(format string, a ...any) {
	*p = append(*p, fmt.Sprintf(format, a...))
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Problems: p}
}

// Validate checks m for anything the margs builder would reject, plus
// duplicate argument names and malformed option settings.
func (m *Manifest) Validate() error {
	var p problems
	if err := checkVersion(m.Version); err != nil {
		p.addf("%v", err)
	}
	m.Command.validate(&p, m.Name, true)
	return p.err()
}

func (c *Command) validate(p *problems, path string, root bool) {
	where := path
	if where == "" {
		where = "root command"
	}
	if !root && c.Name == "" {
		p.addf("%s: subcommand without a name", where)
	}

	slots := 0
	argNames := make(map[string]bool)
	for i, a := range c.Args {
		switch {
		case a.Name == "":
			p.addf("%s: args[%d] has no name", where, i)
		case argNames[a.Name]:
			p.addf("%s: argument %q declared twice", where, a.Name)
		}
		argNames[a.Name] = true
		if a.Index == nil || *a.Index < 0 || *a.Index == slots {
			slots++
			continue
		}
		if *a.Index > slots {
			p.addf("%s: argument %q at index %d leaves a gap after %d slot(s)", where, a.Name, *a.Index, slots)
		}
	}

	keys := make(map[string]bool)
	for i, o := range c.Options {
		long, short := o.names()
		if long == "" {
			p.addf("%s: options[%d] has no name", where, i)
			continue
		}
		if short != "" && utf8.RuneCountInString(short) != 1 {
			p.addf("%s: option %q has short name %q, want a single character", where, long, short)
		}
		if o.Flag && (o.Default != "" || len(o.Choices) > 0) {
			p.addf("%s: flag %q cannot have a default or choices", where, long)
		}
		if o.Default != "" && len(o.Choices) > 0 && !slices.Contains(o.Choices, o.Default) {
			p.addf("%s: option %q default %q is not one of its choices", where, long, o.Default)
		}
		for _, k := range []string{long, short} {
			if k == "" {
				continue
			}
			if keys[k] {
				p.addf("%s: option %q declared twice", where, k)
			}
			keys[k] = true
		}
	}

	children := make(map[string]bool)
	for _, sub := range c.Commands {
		if sub.Name != "" && children[sub.Name] {
			p.addf("%s: subcommand %q declared twice", where, sub.Name)
		}
		children[sub.Name] = true
		sub.validate(p, strings.TrimSpace(path+" "+sub.Name), false)
	}
}

// names applies the builder's naming rule: a single name is the long name.
func (o Option) names() (long, short string) {
	if o.Long == "" {
		return o.Short, ""
	}
	return o.Long, o.Short
}

// Build validates m and constructs the command tree. Every action named in
// m must be present in handlers.
func (m *Manifest) Build(handlers Handlers) (*margs.Command, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var p problems
	root := margs.New(m.Name)
	m.Command.build(root, handlers, &p)
	if err := p.err(); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *Command) build(dst *margs.Command, handlers Handlers, p *problems) {
	dst.Describe(c.Description)
	if c.Action != "" {
		if h, ok := handlers[c.Action]; ok {
			dst.Action(h)
		} else {
			where := dst.FullName()
			if where == "" {
				where = "root command"
			}
			p.addf("%s: unknown action %q", where, c.Action)
		}
	}
	for _, a := range c.Args {
		index := -1
		if a.Index != nil {
			index = *a.Index
		}
		dst.AddArgument(margs.Argument{
			Name:        a.Name,
			Description: a.Description,
			Optional:    a.Optional,
			Validate:    oneOf(a.Choices),
		}, index)
	}
	for _, o := range c.Options {
		long, short := o.names()
		dst.AddOption(margs.Option{
			Long:        long,
			Short:       short,
			TakesValue:  !o.Flag,
			Description: o.Description,
			Optional:    o.Optional,
			Default:     o.Default,
			Validate:    oneOf(o.Choices),
		})
	}
	for i := range c.Commands {
		sub := &c.Commands[i]
		sub.build(dst.Command(sub.Name), handlers, p)
	}
}

func oneOf(choices []string) func(string) error {
	if len(choices) == 0 {
		return nil
	}
	return func(v string) error {
		if slices.Contains(choices, v) {
			return nil
		}
		return fmt.Errorf("must be one of %s", strings.Join(choices, ", "))
	}
}

// FromCommand describes an existing tree as a manifest. actionName returns
// the handler name recorded for a command with an action; it may be nil, in
// which case no action names are recorded. Choices are not recoverable from
// validator functions and are left empty.
func FromCommand(root *margs.Command, actionName func(*margs.Command) string) *Manifest {
	return &Manifest{
		Version: SchemaVersion,
		Command: fromCommand(root, actionName),
	}
}

func fromCommand(c *margs.Command, actionName func(*margs.Command) string) Command {
	out := Command{Name: c.Name(), Description: c.Description()}
	if actionName != nil && c.HasAction() {
		out.Action = actionName(c)
	}
	for _, a := range c.Arguments() {
		out.Args = append(out.Args, Arg{Name: a.Name, Description: a.Description, Optional: a.Optional})
	}
	for _, o := range c.Options() {
		out.Options = append(out.Options, Option{
			Short:       o.Short,
			Long:        o.Long,
			Description: o.Description,
			Flag:        !o.TakesValue,
			Optional:    o.Optional,
			Default:     o.Default,
		})
	}
	for _, sub := range c.Commands() {
		out.Commands = append(out.Commands, fromCommand(sub, actionName))
	}
	return out
}
