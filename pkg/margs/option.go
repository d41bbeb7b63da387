// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

// Option describes a named option. Long and Short are aliases: a match
// writes the same value under both keys of the result.
type Option struct {
	Long        string
	Short       string // Optional single-character alias
	TakesValue  bool   // False for boolean flags
	Description string

	// Optional options may be absent after parsing. A value-taking option
	// with a Default is optional and gets the default under both keys.
	// Flags cannot have a Default.
	Optional bool
	Default  string

	// Validate, if set, is called with the value bound to a value-taking option.
	Validate func(value string) error
}

// Keys returns the result keys written when o matches.
func (o *Option) Keys() []string {
	if o.Short == "" {
		return []string{o.Long}
	}
	return []string{o.Long, o.Short}
}

// Display returns o as written on the command line, preferring the long form.
func (o *Option) Display() string {
	if len(o.Long) == 1 {
		return "-" + o.Long
	}
	return "--" + o.Long
}

func (o *Option) required() bool {
	return !o.Optional && o.Default == ""
}

// Argument describes a positional argument slot. Its position is implied by
// its place in the command's slot list.
type Argument struct {
	Name        string
	Description string
	Optional    bool

	// Validate, if set, is called with the token bound to the slot.
	Validate func(value string) error
}
