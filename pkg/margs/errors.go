// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

import (
	"errors"
	"fmt"
)

// ErrUsage matches, via errors.Is, every error caused by the tokens not
// fitting the command tree.
var ErrUsage = errors.New("usage error")

// UnrecognizedOptionError is returned when a long option or a character of
// a short cluster names no option of the active command.
type UnrecognizedOptionError struct {
	Option  string // The option as written, e.g. "--amount" or "-x"
	Token   string // The token it appeared in
	Command string // Full name of the active command
}

func (e *UnrecognizedOptionError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("unknown option for '%s': %s", e.Command, e.Option)
	}
	return fmt.Sprintf("unknown option: %s", e.Option)
}

func (e *UnrecognizedOptionError) Is(target error) bool { return target == ErrUsage }

// UnrecognizedPositionalError is returned for a token that is neither an
// option, a subcommand of the active command, nor an expected argument.
type UnrecognizedPositionalError struct {
	Token   string
	Command string
}

func (e *UnrecognizedPositionalError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("unexpected argument for '%s': %q", e.Command, e.Token)
	}
	return fmt.Sprintf("unexpected argument: %q", e.Token)
}

func (e *UnrecognizedPositionalError) Is(target error) bool { return target == ErrUsage }

// MissingArgumentError is returned when a required argument of the
// resolved command was not given.
type MissingArgumentError struct {
	Name    string
	Command string
}

func (e *MissingArgumentError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("'%s' requires argument %s", e.Command, e.Name)
	}
	return fmt.Sprintf("missing required argument %s", e.Name)
}

func (e *MissingArgumentError) Is(target error) bool { return target == ErrUsage }

// MissingOptionError is returned when a required option of the resolved
// command was not given.
type MissingOptionError struct {
	Name    string // The option as written, e.g. "--temp"
	Command string
}

func (e *MissingOptionError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("'%s' requires option %s", e.Command, e.Name)
	}
	return fmt.Sprintf("missing required option %s", e.Name)
}

func (e *MissingOptionError) Is(target error) bool { return target == ErrUsage }

// ShortClusterError is returned when a value-taking option is not the last
// character of its short cluster.
type ShortClusterError struct {
	Token    string
	Position int // Index of the value-taking option within the cluster, not counting the dash
}

func (e *ShortClusterError) Error() string {
	if len(e.Token) < 2 {
		return fmt.Sprintf("value-taking option must be last in short cluster %q", e.Token)
	}
	r := []rune(e.Token[1:])
	if e.Position < 0 || e.Position >= len(r) {
		return fmt.Sprintf("value-taking option must be last in %s", e.Token)
	}
	return fmt.Sprintf("option -%c takes a value and must be last in %s", r[e.Position], e.Token)
}

func (e *ShortClusterError) Is(target error) bool { return target == ErrUsage }

// NoActionError is returned when parsing succeeded but the resolved command
// has no action.
type NoActionError struct {
	Command string
}

func (e *NoActionError) Error() string {
	if e.Command == "" {
		return "no action defined"
	}
	return fmt.Sprintf("no action defined for '%s'", e.Command)
}

func (e *NoActionError) Is(target error) bool { return target == ErrUsage }

// InvalidValueError is returned when an argument or option validator
// rejects a value. Err holds the validator's error.
type InvalidValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Name, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }
func (e *InvalidValueError) Is(target error) bool { return target == ErrUsage }
