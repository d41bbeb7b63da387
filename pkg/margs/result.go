// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

import "sort"

// ValueKind discriminates the two kinds of result values.
type ValueKind int

const (
	KindString ValueKind = iota + 1 // literal token
	KindFlag                        // presence of a flag
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFlag:
		return "flag"
	default:
		return "invalid"
	}
}

// Value is a single result entry: either a literal string or the boolean
// true recorded for a flag.
type Value struct {
	kind ValueKind
	str  string
}

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// FlagValue returns the Value recorded for a present flag.
func FlagValue() Value { return Value{kind: KindFlag} }

// Kind returns the kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsFlag reports whether v records a flag's presence.
func (v Value) IsFlag() bool { return v.kind == KindFlag }

// String returns the literal value, or "true" for a flag.
func (v Value) String() string {
	if v.kind == KindFlag {
		return "true"
	}
	return v.str
}

// Any returns the value as a string or the bool true.
func (v Value) Any() any {
	if v.kind == KindFlag {
		return true
	}
	return v.str
}

// Result holds the values bound during a successful parse and the command
// that was resolved.
type Result struct {
	values  map[string]Value
	command *Command
}

func newResult() *Result {
	return &Result{values: make(map[string]Value)}
}

func (r *Result) set(v Value, keys ...string) {
	for _, k := range keys {
		r.values[k] = v
	}
}

// Command returns the resolved command.
func (r *Result) Command() *Command { return r.command }

// Get returns the value stored under key.
func (r *Result) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key was set.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// String returns the literal value stored under key. It reports false when
// the key is unset or holds a flag.
func (r *Result) String(key string) (string, bool) {
	v, ok := r.values[key]
	if !ok || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Bool reports whether key holds a flag.
func (r *Result) Bool(key string) bool {
	return r.values[key].kind == KindFlag
}

// Len returns the number of keys set.
func (r *Result) Len() int { return len(r.values) }

// Keys returns the set keys in sorted order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns the result as a map of strings and the bool true.
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v.Any()
	}
	return m
}
