// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package margs

import (
	"reflect"
	"testing"
)

func TestResultAccessors(t *testing.T) {
	res, err := New("dry").
		Arg("item").
		Option("t", "temp").
		Flag("s", "signal").
		Resolve([]string{"-s", "tshirt", "--temp", "high"})
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}

	if got, ok := res.String("item"); !ok || got != "tshirt" {
		t.Errorf("String(item) = %q, %v; want %q, true", got, ok, "tshirt")
	}
	if got, ok := res.String("signal"); ok {
		t.Errorf("String(signal) = %q, true; want false for a flag", got)
	}
	if !res.Bool("s") || !res.Bool("signal") {
		t.Errorf("Bool(s/signal) = false, want true")
	}
	if res.Bool("temp") {
		t.Errorf("Bool(temp) = true for a string value")
	}
	if res.Has("missing") || res.Bool("missing") {
		t.Errorf("missing key reported as set")
	}
	if want := []string{"item", "s", "signal", "t", "temp"}; !reflect.DeepEqual(res.Keys(), want) {
		t.Errorf("Keys() = %#v, want %#v", res.Keys(), want)
	}
	if res.Len() != 5 {
		t.Errorf("Len() = %d, want 5", res.Len())
	}

	v, ok := res.Get("t")
	if !ok || v.Kind() != KindString || v.String() != "high" || v.Any() != "high" {
		t.Errorf("Get(t) = %#v, %v; want string high", v, ok)
	}
	v, _ = res.Get("signal")
	if !v.IsFlag() || v.String() != "true" || v.Any() != true {
		t.Errorf("Get(signal) = %#v; want flag", v)
	}
}

func TestValueKindString(t *testing.T) {
	for kind, want := range map[ValueKind]string{
		KindString:   "string",
		KindFlag:     "flag",
		ValueKind(0): "invalid",
	} {
		if got := kind.String(); got != want {
			t.Errorf("ValueKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
