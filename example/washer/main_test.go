// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/margs/pkg/margs"
)

func TestWasherTree(t *testing.T) {
	root := newWasher()
	res, err := root.Resolve([]string{"rinse", "-q", "socks"})
	if err != nil {
		t.Fatalf("Resolve error = %v", err)
	}
	want := map[string]any{"item": "socks", "q": true, "quick": true, "t": "warm", "temp": "warm"}
	if diff := cmp.Diff(want, res.Map()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	_, err = root.Resolve([]string{"rinse", "--temp", "boiling", "socks"})
	var ive *margs.InvalidValueError
	if !errors.As(err, &ive) || ive.Value != "boiling" {
		t.Fatalf("Resolve error = %v, want InvalidValueError for boiling", err)
	}
}
