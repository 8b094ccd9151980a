// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "testing"

func TestStatusOK(t *testing.T) {
	cases := map[Status]bool{
		StatusConverged: true,
		StatusSuccess:   true,
		StatusFailed:    false,
		StatusCancelled: false,
	}
	for status, want := range cases {
		if got := status.OK(); got != want {
			t.Fatalf("%s.OK() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusConverged.String() != "converged" {
		t.Fatalf("unexpected String() for StatusConverged: %q", StatusConverged.String())
	}
	if Status(99).String() != "unknown" {
		t.Fatalf("expected unrecognized Status to stringify as unknown")
	}
}
