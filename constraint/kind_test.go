// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "testing"

func TestParseKindRoundTrip(t *testing.T) {
	all := []Kind{
		DistanceKind, HorizontalKind, VerticalKind, ParallelKind,
		PerpendicularKind, AngleKind, EqualLengthKind, LineLengthKind,
		CoincidentKind, CoordXKind, CoordYKind, FixedKind,
	}
	for _, k := range all {
		got, ok := ParseKind(k.String())
		if !ok {
			t.Fatalf("ParseKind(%q) reported ok=false", k.String())
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	if _, ok := ParseKind("tangent"); ok {
		t.Fatalf("ParseKind must reject kinds outside the closed catalog")
	}
}
