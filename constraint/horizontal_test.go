// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/freerider0/geosolve/primitive"
)

func TestHorizontalReducesError(t *testing.T) {
	p1 := &primitive.Point{X: 0, Y: 0}
	p2 := &primitive.Point{X: 1, Y: 4}
	c := NewHorizontal("p1", "p2", p1, p2)

	errBefore := c.Error()
	if errBefore != 4 {
		t.Fatalf("Error() = %v, want 4", errBefore)
	}
	c.ApplyCorrection(0.5, 0)
	if c.Error() >= errBefore {
		t.Fatalf("expected horizontal correction to reduce |y2-y1|, before=%v after=%v", errBefore, c.Error())
	}
}

func TestVerticalReducesError(t *testing.T) {
	p1 := &primitive.Point{X: 0, Y: 0}
	p2 := &primitive.Point{X: 4, Y: 1}
	c := NewVertical("p1", "p2", p1, p2)

	errBefore := c.Error()
	if errBefore != 4 {
		t.Fatalf("Error() = %v, want 4", errBefore)
	}
	c.ApplyCorrection(0.5, 0)
	if c.Error() >= errBefore {
		t.Fatalf("expected vertical correction to reduce |x2-x1|, before=%v after=%v", errBefore, c.Error())
	}
}

func TestHorizontalSkipsWhenBothFixed(t *testing.T) {
	p1 := &primitive.Point{X: 0, Y: 0, Fixed: true}
	p2 := &primitive.Point{X: 1, Y: 4, Fixed: true}
	c := NewHorizontal("p1", "p2", p1, p2)
	c.ApplyCorrection(0.5, 0)
	if p1.Y != 0 || p2.Y != 4 {
		t.Fatalf("two fixed points must never move")
	}
}
