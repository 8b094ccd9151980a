// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/freerider0/geosolve/primitive"
)

func TestCoordXReducesError(t *testing.T) {
	p := &primitive.Point{X: 10, Y: 0}
	c := NewCoordX("p", p, 4)
	errBefore := c.Error()
	if errBefore != 6 {
		t.Fatalf("Error() = %v, want 6", errBefore)
	}
	c.ApplyCorrection(0.5, 0)
	if c.Error() >= errBefore {
		t.Fatalf("expected coordinate-x correction to reduce error, before=%v after=%v", errBefore, c.Error())
	}
}

func TestCoordYSkipsWhenFixed(t *testing.T) {
	p := &primitive.Point{X: 0, Y: 10, Fixed: true}
	c := NewCoordY("p", p, 4)
	c.ApplyCorrection(0.5, 0)
	if p.Y != 10 {
		t.Fatalf("fixed point must never move")
	}
}

func TestCoordXWithinToleranceSkipsCorrection(t *testing.T) {
	p := &primitive.Point{X: 4.05, Y: 0}
	c := NewCoordX("p", p, 4)
	c.ApplyCorrection(0.5, 0)
	if p.X != 4.05 {
		t.Fatalf("within-tolerance constraint must not move the point")
	}
}
