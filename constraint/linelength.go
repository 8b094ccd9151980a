// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// LineLength constrains a single line's length to a target value:
// r = ||b-a|| - L. Its correction is the same endpoint-translation rule
// used by Distance (§4.3 "Distance/length").
type LineLength struct {
	idx    int
	lineID string
	a, b   *primitive.Point
	Target float64
}

func NewLineLength(idx int, lineID string, a, b *primitive.Point, target float64) *LineLength {
	return &LineLength{idx: idx, lineID: lineID, a: a, b: b, Target: target}
}

func (c *LineLength) Kind() Kind { return LineLengthKind }

func (c *LineLength) Error() float64 {
	dx := c.b.X - c.a.X
	dy := c.b.Y - c.a.Y
	return math.Abs(math.Hypot(dx, dy) - c.Target)
}

func (c *LineLength) ApplyCorrection(step float64, iter int) float64 {
	return applyLengthCorrection(c.a, c.b, c.Target, step, c.idx, iter)
}

func (c *LineLength) Describe() string {
	dx := c.b.X - c.a.X
	dy := c.b.Y - c.a.Y
	return io.Sf("line-length(%s) target=%.4f actual=%.4f", c.lineID, c.Target, math.Hypot(dx, dy))
}

// EqualLength constrains two lines to equal length:
// r = ||b-a|| - ||d-c||. The second line's free endpoint is rescaled
// about its start point (c) so its length approaches the first line's.
type EqualLength struct {
	l1ID, l2ID string
	a, b       *primitive.Point // line 1
	c, d       *primitive.Point // line 2 (c is the start/pivot)
}

func NewEqualLength(l1ID, l2ID string, a, b, c, d *primitive.Point) *EqualLength {
	return &EqualLength{l1ID: l1ID, l2ID: l2ID, a: a, b: b, c: c, d: d}
}

func (c *EqualLength) Kind() Kind { return EqualLengthKind }

func (c *EqualLength) lengths() (len1, len2 float64) {
	len1 = math.Hypot(c.b.X-c.a.X, c.b.Y-c.a.Y)
	len2 = math.Hypot(c.d.X-c.c.X, c.d.Y-c.c.Y)
	return
}

func (c *EqualLength) Error() float64 {
	len1, len2 := c.lengths()
	return math.Abs(len2 - len1)
}

func (c *EqualLength) ApplyCorrection(step float64, iter int) float64 {
	len1, len2 := c.lengths()
	errAbs := math.Abs(len2 - len1)
	if errAbs <= lengthTolerance {
		return errAbs
	}
	if c.d.Fixed {
		return errAbs
	}
	dx := c.d.X - c.c.X
	dy := c.d.Y - c.c.Y
	if len2 < degenerateEpsilon {
		return errAbs
	}
	ux, uy := dx/len2, dy/len2
	targetLen := len2 + (len1-len2)*step*0.3
	c.d.X = c.c.X + ux*targetLen
	c.d.Y = c.c.Y + uy*targetLen
	return errAbs
}

func (c *EqualLength) Describe() string {
	len1, len2 := c.lengths()
	return io.Sf("equal-length(%s,%s) len1=%.4f len2=%.4f", c.l1ID, c.l2ID, len1, len2)
}
