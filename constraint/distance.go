// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// Distance is the point-to-point distance constraint: r = ||p2-p1|| - d.
type Distance struct {
	idx        int
	p1ID, p2ID string
	p1, p2     *primitive.Point
	Target     float64
}

// NewDistance builds a Distance constraint over two already-resolved
// point handles.
func NewDistance(idx int, p1ID, p2ID string, p1, p2 *primitive.Point, target float64) *Distance {
	return &Distance{idx: idx, p1ID: p1ID, p2ID: p2ID, p1: p1, p2: p2, Target: target}
}

func (c *Distance) Kind() Kind { return DistanceKind }

func (c *Distance) Error() float64 {
	dx := c.p2.X - c.p1.X
	dy := c.p2.Y - c.p1.Y
	return math.Abs(math.Hypot(dx, dy) - c.Target)
}

func (c *Distance) ApplyCorrection(step float64, iter int) float64 {
	return applyLengthCorrection(c.p1, c.p2, c.Target, step, c.idx, iter)
}

func (c *Distance) Describe() string {
	dx := c.p2.X - c.p1.X
	dy := c.p2.Y - c.p1.Y
	return io.Sf("distance(%s,%s) target=%.4f actual=%.4f", c.p1ID, c.p2ID, c.Target, math.Hypot(dx, dy))
}
