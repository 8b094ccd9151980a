// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// Coincident constrains two points to the same location. Unlike the
// scalar-residual kinds, its correction is a vector step: each free
// endpoint moves halfway toward the other, scaled by step*0.5.
type Coincident struct {
	p1ID, p2ID string
	p1, p2     *primitive.Point
}

func NewCoincident(p1ID, p2ID string, p1, p2 *primitive.Point) *Coincident {
	return &Coincident{p1ID: p1ID, p2ID: p2ID, p1: p1, p2: p2}
}

func (c *Coincident) Kind() Kind { return CoincidentKind }

func (c *Coincident) Error() float64 {
	dx := c.p2.X - c.p1.X
	dy := c.p2.Y - c.p1.Y
	return math.Hypot(dx, dy)
}

func (c *Coincident) ApplyCorrection(step float64, iter int) float64 {
	dx := c.p2.X - c.p1.X
	dy := c.p2.Y - c.p1.Y
	dist := math.Hypot(dx, dy)
	if dist <= lengthTolerance {
		return dist
	}
	if !c.p1.Fixed {
		c.p1.X += dx * 0.5 * step
		c.p1.Y += dy * 0.5 * step
	}
	if !c.p2.Fixed {
		c.p2.X -= dx * 0.5 * step
		c.p2.Y -= dy * 0.5 * step
	}
	return dist
}

func (c *Coincident) Describe() string {
	return io.Sf("coincident(%s,%s) separation=%.4f", c.p1ID, c.p2ID, c.Error())
}
