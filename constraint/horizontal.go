// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// Horizontal is the two-point horizontal constraint: r = p2.y - p1.y.
type Horizontal struct {
	p1ID, p2ID string
	p1, p2     *primitive.Point
}

func NewHorizontal(p1ID, p2ID string, p1, p2 *primitive.Point) *Horizontal {
	return &Horizontal{p1ID: p1ID, p2ID: p2ID, p1: p1, p2: p2}
}

func (c *Horizontal) Kind() Kind { return HorizontalKind }

func (c *Horizontal) residual() float64 { return c.p2.Y - c.p1.Y }

func (c *Horizontal) Error() float64 { return math.Abs(c.residual()) }

func (c *Horizontal) ApplyCorrection(step float64, iter int) float64 {
	r := c.residual()
	errAbs := math.Abs(r)
	if errAbs <= lengthTolerance {
		return errAbs
	}
	delta := r * step * 0.5
	if !c.p1.Fixed {
		c.p1.Y += delta
	}
	if !c.p2.Fixed {
		c.p2.Y -= delta
	}
	return errAbs
}

func (c *Horizontal) Describe() string {
	return io.Sf("horizontal(%s,%s) residual=%.4f", c.p1ID, c.p2ID, c.residual())
}

// Vertical is the two-point vertical constraint: r = p2.x - p1.x.
type Vertical struct {
	p1ID, p2ID string
	p1, p2     *primitive.Point
}

func NewVertical(p1ID, p2ID string, p1, p2 *primitive.Point) *Vertical {
	return &Vertical{p1ID: p1ID, p2ID: p2ID, p1: p1, p2: p2}
}

func (c *Vertical) Kind() Kind { return VerticalKind }

func (c *Vertical) residual() float64 { return c.p2.X - c.p1.X }

func (c *Vertical) Error() float64 { return math.Abs(c.residual()) }

func (c *Vertical) ApplyCorrection(step float64, iter int) float64 {
	r := c.residual()
	errAbs := math.Abs(r)
	if errAbs <= lengthTolerance {
		return errAbs
	}
	delta := r * step * 0.5
	if !c.p1.Fixed {
		c.p1.X += delta
	}
	if !c.p2.Fixed {
		c.p2.X -= delta
	}
	return errAbs
}

func (c *Vertical) Describe() string {
	return io.Sf("vertical(%s,%s) residual=%.4f", c.p1ID, c.p2ID, c.residual())
}
