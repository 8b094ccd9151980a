// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// CoordX pins a point's x coordinate to a target value: r = p.x - x0.
type CoordX struct {
	pID    string
	p      *primitive.Point
	Target float64
}

func NewCoordX(pID string, p *primitive.Point, target float64) *CoordX {
	return &CoordX{pID: pID, p: p, Target: target}
}

func (c *CoordX) Kind() Kind { return CoordXKind }

func (c *CoordX) residual() float64 { return c.p.X - c.Target }

func (c *CoordX) Error() float64 { return math.Abs(c.residual()) }

func (c *CoordX) ApplyCorrection(step float64, iter int) float64 {
	r := c.residual()
	errAbs := math.Abs(r)
	if errAbs <= lengthTolerance {
		return errAbs
	}
	if !c.p.Fixed {
		c.p.X -= r * step
	}
	return errAbs
}

func (c *CoordX) Describe() string {
	return io.Sf("coordinate-x(%s) target=%.4f actual=%.4f", c.pID, c.Target, c.p.X)
}

// CoordY pins a point's y coordinate to a target value: r = p.y - y0.
type CoordY struct {
	pID    string
	p      *primitive.Point
	Target float64
}

func NewCoordY(pID string, p *primitive.Point, target float64) *CoordY {
	return &CoordY{pID: pID, p: p, Target: target}
}

func (c *CoordY) Kind() Kind { return CoordYKind }

func (c *CoordY) residual() float64 { return c.p.Y - c.Target }

func (c *CoordY) Error() float64 { return math.Abs(c.residual()) }

func (c *CoordY) ApplyCorrection(step float64, iter int) float64 {
	r := c.residual()
	errAbs := math.Abs(r)
	if errAbs <= lengthTolerance {
		return errAbs
	}
	if !c.p.Fixed {
		c.p.Y -= r * step
	}
	return errAbs
}

func (c *CoordY) Describe() string {
	return io.Sf("coordinate-y(%s) target=%.4f actual=%.4f", c.pID, c.Target, c.p.Y)
}
