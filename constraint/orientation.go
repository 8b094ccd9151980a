// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
)

// orientation is the shared shape of Parallel, Perpendicular and Angle:
// two lines l1=(a,b), l2=(c,d); l2 is reoriented toward a target angle
// relative to l1 by rotating its free endpoint around its fixed one.
// Line length is never changed by this correction.
type orientation struct {
	l1ID, l2ID string
	a, b       *primitive.Point // l1: reference, never reoriented
	c, d       *primitive.Point // l2: reoriented
	relative   float64          // not set or read by any variant; Angle keeps its target in Angle.Target
}

func (o *orientation) angle1() float64 { return math.Atan2(o.b.Y-o.a.Y, o.b.X-o.a.X) }
func (o *orientation) angle2() float64 { return math.Atan2(o.d.Y-o.c.Y, o.d.X-o.c.X) }

// pivotAndFree picks which of c, d is held fixed while the other
// rotates. When neither point is fixed, c is the pivot by convention, so
// repeated solves stay deterministic (Testable Property 1).
func (o *orientation) pivotAndFree() (pivot, free *primitive.Point, reversed bool) {
	if o.d.Fixed && !o.c.Fixed {
		return o.d, o.c, true
	}
	return o.c, o.d, false
}

// rotateToward nudges the free endpoint of l2 a fraction (step*0.3) of
// the way from its current angle to targetAngle, keeping l2's length.
func (o *orientation) rotateToward(targetAngle, step float64) {
	pivot, free, reversed := o.pivotAndFree()
	if free.Fixed {
		return // the chosen free endpoint cannot move; nothing to correct
	}
	length := math.Hypot(free.X-pivot.X, free.Y-pivot.Y)
	if length < degenerateEpsilon {
		return
	}
	current := math.Atan2(free.Y-pivot.Y, free.X-pivot.X)
	want := targetAngle
	if reversed {
		want = targetAngle + math.Pi // the free point is l2's start; its direction from pivot is reversed
	}
	desired := current + normalizeAngle(want-current)
	newAngle := current + normalizeAngle(desired-current)*step*0.3
	free.X = pivot.X + length*math.Cos(newAngle)
	free.Y = pivot.Y + length*math.Sin(newAngle)
}

// Parallel: r = cross(l1, l2).
type Parallel struct{ orientation }

func NewParallel(l1ID, l2ID string, a, b, c, d *primitive.Point) *Parallel {
	return &Parallel{orientation{l1ID: l1ID, l2ID: l2ID, a: a, b: b, c: c, d: d}}
}

func (p *Parallel) Kind() Kind { return ParallelKind }

func (p *Parallel) residual() float64 {
	return (p.b.X-p.a.X)*(p.d.Y-p.c.Y) - (p.b.Y-p.a.Y)*(p.d.X-p.c.X)
}

func (p *Parallel) Error() float64 { return math.Abs(p.residual()) }

func (p *Parallel) ApplyCorrection(step float64, iter int) float64 {
	errAbs := math.Abs(p.residual())
	if errAbs <= angularTolerance {
		return errAbs
	}
	p.rotateToward(p.angle1(), step)
	return errAbs
}

func (p *Parallel) Describe() string {
	return io.Sf("parallel(%s,%s) residual=%.4f", p.l1ID, p.l2ID, p.residual())
}

// Perpendicular: r = dot(l1, l2).
type Perpendicular struct{ orientation }

func NewPerpendicular(l1ID, l2ID string, a, b, c, d *primitive.Point) *Perpendicular {
	return &Perpendicular{orientation{l1ID: l1ID, l2ID: l2ID, a: a, b: b, c: c, d: d}}
}

func (p *Perpendicular) Kind() Kind { return PerpendicularKind }

func (p *Perpendicular) residual() float64 {
	return (p.b.X-p.a.X)*(p.d.X-p.c.X) + (p.b.Y-p.a.Y)*(p.d.Y-p.c.Y)
}

func (p *Perpendicular) Error() float64 { return math.Abs(p.residual()) }

func (p *Perpendicular) ApplyCorrection(step float64, iter int) float64 {
	errAbs := math.Abs(p.residual())
	if errAbs <= angularTolerance {
		return errAbs
	}
	p.rotateToward(p.angle1()+math.Pi/2, step)
	return errAbs
}

func (p *Perpendicular) Describe() string {
	return io.Sf("perpendicular(%s,%s) residual=%.4f", p.l1ID, p.l2ID, p.residual())
}

// Angle constrains the angle between two lines to a target θ:
// r = normalize(angle(l2) - angle(l1) - θ).
type Angle struct {
	orientation
	Target float64 // θ
}

func NewAngle(l1ID, l2ID string, a, b, c, d *primitive.Point, target float64) *Angle {
	return &Angle{orientation{l1ID: l1ID, l2ID: l2ID, a: a, b: b, c: c, d: d}, target}
}

func (c *Angle) Kind() Kind { return AngleKind }

func (c *Angle) residual() float64 {
	return normalizeAngle(c.angle2() - c.angle1() - c.Target)
}

func (c *Angle) Error() float64 { return math.Abs(c.residual()) }

func (c *Angle) ApplyCorrection(step float64, iter int) float64 {
	errAbs := math.Abs(c.residual())
	if errAbs <= angleTolerance {
		return errAbs
	}
	c.rotateToward(c.angle1()+c.Target, step)
	return errAbs
}

func (c *Angle) Describe() string {
	return io.Sf("angle(%s,%s) target=%.4f residual=%.4f", c.l1ID, c.l2ID, c.Target, c.residual())
}
