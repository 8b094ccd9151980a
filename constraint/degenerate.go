// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/freerider0/geosolve/primitive"
)

// degeneracyDirection derives a deterministic pseudo-random unit vector
// from the constraint's registration index and the current iteration
// count (§9 "use a deterministic pseudo-random direction ... so Test
// Property 1 holds"). Reseeding rnd from (idx, iter) keeps two solves of
// the same input bit-identical, unlike drawing from a single running
// stream that a change elsewhere in the catalog could perturb.
func degeneracyDirection(idx, iter int) (ux, uy float64) {
	seed := idx*1000003 + iter + 1
	rnd.Init(seed)
	angle := rnd.Float64(0, 2*math.Pi)
	return math.Cos(angle), math.Sin(angle)
}

// applyLengthCorrection implements the shared "Distance/length" rule of
// §4.3: move the two endpoints along the current connecting unit vector
// by opposite signed amounts of magnitude |r|*step*0.8, split equally
// between non-fixed endpoints, with the free endpoint absorbing the full
// correction when only one is free. Returns the pre-correction |r|.
func applyLengthCorrection(p1, p2 *primitive.Point, target, step float64, idx, iter int) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dist := math.Hypot(dx, dy)
	r := dist - target
	errAbs := math.Abs(r)
	if errAbs <= lengthTolerance {
		return errAbs
	}

	var ux, uy float64
	if dist < degenerateEpsilon {
		ux, uy = degeneracyDirection(idx, iter)
	} else {
		ux, uy = dx/dist, dy/dist
	}

	mag := r * step * 0.8
	switch {
	case !p1.Fixed && !p2.Fixed:
		half := mag * 0.5
		p1.X += ux * half
		p1.Y += uy * half
		p2.X -= ux * half
		p2.Y -= uy * half
	case !p1.Fixed:
		p1.X += ux * mag
		p1.Y += uy * mag
	case !p2.Fixed:
		p2.X -= ux * mag
		p2.Y -= uy * mag
	}
	return errAbs
}

func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
