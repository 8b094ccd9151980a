// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// Constraint is the interface every catalog variant satisfies. Instances
// are immutable once built; only the points they reference are mutated,
// and only through ApplyCorrection (§3 "Constraints are immutable once
// built; the solver never edits them").
type Constraint interface {
	// Kind reports the variant, for diagnostics only.
	Kind() Kind

	// Error returns |r| (or, for Coincident, the vector norm). Never NaN.
	Error() float64

	// ApplyCorrection mutates the participating non-fixed points one
	// damped gradient step toward satisfying the constraint and returns
	// the pre-correction |r| that the iterative solver accumulates into
	// total_error. iter is the current solver iteration, used only to
	// seed the deterministic degeneracy perturbation of distance-like
	// constraints.
	ApplyCorrection(step float64, iter int) float64

	// Describe renders participating IDs and target-vs-actual scalars
	// for the solver's diagnostic report (§7).
	Describe() string
}

// Tolerance policy per constraint kind (§4.3): below this, a constraint
// is considered already satisfied and its correction is skipped for the
// iteration (though its error still contributes to total_error).
const (
	lengthTolerance   = 0.1  // distance, line-length, coincident, coordinate-x/y
	angularTolerance  = 0.5  // parallel, perpendicular (residual is a product of lengths)
	angleTolerance    = 0.01 // angle, in radians
	degenerateEpsilon = 1e-9 // below this separation, perturb before correcting
)
