// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitive implements the data model of §3: points, lines,
// circles and the wire-format primitive list, plus the Primitive Registry
// and Point Table of §4.1/§4.2.
package primitive

// Point is a mutable (x, y, fixed) triple. The solver only ever mutates
// X and Y; Fixed is set once, at construction, and never changes after.
type Point struct {
	X, Y  float64
	Fixed bool
}

// Line is a pure reference to two endpoint point IDs; it owns no
// coordinates of its own.
type Line struct {
	P1ID, P2ID string
}

// Circle is carried for forward compatibility; no constraint in the
// catalog refers to a circle, so the solver never reads it.
type Circle struct {
	CenterID string
	Radius   float64
}

// Snapshot is one row of a consistent point-table copy, used by the
// Result Extractor.
type Snapshot struct {
	ID    string
	X, Y  float64
	Fixed bool
}
