// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/freerider0/geosolve/constraint"
	"github.com/freerider0/geosolve/primitive"
)

// buildConstraint resolves one constraint record's point/line references
// and instantiates the matching Constraint Catalog variant. A "fixed"
// record has no live Constraint object: it marks a point in the table
// and returns (nil, nil). Unrecognized kinds fail with
// UnknownConstraintKind; unresolved references fail with BadReference.
func buildConstraint(reg *primitive.Registry, idx int, rec primitive.Record) (constraint.Constraint, error) {
	kind, ok := constraint.ParseKind(rec.Kind)
	if !ok {
		return nil, primitive.ErrUnknownConstraintKind(rec.Kind)
	}

	switch kind {
	case constraint.FixedKind:
		if len(rec.Points) < 1 {
			return nil, primitive.ErrBadReference(rec.ID, "")
		}
		if !reg.Table.MarkFixed(rec.Points[0]) {
			return nil, primitive.ErrBadReference(rec.ID, rec.Points[0])
		}
		return nil, nil

	case constraint.DistanceKind:
		p1, p2, err := resolvePoints2(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewDistance(idx, rec.Points[0], rec.Points[1], p1, p2, rec.Target), nil

	case constraint.HorizontalKind:
		p1, p2, err := resolvePoints2(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewHorizontal(rec.Points[0], rec.Points[1], p1, p2), nil

	case constraint.VerticalKind:
		p1, p2, err := resolvePoints2(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewVertical(rec.Points[0], rec.Points[1], p1, p2), nil

	case constraint.CoincidentKind:
		p1, p2, err := resolvePoints2(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewCoincident(rec.Points[0], rec.Points[1], p1, p2), nil

	case constraint.CoordXKind:
		p, err := resolvePoint1(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewCoordX(rec.Points[0], p, rec.Target), nil

	case constraint.CoordYKind:
		p, err := resolvePoint1(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewCoordY(rec.Points[0], p, rec.Target), nil

	case constraint.LineLengthKind:
		a, b, err := resolveLineEndpoints(reg, rec, 0)
		if err != nil {
			return nil, err
		}
		return constraint.NewLineLength(idx, rec.Lines[0], a, b, rec.Target), nil

	case constraint.EqualLengthKind:
		a, b, c, d, err := resolveTwoLines(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewEqualLength(rec.Lines[0], rec.Lines[1], a, b, c, d), nil

	case constraint.ParallelKind:
		a, b, c, d, err := resolveTwoLines(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewParallel(rec.Lines[0], rec.Lines[1], a, b, c, d), nil

	case constraint.PerpendicularKind:
		a, b, c, d, err := resolveTwoLines(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewPerpendicular(rec.Lines[0], rec.Lines[1], a, b, c, d), nil

	case constraint.AngleKind:
		a, b, c, d, err := resolveTwoLines(reg, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewAngle(rec.Lines[0], rec.Lines[1], a, b, c, d, rec.Target), nil
	}

	return nil, primitive.ErrUnknownConstraintKind(rec.Kind)
}

func resolvePoints2(reg *primitive.Registry, rec primitive.Record) (p1, p2 *primitive.Point, err error) {
	if len(rec.Points) < 2 {
		return nil, nil, primitive.ErrBadReference(rec.ID, "")
	}
	p1, err = reg.LookupPointMut(rec.Points[0])
	if err != nil {
		return nil, nil, err
	}
	p2, err = reg.LookupPointMut(rec.Points[1])
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func resolvePoint1(reg *primitive.Registry, rec primitive.Record) (*primitive.Point, error) {
	if len(rec.Points) < 1 {
		return nil, primitive.ErrBadReference(rec.ID, "")
	}
	return reg.LookupPointMut(rec.Points[0])
}

// resolveLineEndpoints resolves the i-th line reference in rec.Lines to
// its two endpoint point handles.
func resolveLineEndpoints(reg *primitive.Registry, rec primitive.Record, i int) (p1, p2 *primitive.Point, err error) {
	if len(rec.Lines) <= i {
		return nil, nil, primitive.ErrBadReference(rec.ID, "")
	}
	line, err := reg.LookupLine(rec.Lines[i])
	if err != nil {
		return nil, nil, err
	}
	p1, err = reg.LookupPointMut(line.P1ID)
	if err != nil {
		return nil, nil, err
	}
	p2, err = reg.LookupPointMut(line.P2ID)
	if err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

// resolveTwoLines resolves rec.Lines[0] and rec.Lines[1] to their four
// endpoint point handles (a,b) and (c,d).
func resolveTwoLines(reg *primitive.Registry, rec primitive.Record) (a, b, c, d *primitive.Point, err error) {
	if len(rec.Lines) < 2 {
		return nil, nil, nil, nil, primitive.ErrBadReference(rec.ID, "")
	}
	a, b, err = resolveLineEndpoints(reg, rec, 0)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	c, d, err = resolveLineEndpoints(reg, rec, 1)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return a, b, c, d, nil
}
