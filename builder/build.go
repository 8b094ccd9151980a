// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder implements the Constraint Builder of §4.1: a one-pass
// translator from the wire-format primitive list into a populated Point
// Table and the list of instantiated Constraint Catalog objects.
package builder

import (
	"github.com/freerider0/geosolve/constraint"
	"github.com/freerider0/geosolve/primitive"
)

// Build ingests records in three passes — points, then lines/circles, then
// constraints — so that a line or a line-referencing constraint may
// appear anywhere in the input as long as the points (lines) it depends
// on were ingested already. Any failure rejects the entire ingest: no
// partial registry or catalog is returned.
func Build(records []primitive.Record) (*primitive.Registry, []constraint.Constraint, error) {
	reg := primitive.NewRegistry()
	seen := make(map[string]bool, len(records))

	checkDup := func(id string) error {
		if seen[id] {
			return primitive.ErrDuplicateID(id)
		}
		seen[id] = true
		return nil
	}

	// pass 1: points
	for _, rec := range records {
		if rec.Type != primitive.TypePoint {
			continue
		}
		if err := checkDup(rec.ID); err != nil {
			return nil, nil, err
		}
		if err := reg.Table.Add(rec.ID, rec.X, rec.Y, rec.Fixed); err != nil {
			return nil, nil, err
		}
	}

	// pass 2: lines and circles (endpoints/centers must already exist)
	for _, rec := range records {
		switch rec.Type {
		case primitive.TypeLine:
			if err := checkDup(rec.ID); err != nil {
				return nil, nil, err
			}
			if err := reg.AddLine(rec.ID, rec.P1ID, rec.P2ID); err != nil {
				return nil, nil, err
			}
		case primitive.TypeCircle:
			if err := checkDup(rec.ID); err != nil {
				return nil, nil, err
			}
			if err := reg.AddCircle(rec.ID, rec.CenterID, rec.Radius); err != nil {
				return nil, nil, err
			}
		}
	}

	// pass 3: constraints (points and lines must already exist)
	var catalog []constraint.Constraint
	idx := 0
	for _, rec := range records {
		if rec.Type != primitive.TypeConstraint {
			continue
		}
		if err := checkDup(rec.ID); err != nil {
			return nil, nil, err
		}
		c, err := buildConstraint(reg, idx, rec)
		if err != nil {
			return nil, nil, err
		}
		if c != nil {
			catalog = append(catalog, c)
			idx++
		}
	}

	return reg, catalog, nil
}
