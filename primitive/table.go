// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Table is the single source of truth for point coordinates during a
// solve session (§4.2). Points are stored behind stable pointers so that
// a Constraint resolved at build time never needs to re-resolve an ID on
// later iterations (§9 "Line as reference-to-two-points").
type Table struct {
	ids    []string // insertion order; preserved for result extraction
	points map[string]*Point
}

// NewTable allocates an empty point table.
func NewTable() *Table {
	return &Table{points: make(map[string]*Point)}
}

// Add inserts a new point; fails on duplicate ID.
func (t *Table) Add(id string, x, y float64, fixed bool) error {
	if _, ok := t.points[id]; ok {
		return ErrDuplicateID(id)
	}
	t.points[id] = &Point{X: x, Y: y, Fixed: fixed}
	t.ids = append(t.ids, id)
	return nil
}

// Get returns a copy of the point with the given id.
func (t *Table) Get(id string) (Point, bool) {
	p, ok := t.points[id]
	if !ok {
		return Point{}, false
	}
	return *p, true
}

// GetMut returns the live pointer backing id, or nil if absent. This is
// the handle constraints resolve once, at build time, and hold for the
// life of the session.
func (t *Table) GetMut(id string) *Point {
	return t.points[id]
}

// Update writes new coordinates for a point; a no-op when the point is
// fixed or unknown.
func (t *Table) Update(id string, x, y float64) {
	p, ok := t.points[id]
	if !ok || p.Fixed {
		return
	}
	p.X, p.Y = x, y
}

// MarkFixed sets the fixed flag on an existing point. Only the
// Constraint Builder calls this, during the one-pass ingest that
// precedes any solve; the solver itself never touches the flag.
func (t *Table) MarkFixed(id string) bool {
	p, ok := t.points[id]
	if !ok {
		return false
	}
	p.Fixed = true
	return true
}

// Snapshot returns a consistent copy of all point coordinates in
// insertion order, used for output extraction.
func (t *Table) Snapshot() []Snapshot {
	out := make([]Snapshot, 0, len(t.ids))
	for _, id := range t.ids {
		p := t.points[id]
		out = append(out, Snapshot{ID: id, X: p.X, Y: p.Y, Fixed: p.Fixed})
	}
	return out
}

// Len returns the number of points in the table.
func (t *Table) Len() int { return len(t.ids) }

// IDs returns the point IDs in insertion order.
func (t *Table) IDs() []string { return t.ids }
