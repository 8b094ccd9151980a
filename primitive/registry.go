// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Registry owns the Point Table plus the Line and Circle records for one
// session, and resolves IDs to primitives during constraint construction
// (§4.1). Lines and circles are pure references; they never hold their
// own coordinates.
type Registry struct {
	Table *Table

	lines   map[string]Line
	lineIDs []string

	circles   map[string]Circle
	circleIDs []string
}

// NewRegistry allocates an empty registry over a fresh point table.
func NewRegistry() *Registry {
	return &Registry{
		Table:   NewTable(),
		lines:   make(map[string]Line),
		circles: make(map[string]Circle),
	}
}

// AddLine registers a line; both endpoints must already exist in the
// point table.
func (r *Registry) AddLine(id, p1ID, p2ID string) error {
	if _, ok := r.Table.Get(p1ID); !ok {
		return ErrBadReference(id, p1ID)
	}
	if _, ok := r.Table.Get(p2ID); !ok {
		return ErrBadReference(id, p2ID)
	}
	r.lines[id] = Line{P1ID: p1ID, P2ID: p2ID}
	r.lineIDs = append(r.lineIDs, id)
	return nil
}

// AddCircle registers a circle; its center must already exist.
func (r *Registry) AddCircle(id, centerID string, radius float64) error {
	if _, ok := r.Table.Get(centerID); !ok {
		return ErrBadReference(id, centerID)
	}
	r.circles[id] = Circle{CenterID: centerID, Radius: radius}
	r.circleIDs = append(r.circleIDs, id)
	return nil
}

// LookupPoint is a total function on successfully ingested point IDs.
func (r *Registry) LookupPoint(id string) (Point, error) {
	p, ok := r.Table.Get(id)
	if !ok {
		return Point{}, ErrBadReference("", id)
	}
	return p, nil
}

// LookupPointMut resolves id to its live point pointer, the handle a
// constraint retains for the life of the session.
func (r *Registry) LookupPointMut(id string) (*Point, error) {
	p := r.Table.GetMut(id)
	if p == nil {
		return nil, ErrBadReference("", id)
	}
	return p, nil
}

// LookupLine is a total function on successfully ingested line IDs.
func (r *Registry) LookupLine(id string) (Line, error) {
	l, ok := r.lines[id]
	if !ok {
		return Line{}, ErrBadReference("", id)
	}
	return l, nil
}

// LookupCircle is a total function on successfully ingested circle IDs.
func (r *Registry) LookupCircle(id string) (Circle, error) {
	c, ok := r.circles[id]
	if !ok {
		return Circle{}, ErrBadReference("", id)
	}
	return c, nil
}
