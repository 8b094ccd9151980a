// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import "github.com/cpmech/gosl/io"

// BadReferenceError reports a constraint or line naming an ID that was
// never ingested. Ingest is rejected atomically when this occurs.
type BadReferenceError struct {
	Context string // id of the primitive holding the reference, if known
	RefID   string // the unresolved reference
}

func (e *BadReferenceError) Error() string {
	if e.Context == "" {
		return io.Sf("bad reference: unknown id %q", e.RefID)
	}
	return io.Sf("bad reference: %q refers to unknown id %q", e.Context, e.RefID)
}

// ErrBadReference builds a BadReferenceError.
func ErrBadReference(context, refID string) error {
	return &BadReferenceError{Context: context, RefID: refID}
}

// DuplicateIDError reports two primitives sharing an ID.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return io.Sf("duplicate id: %q", e.ID)
}

// ErrDuplicateID builds a DuplicateIDError.
func ErrDuplicateID(id string) error {
	return &DuplicateIDError{ID: id}
}

// UnknownConstraintKindError reports a constraint record naming a kind
// outside the closed catalog.
type UnknownConstraintKindError struct {
	Kind string
}

func (e *UnknownConstraintKindError) Error() string {
	return io.Sf("unknown constraint kind: %q", e.Kind)
}

// ErrUnknownConstraintKind builds an UnknownConstraintKindError.
func ErrUnknownConstraintKind(kind string) error {
	return &UnknownConstraintKindError{Kind: kind}
}
