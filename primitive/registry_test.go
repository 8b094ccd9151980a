// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import "testing"

func TestRegistryAddLineBadReference(t *testing.T) {
	reg := NewRegistry()
	reg.Table.Add("p1", 0, 0, false)
	err := reg.AddLine("l1", "p1", "ghost")
	if err == nil {
		t.Fatalf("expected BadReferenceError for unresolved endpoint")
	}
	if _, ok := err.(*BadReferenceError); !ok {
		t.Fatalf("expected *BadReferenceError, got %T", err)
	}
}

func TestRegistryAddLineAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Table.Add("p1", 0, 0, false)
	reg.Table.Add("p2", 1, 1, false)
	if err := reg.AddLine("l1", "p1", "p2"); err != nil {
		t.Fatalf("AddLine failed: %v", err)
	}
	l, err := reg.LookupLine("l1")
	if err != nil {
		t.Fatalf("LookupLine failed: %v", err)
	}
	if l.P1ID != "p1" || l.P2ID != "p2" {
		t.Fatalf("LookupLine returned wrong line %+v", l)
	}
}

func TestRegistryAddCircleBadReference(t *testing.T) {
	reg := NewRegistry()
	err := reg.AddCircle("c1", "ghost", 5)
	if err == nil {
		t.Fatalf("expected BadReferenceError for unresolved center")
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.LookupPoint("ghost"); err == nil {
		t.Fatalf("expected error looking up missing point")
	}
	if _, err := reg.LookupLine("ghost"); err == nil {
		t.Fatalf("expected error looking up missing line")
	}
	if _, err := reg.LookupCircle("ghost"); err == nil {
		t.Fatalf("expected error looking up missing circle")
	}
}

func TestRegistryLookupPointMutIsLiveHandle(t *testing.T) {
	reg := NewRegistry()
	reg.Table.Add("p1", 0, 0, false)
	h, err := reg.LookupPointMut("p1")
	if err != nil {
		t.Fatalf("LookupPointMut failed: %v", err)
	}
	h.X = 7
	p, _ := reg.LookupPoint("p1")
	if p.X != 7 {
		t.Fatalf("mutation through LookupPointMut handle not visible, got %+v", p)
	}
}
