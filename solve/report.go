// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"fmt"
	goio "io"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/constraint"
)

// maxReportEntries caps the diagnostic report (§7 "capped at a small
// constant").
const maxReportEntries = 10

// ResidualEntry is one row of a Report: a constraint's kind, participant
// description and current |residual|.
type ResidualEntry struct {
	Kind   string
	Error  float64
	Detail string
}

// Report lists the top offending constraints in descending |residual|
// order, produced on Failed (and, harmlessly, on every other status too).
// Solve called with no session loaded returns a nil Report.
type Report struct {
	Entries []ResidualEntry
}

// Print renders the report the way driver.go logs a failed
// consistent-matrix check: a banner line, then one formatted line per
// entry.
func (r *Report) Print(w goio.Writer) {
	if r == nil || len(r.Entries) == 0 {
		fmt.Fprint(w, "solve: no residual entries to report\n")
		return
	}
	fmt.Fprint(w, "solve: top residuals\n")
	for i, e := range r.Entries {
		fmt.Fprint(w, io.Sf("  %2d) %-14s |r|=%.6f  %s\n", i+1, e.Kind, e.Error, e.Detail))
	}
}

func buildReport(catalog []constraint.Constraint) *Report {
	entries := make([]ResidualEntry, 0, len(catalog))
	for _, c := range catalog {
		entries = append(entries, ResidualEntry{
			Kind:   c.Kind().String(),
			Error:  c.Error(),
			Detail: c.Describe(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Error > entries[j].Error })
	if len(entries) > maxReportEntries {
		entries = entries[:maxReportEntries]
	}
	return &Report{Entries: entries}
}
