// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/freerider0/geosolve/builder"
	"github.com/freerider0/geosolve/constraint"
	"github.com/freerider0/geosolve/primitive"
)

// Session is one complete load -> configure -> solve -> extract -> clear
// cycle (§6, GLOSSARY "Session"). It owns its Point Table and Constraint
// Catalog exclusively; nothing outside the session may read or write
// that state mid-solve (§5).
type Session struct {
	opts        Options
	registry    *primitive.Registry
	catalog     []constraint.Constraint
	records     []primitive.Record
	cancelToken *int32
	warnedAlgo  bool
}

// NewSession allocates a session with default options.
func NewSession() *Session {
	s := &Session{}
	s.opts.SetDefault()
	return s
}

// Configure applies the recognized options of §6; fields left nil in
// opts keep their current value.
func (s *Session) Configure(opts ConfigOptions) {
	if opts.Algorithm != nil {
		s.opts.Algorithm = *opts.Algorithm
		if *opts.Algorithm != GradientDescent && !s.warnedAlgo {
			io.Pf("solve: algorithm %q has no specialized kernel; routing to gradient-descent\n", *opts.Algorithm)
			s.warnedAlgo = true
		}
	}
	if opts.MaxIterations != nil {
		s.opts.MaxIterations = *opts.MaxIterations
	}
	if opts.ConvergenceThreshold != nil {
		s.opts.ConvergenceEpsilon = *opts.ConvergenceThreshold
	}
	if opts.CancelToken != nil {
		s.cancelToken = opts.CancelToken
	}
	if opts.Timeout != nil {
		s.opts.Timeout = *opts.Timeout
	}
}

// Load resets any prior session and ingests a new primitive list (§6).
// On error, no partial state is retained: the session is left cleared.
func (s *Session) Load(records []primitive.Record) error {
	s.Clear()
	reg, catalog, err := builder.Build(records)
	if err != nil {
		return err
	}
	s.registry = reg
	s.catalog = catalog
	s.records = records
	return nil
}

// Clear releases all session state (§3 "Clearing the solver drops the
// Primitive Registry, the Point Table, the Constraint Catalog, and any
// residual history").
func (s *Session) Clear() {
	s.registry = nil
	s.catalog = nil
	s.records = nil
}

func (s *Session) cancelled() bool {
	return s.cancelToken != nil && atomic.LoadInt32(s.cancelToken) != 0
}

func (s *Session) totalError() float64 {
	var sum float64
	for _, c := range s.catalog {
		sum += c.Error()
	}
	return sum
}

// Solve runs the fixed-point iteration of §4.4 against the currently
// loaded session. Failure never rolls back point mutations: the caller
// always sees the best-effort assignment alongside the returned status.
func (s *Session) Solve() (Status, *Report) {
	if s.registry == nil {
		io.Pfred("solve: Solve called with no session loaded\n")
		return StatusFailed, nil
	}

	step := s.opts.StepInitial
	prevErr := math.Inf(1)
	noImprove := 0
	history := newRingBuffer(s.opts.HistoryWindow)
	start := time.Now()

	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		if s.cancelled() {
			return StatusCancelled, buildReport(s.catalog)
		}
		if s.opts.Timeout > 0 && time.Since(start) > s.opts.Timeout {
			return s.acceptOrFail(s.totalError())
		}

		var totalErr float64
		for _, c := range s.catalog {
			totalErr += c.ApplyCorrection(step, iter)
		}
		history.push(totalErr)

		if totalErr < s.opts.ConvergenceEpsilon {
			return StatusConverged, buildReport(s.catalog)
		}

		if totalErr < 0.98*prevErr {
			step = utl.Min(step*1.1, s.opts.StepMax)
			noImprove = 0
		} else {
			noImprove++
		}

		if history.full() {
			if frac := history.increasingFraction(); frac >= 0.4 && frac <= 0.6 {
				step = utl.Max(step*0.5, s.opts.StepMin)
				history.clear()
			}
		}

		if noImprove > s.opts.StallPatience {
			return s.acceptOrFail(totalErr)
		}

		prevErr = totalErr
	}

	return s.acceptOrFail(s.totalError())
}

func (s *Session) acceptOrFail(totalErr float64) (Status, *Report) {
	if totalErr <= s.opts.StallErrorThreshold {
		return StatusSuccess, buildReport(s.catalog)
	}
	return StatusFailed, buildReport(s.catalog)
}

// Extract produces an updated primitive list: points carry the solved
// coordinates, lines/circles/constraints pass through unchanged, and IDs
// and order match the input exactly (§4.5).
func (s *Session) Extract() ([]primitive.Record, error) {
	if s.registry == nil {
		return nil, chk.Err("solve: Extract called with no session loaded")
	}
	out := make([]primitive.Record, len(s.records))
	for i, rec := range s.records {
		if rec.Type != primitive.TypePoint {
			out[i] = rec
			continue
		}
		p, ok := s.registry.Table.Get(rec.ID)
		if !ok {
			return nil, chk.Err("solve: point %q missing from table", rec.ID)
		}
		updated := rec
		updated.X, updated.Y, updated.Fixed = p.X, p.Y, p.Fixed
		out[i] = updated
	}
	return out, nil
}
