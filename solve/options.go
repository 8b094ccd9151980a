// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the Iterative Solver and Result Extractor of
// §4.4/§4.5, plus the Session lifecycle of §6 (load/configure/solve/
// extract/clear).
package solve

import (
	"time"

	"github.com/cpmech/gosl/fun"
)

// Algorithm names accepted by configure(opts) (§6). Only GradientDescent
// has a specialized kernel; the others route to it for forward
// compatibility rather than being rejected — a module-level choice, not
// a teacher pattern (the teacher's own name lookups, e.g.
// msolid.GetModel, fail rather than substitute a default model).
type Algorithm string

const (
	GradientDescent    Algorithm = "gradient-descent"
	LevenbergMarquardt Algorithm = "levenberg-marquardt"
	DogLeg             Algorithm = "dogleg"
	BFGS               Algorithm = "bfgs"
)

// Options holds the solver's tunable constants (§4.4). NewSession starts
// from DefaultOptions; Configure overrides only the fields carried by
// ConfigOptions (Algorithm, MaxIterations, ConvergenceEpsilon, Timeout).
type Options struct {
	Algorithm           Algorithm
	StepInitial         float64
	StepMax             float64
	StepMin             float64
	MaxIterations       int
	ConvergenceEpsilon  float64
	StallPatience       int
	HistoryWindow       int
	StallErrorThreshold float64
	Timeout             time.Duration // 0 disables the wall-clock budget
}

// DefaultOptions returns the constants of §4.4.
func DefaultOptions() Options {
	return Options{
		Algorithm:           GradientDescent,
		StepInitial:         0.5,
		StepMax:             0.8,
		StepMin:             0.05,
		MaxIterations:       200,
		ConvergenceEpsilon:  1.0,
		StallPatience:       100,
		HistoryWindow:       10,
		StallErrorThreshold: 10.0,
	}
}

// SetDefault resets o to the default constants, mirroring
// inp.SolverData.SetDefault() in the teacher.
func (o *Options) SetDefault() { *o = DefaultOptions() }

// Prms exposes the numeric tunables as named parameter records, the same
// protocol msolid models use to publish their constants via GetPrms()
// (e.g. elasticity.go's {"E", "nu"} pair). Useful for a caller that wants
// to introspect or log the active tuning without reaching into Options
// directly.
func (o *Options) Prms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "stepInitial", V: o.StepInitial},
		&fun.Prm{N: "stepMax", V: o.StepMax},
		&fun.Prm{N: "stepMin", V: o.StepMin},
		&fun.Prm{N: "convergenceEpsilon", V: o.ConvergenceEpsilon},
		&fun.Prm{N: "stallErrorThreshold", V: o.StallErrorThreshold},
	}
}

// ConfigOptions carries the subset of Options a caller may override via
// Session.Configure; nil fields are left at their current value (§6
// "configure(opts): recognized options and their effects").
type ConfigOptions struct {
	Algorithm            *Algorithm
	MaxIterations        *int
	ConvergenceThreshold *float64
	CancelToken          *int32
	Timeout              *time.Duration
}
