// Copyright 2026 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/freerider0/geosolve/primitive"
	"github.com/freerider0/geosolve/solve"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nGeosolve -- 2D parametric geometric constraint solver\n\n")

	// primitive-list filename
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a primitive-list filename. Ex.: floorplan.json\n")
	}
	fnamepath := flag.Arg(0)

	outpath := fnamepath + ".out.json"
	if len(flag.Args()) > 1 {
		outpath = flag.Arg(1)
	}

	// read and decode the wire-format primitive list
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read primitive-list file %q: %v\n", fnamepath, err)
	}
	var records []primitive.Record
	if err := json.Unmarshal(b, &records); err != nil {
		chk.Panic("cannot unmarshal primitive-list file %q: %v\n", fnamepath, err)
	}

	// load, solve, extract
	sess := solve.NewSession()
	if err := sess.Load(records); err != nil {
		chk.Panic("load failed: %v\n", err)
	}

	status, report := sess.Solve()
	io.Pf("solve: status=%s\n", status)
	if status == solve.StatusFailed {
		report.Print(os.Stdout)
	}

	out, err := sess.Extract()
	if err != nil {
		chk.Panic("extract failed: %v\n", err)
	}

	// write updated primitive list
	outBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal result: %v\n", err)
	}
	if err := os.WriteFile(outpath, outBytes, 0644); err != nil {
		chk.Panic("cannot write result file %q: %v\n", outpath, err)
	}
	io.Pfgreen("wrote %s\n", outpath)
}
