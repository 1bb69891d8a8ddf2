// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xyprobe runs a chart render pass from a chart description
// and reports the resulting geometry.
//
// The description is a YAML, TOML, or JSON file (chosen by extension)
// giving the chart size, margins, and axes, and a list of series read
// from CSV files. For example:
//
//	chart:
//	  width: 500
//	  height: 300
//	  x: {type: time, nice: true}
//	  y: {type: linear, includeZero: true}
//	series:
//	  - data: temps.csv
//	    kind: line
//	    x: date
//	    y: temp
//	    groupBy: [city]
//
// xyprobe prints the inferred domains, the axis ticks, the
// hit-testable points, and the bar and violin geometry. With -events,
// it replays a pointer script against the chart and prints the hover
// events. With -hitmap, it writes a PNG of the nearest-point
// partition of the plot area.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-xychart/chart"
	"github.com/aclements/go-xychart/interact"
)

func main() {
	log.SetPrefix("xyprobe: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write report to `file` (default: stdout)")
		flagEvents = flag.String("events", "", "replay the pointer script in `file`")
		flagHitmap = flag.String("hitmap", "", "write a hit map PNG to `file`")
		flagCell   = flag.Int("cell", 4, "sample the hit map every `n` pixels")
		flagTicks  = flag.Int("ticks", 0, "report at most `n` ticks per axis (default: from description)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] description\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	desc, err := LoadDescription(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if *flagTicks > 0 {
		desc.Ticks = *flagTicks
	}
	ss, err := desc.LoadSeries()
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	c := chart.New(printEvent(f))
	if err := c.Update(desc.Chart, ss); err != nil {
		log.Fatal(err)
	}
	p := c.Pass()
	if err := report(f, p, desc.Ticks); err != nil {
		log.Fatal(err)
	}

	if *flagEvents != "" {
		ef, err := os.Open(*flagEvents)
		if err != nil {
			log.Fatal(err)
		}
		ops, err := parsePointerScript(ef)
		ef.Close()
		if err != nil {
			log.Fatalf("%s: %v", *flagEvents, err)
		}
		fmt.Fprintf(f, "# events\n")
		replay(c, ops)
	}

	if *flagHitmap != "" {
		hf, err := os.Create(*flagHitmap)
		if err != nil {
			log.Fatal(err)
		}
		if err := writeHitmap(hf, p, *flagCell); err != nil {
			log.Fatal(err)
		}
		if err := hf.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// printEvent returns a hover handler that prints each event to w.
func printEvent(w io.Writer) interact.Handler {
	return func(ev interact.Event) {
		if ev.Kind != interact.Hover {
			fmt.Fprintln(w, ev.Kind)
			return
		}
		r := ev.Record
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\n", ev.Kind, r.Series, r.Index, r.X, r.Y)
	}
}
