// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact turns pointer events into hover events over a
// nearest-point index.
//
// A Coordinator is either Idle (no pointer inside the chart bounds)
// or Hovering (pointer inside the bounds, nearest record resolved).
// It emits a Hover event when the resolved record changes and a
// single Clear event when the pointer leaves. It is driven
// synchronously by the caller and does no work between events.
package interact

import (
	"fmt"

	"github.com/aclements/go-xychart/nearest"
)

type State int

const (
	Idle State = iota
	Hovering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type EventKind int

const (
	// Hover reports a newly resolved nearest record.
	Hover EventKind = 1 + iota
	// Clear reports that the pointer left the chart.
	Clear
)

func (k EventKind) String() string {
	switch k {
	case Hover:
		return "hover"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is emitted by a Coordinator. Record is set for Hover events.
type Event struct {
	Kind   EventKind
	Record nearest.Record
}

func (e Event) String() string {
	if e.Kind == Hover {
		return fmt.Sprintf("hover %s", e.Record)
	}
	return e.Kind.String()
}

// A Handler receives events. It is called synchronously from Move,
// Leave, and SetIndex.
type Handler func(Event)

// Coordinator is the hover state machine. It is not safe for
// concurrent use.
type Coordinator struct {
	h      Handler
	idx    *nearest.Index
	bounds nearest.Rect
	state  State
	cur    nearest.Record
	stale  bool
}

// New returns an Idle coordinator with no index. h may be nil.
func New(h Handler) *Coordinator {
	return &Coordinator{h: h}
}

// SetIndex replaces the index and chart bounds. The index is
// replaced whole, never patched. If the coordinator is Hovering, it
// stays Hovering but forgets the current record, so the next Move
// emits a Hover even if it resolves to an equal record.
func (c *Coordinator) SetIndex(idx *nearest.Index, bounds nearest.Rect) {
	c.idx, c.bounds = idx, bounds
	c.stale = true
}

// State returns the current state.
func (c *Coordinator) State() State { return c.state }

// Current returns the record being hovered, if any.
func (c *Coordinator) Current() (nearest.Record, bool) {
	if c.state != Hovering || c.stale {
		return nearest.Record{}, false
	}
	return c.cur, true
}

// Move handles a pointer move to (x, y) in chart-local pixels.
func (c *Coordinator) Move(x, y float64) {
	if !c.bounds.Contains(x, y) {
		c.Leave()
		return
	}
	r, ok := c.idx.Nearest(x, y)
	if !ok {
		c.Leave()
		return
	}
	if c.state == Hovering && !c.stale && r.ID == c.cur.ID {
		return
	}
	c.state, c.cur, c.stale = Hovering, r, false
	c.emit(Event{Kind: Hover, Record: r})
}

// Leave handles the pointer leaving the chart.
func (c *Coordinator) Leave() {
	if c.state == Idle {
		return
	}
	c.state, c.cur, c.stale = Idle, nearest.Record{}, false
	c.emit(Event{Kind: Clear})
}

func (c *Coordinator) emit(ev Event) {
	if c.h != nil {
		c.h(ev)
	}
}
