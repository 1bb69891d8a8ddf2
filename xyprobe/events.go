// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-xychart/chart"
)

// A pointerOp is one step of a pointer script.
type pointerOp struct {
	line int

	// leave is true for "leave". Otherwise this is a move to
	// (x, y).
	leave bool
	x, y  float64
}

func (op pointerOp) String() string {
	if op.leave {
		return "leave"
	}
	return fmt.Sprintf("move %g %g", op.x, op.y)
}

// parsePointerScript parses a pointer script. Each line is one of
//
//	move X Y
//	leave
//
// in plot-area pixels. Blank lines and lines starting with # are
// ignored.
func parsePointerScript(r io.Reader) ([]pointerOp, error) {
	var ops []pointerOp
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := shellquote.Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(words) == 0 {
			continue
		}
		op := pointerOp{line: line}
		switch words[0] {
		case "leave":
			if len(words) != 1 {
				return nil, fmt.Errorf("line %d: leave takes no arguments", line)
			}
			op.leave = true
		case "move":
			if len(words) != 3 {
				return nil, fmt.Errorf("line %d: want move X Y", line)
			}
			if op.x, err = strconv.ParseFloat(words[1], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if op.y, err = strconv.ParseFloat(words[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown pointer op %q", line, words[0])
		}
		ops = append(ops, op)
	}
	return ops, scanner.Err()
}

// replay applies ops to c in order.
func replay(c *chart.Chart, ops []pointerOp) {
	for _, op := range ops {
		if op.leave {
			c.PointerLeave()
		} else {
			c.PointerMove(op.x, op.y)
		}
	}
}
