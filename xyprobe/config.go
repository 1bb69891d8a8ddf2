// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-xychart/chart"
	"github.com/aclements/go-xychart/series"
)

// Description describes a chart to probe: its configuration and the
// tables its series are read from.
type Description struct {
	Chart  chart.Config `json:"chart" yaml:"chart" toml:"chart"`
	Series []SeriesDesc `json:"series" yaml:"series" toml:"series"`

	// Ticks is the maximum number of ticks to report per axis.
	Ticks int `json:"ticks,omitempty" yaml:"ticks,omitempty" toml:"ticks,omitempty"`

	// dir is the directory the description was loaded from.
	// Relative data paths are resolved against it.
	dir string
}

// SeriesDesc describes one or more series read from a CSV table.
type SeriesDesc struct {
	// Label labels the series. If GroupBy is set, there is one
	// series per group, labeled by the group.
	Label string      `json:"label" yaml:"label" toml:"label"`
	Kind  series.Kind `json:"kind" yaml:"kind" toml:"kind"`

	// Data is the path of a CSV file with a header row.
	Data string `json:"data" yaml:"data" toml:"data"`

	X       string   `json:"x" yaml:"x" toml:"x"`
	Y       string   `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	GroupBy []string `json:"groupBy,omitempty" yaml:"groupBy,omitempty" toml:"groupBy,omitempty"`

	// Keys are the stack or group key columns of stacked and
	// grouped bar series.
	Keys []string `json:"keys,omitempty" yaml:"keys,omitempty" toml:"keys,omitempty"`

	// Size is the constant mark size of the series.
	Size float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

// LoadDescription reads a chart description. The format is chosen by
// the file extension: .yaml, .yml, .toml, or .json.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := ParseDescription(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}

// ParseDescription parses a chart description in the format named by
// ext.
func ParseDescription(ext string, data []byte) (*Description, error) {
	d := new(Description)
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, d)
	case ".toml":
		err = toml.Unmarshal(data, d)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(d)
	default:
		return nil, fmt.Errorf("unsupported description format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if d.Ticks == 0 {
		d.Ticks = 5
	}
	return d, nil
}

// LoadSeries reads the tables of every series in d.
func (d *Description) LoadSeries() ([]series.Series, error) {
	tabs := make(map[string]*table.Table)
	var ss []series.Series
	for _, sd := range d.Series {
		path := sd.Data
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.dir, path)
		}
		tab, ok := tabs[path]
		if !ok {
			var err error
			if tab, err = readCSV(path); err != nil {
				return nil, err
			}
			tabs[path] = tab
		}
		got, err := sd.build(tab)
		if err != nil {
			return nil, err
		}
		ss = append(ss, got...)
	}
	return ss, nil
}

func readCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// build returns the series sd describes over tab.
func (sd SeriesDesc) build(tab *table.Table) ([]series.Series, error) {
	var ss []series.Series
	if sd.Kind == series.Violin {
		var err error
		ss, err = sd.violins(tab)
		if err != nil {
			return nil, err
		}
	} else {
		var g table.Grouping = tab
		if len(sd.GroupBy) > 0 {
			g = table.GroupBy(tab, sd.GroupBy...)
		}
		var err error
		ss, err = series.FromGrouping(g, sd.Kind, sd.X, sd.Y)
		if err != nil {
			return nil, err
		}
		if len(sd.GroupBy) == 0 && sd.Label != "" {
			ss[0].Label = sd.Label
		}
	}
	for i := range ss {
		ss[i].Keys = sd.Keys
		if sd.Size != 0 {
			ss[i].Style = map[string]series.Attr{"size": series.Const(sd.Size)}
		}
	}
	return ss, nil
}

// violins returns a single violin series with one datum per distinct
// value of the X column. Each datum's samples are the Y values of
// its rows.
func (sd SeriesDesc) violins(tab *table.Table) ([]series.Series, error) {
	if tab.Column(sd.X) == nil || tab.Column(sd.Y) == nil {
		return nil, fmt.Errorf("series %q: unknown column %q or %q", sd.Label, sd.X, sd.Y)
	}
	label := sd.Label
	if label == "" {
		label = sd.Y
	}
	s := series.Series{Label: label, Kind: series.Violin}
	g := table.GroupBy(tab, sd.X)
	for _, gid := range g.Tables() {
		grp, err := series.FromTable(label, series.Point, g.Table(gid), sd.X, sd.Y)
		if err != nil {
			return nil, err
		}
		d := series.Datum{X: gid.Label()}
		for _, p := range grp.Data {
			if v, ok := series.ToFloat(p.Y); ok {
				d.Samples = append(d.Samples, v)
			}
		}
		s.Data = append(s.Data, d)
	}
	return []series.Series{s}, nil
}
