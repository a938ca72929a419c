// SPDX-License-Identifier: MIT
// Package: evroute/report
//
// report.go — display records and summaries.

package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evroute/dijkstra"
	"github.com/katalvlaran/evroute/roadgraph"
)

// FormatReport builds one Record per charging station, or per node when
// displayAll is true, in ascending index order.
func FormatReport(g *roadgraph.Graph, dist []float64, prev []int, displayAll bool) ([]Record, error) {
	if g == nil {
		return nil, ErrNilInput
	}
	n := g.NodeCount()
	if len(dist) != n || len(prev) != n {
		return nil, fmt.Errorf("%w: tables of %d/%d entries for %d nodes", ErrConsistency, len(dist), len(prev), n)
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		nd, err := g.Node(i)
		if err != nil {
			return nil, err
		}
		if !nd.Station && !displayAll {
			continue
		}

		rec, err := record(g, nd, dist, prev)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// Build assembles the Summary for res: records, source label and recommendation.
func Build(g *roadgraph.Graph, res *dijkstra.Result, displayAll bool) (*Summary, error) {
	if g == nil || res == nil {
		return nil, ErrNilInput
	}

	records, err := FormatReport(g, res.Dist, res.Prev, displayAll)
	if err != nil {
		return nil, err
	}
	srcLabel, err := g.Label(res.Source)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Source:      res.Source,
		SourceLabel: srcLabel,
		DisplayAll:  displayAll,
		Records:     records,
	}

	station, ok, err := NearestChargingStation(g, res.Dist)
	if err != nil {
		return nil, err
	}
	if ok {
		nd, err := g.Node(station)
		if err != nil {
			return nil, err
		}
		rec, err := record(g, nd, res.Dist, res.Prev)
		if err != nil {
			return nil, err
		}
		s.Nearest = &rec
	}

	return s, nil
}

// record fills a Record for nd, reconstructing its path when reachable.
func record(g *roadgraph.Graph, nd roadgraph.Node, dist []float64, prev []int) (Record, error) {
	rec := Record{
		Index:     nd.Index,
		Label:     nd.Label,
		Station:   nd.Station,
		Distance:  dist[nd.Index],
		Reachable: !math.IsInf(dist[nd.Index], 1),
	}
	if !rec.Reachable {
		return rec, nil
	}

	path, err := ReconstructPath(prev, nd.Index)
	if err != nil {
		return Record{}, err
	}
	rec.Path = path
	rec.PathLabels = make([]string, len(path))
	for k, idx := range path {
		if rec.PathLabels[k], err = g.Label(idx); err != nil {
			return Record{}, err
		}
	}

	return rec, nil
}
