// SPDX-License-Identifier: MIT
// Package: evroute/report
//
// render.go — text and JSON renderers for a Summary.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/muesli/termenv"
)

// TextOption configures WriteText.
type TextOption func(*textOptions)

type textOptions struct {
	profile termenv.Profile
}

// WithProfile selects the terminal color profile. The default, termenv.Ascii,
// produces plain text.
func WithProfile(p termenv.Profile) TextOption {
	return func(o *textOptions) { o.profile = p }
}

// FormatDistance renders a distance with the shortest exact representation.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// String renders the record's path as "A -> B -> C", or "unreachable".
func (r Record) String() string {
	if !r.Reachable {
		return "unreachable"
	}

	return strings.Join(r.PathLabels, PathSeparator)
}

// WriteText prints s in a human-readable form:
//
//	Shortest paths from A (node 0):
//	  C [station] 8: A -> B -> C
//	Nearest charging station: C (node 2) at distance 8 via A -> B -> C
func WriteText(w io.Writer, s *Summary, opts ...TextOption) error {
	if s == nil {
		return ErrNilInput
	}
	cfg := textOptions{profile: termenv.Ascii}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := cfg.profile

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Shortest paths from %s (node %d):\n",
		p.String(s.SourceLabel).Bold(), s.Source)

	if len(s.Records) == 0 {
		if s.DisplayAll {
			fmt.Fprintln(bw, "  (graph has no nodes)")
		} else {
			fmt.Fprintln(bw, "  (graph has no charging stations)")
		}
	}
	for _, r := range s.Records {
		label := p.String(r.Label)
		tag := ""
		if r.Station {
			label = label.Foreground(termenv.ANSIGreen)
			tag = " [station]"
		}
		if !r.Reachable {
			fmt.Fprintf(bw, "  %s%s: %s\n", label, tag, p.String("unreachable").Foreground(termenv.ANSIBrightBlack))
			continue
		}
		fmt.Fprintf(bw, "  %s%s %s: %s\n", label, tag, FormatDistance(r.Distance), r.String())
	}

	if s.Nearest == nil {
		fmt.Fprintf(bw, "%s from %s: no recommendation available\n",
			p.String("No charging station is reachable").Foreground(termenv.ANSIYellow), s.SourceLabel)
	} else {
		n := s.Nearest
		fmt.Fprintf(bw, "Nearest charging station: %s (node %d) at distance %s via %s\n",
			p.String(n.Label).Foreground(termenv.ANSIGreen).Bold(), n.Index, FormatDistance(n.Distance), n.String())
	}

	return bw.Flush()
}

// jsonRecord is the wire form of Record; Distance is null when unreachable.
type jsonRecord struct {
	Index     int      `json:"index"`
	Label     string   `json:"label"`
	Station   bool     `json:"station"`
	Reachable bool     `json:"reachable"`
	Distance  *float64 `json:"distance"`
	Path      []int    `json:"path"`
	Labels    []string `json:"path_labels"`
}

type jsonSummary struct {
	Source      int          `json:"source"`
	SourceLabel string       `json:"source_label"`
	DisplayAll  bool         `json:"display_all"`
	Records     []jsonRecord `json:"records"`
	Nearest     *jsonRecord  `json:"nearest"`
}

func toJSONRecord(r Record) jsonRecord {
	jr := jsonRecord{
		Index:     r.Index,
		Label:     r.Label,
		Station:   r.Station,
		Reachable: r.Reachable,
		Path:      r.Path,
		Labels:    r.PathLabels,
	}
	if r.Reachable {
		d := r.Distance
		jr.Distance = &d
	}
	if jr.Path == nil {
		jr.Path = []int{}
		jr.Labels = []string{}
	}

	return jr
}

// WriteJSON encodes s as indented JSON followed by a newline.
func WriteJSON(w io.Writer, s *Summary) error {
	if s == nil {
		return ErrNilInput
	}

	out := jsonSummary{
		Source:      s.Source,
		SourceLabel: s.SourceLabel,
		DisplayAll:  s.DisplayAll,
		Records:     make([]jsonRecord, 0, len(s.Records)),
	}
	for _, r := range s.Records {
		out.Records = append(out.Records, toJSONRecord(r))
	}
	if s.Nearest != nil {
		jr := toJSONRecord(*s.Nearest)
		out.Nearest = &jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}
