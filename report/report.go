// Package report renders pathlab query results as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/loader"
	"github.com/katalvlaran/pathlab/network"
	"github.com/katalvlaran/pathlab/stats"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported Format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Text, JSON, YAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Path is the outcome of a shortest-path query.
type Path struct {
	From     int64          `json:"from" yaml:"from"`
	To       int64          `json:"to" yaml:"to"`
	Code     string         `json:"code" yaml:"code"`
	Distance *int64         `json:"distance,omitempty" yaml:"distance,omitempty"` // nil unless a path exists
	Path     []int64        `json:"path,omitempty" yaml:"path,omitempty"`
	Paths    [][]int64      `json:"paths,omitempty" yaml:"paths,omitempty"`
	Steps    []network.Step `json:"steps,omitempty" yaml:"steps,omitempty"`

	// SourceComponent lists the nodes reachable from From when To is not.
	SourceComponent []int64 `json:"source_component,omitempty" yaml:"source_component,omitempty"`
}

// Neighbors lists the edges incident to one node.
type Neighbors struct {
	ID    int64      `json:"id" yaml:"id"`
	Edges []Neighbor `json:"edges" yaml:"edges"`
}

// Neighbor is one incident edge.
type Neighbor struct {
	ID     int64 `json:"id" yaml:"id"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// NeighborsOf converts a neighbor map into a Neighbors sorted by id.
func NeighborsOf(id int64, m map[int64]int64) Neighbors {
	out := Neighbors{ID: id, Edges: make([]Neighbor, 0, len(m))}
	for nb, w := range m {
		out.Edges = append(out.Edges, Neighbor{ID: nb, Weight: w})
	}
	slices.SortFunc(out.Edges, func(a, b Neighbor) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return out
}

// Components is the connected-component partition.
type Components struct {
	Count      int       `json:"count" yaml:"count"`
	Components [][]int64 `json:"components" yaml:"components"`
}

// Renderer writes reports to w in a fixed Format.
type Renderer struct {
	w      io.Writer
	format Format
	st     styles
}

type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	dim   lipgloss.Style
}

// New returns a Renderer. Text styling follows the capabilities of w:
// writers that are not terminals get plain text.
func New(w io.Writer, format Format) (*Renderer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	lr := lipgloss.NewRenderer(w)

	return &Renderer{
		w:      w,
		format: format,
		st: styles{
			title: lr.NewStyle().Foreground(lipgloss.Color("#874BFD")).Bold(true),
			key:   lr.NewStyle().Foreground(lipgloss.Color("#64748B")).Width(12),
			value: lr.NewStyle().Foreground(lipgloss.Color("#E2E8F0")),
			good:  lr.NewStyle().Foreground(lipgloss.Color("#00FF99")).Bold(true),
			bad:   lr.NewStyle().Foreground(lipgloss.Color("#FF0055")).Bold(true),
			dim:   lr.NewStyle().Foreground(lipgloss.Color("#64748B")),
		},
	}, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format { return r.format }

// Path renders a path query result.
func (r *Renderer) Path(p Path) error {
	return r.render(p, func(b *strings.Builder) {
		r.title(b, fmt.Sprintf("Shortest path %d -> %d", p.From, p.To))
		code := r.st.bad
		if p.Distance != nil {
			code = r.st.good
		}
		r.row(b, "code", code.Render(p.Code))
		if p.Distance != nil {
			r.row(b, "distance", r.st.value.Render(strconv.FormatInt(*p.Distance, 10)))
			r.row(b, "path", r.st.value.Render(joinIDs(p.Path)))
		}
		if len(p.SourceComponent) > 0 {
			r.row(b, "reachable", r.st.dim.Render(fmt.Sprintf("%d node(s) from %d, %d not among them: %s",
				len(p.SourceComponent), p.From, p.To, joinList(p.SourceComponent))))
		}
		if len(p.Paths) > 0 {
			r.row(b, "tied", r.st.value.Render(strconv.Itoa(len(p.Paths))))
			for i, alt := range p.Paths {
				r.row(b, "#"+strconv.Itoa(i+1), r.st.value.Render(joinIDs(alt)))
			}
		}
		if len(p.Steps) > 0 {
			r.title(b, "Steps")
			for i, s := range p.Steps {
				line := fmt.Sprintf("node %d dist %d", s.ID, s.Distance)
				if s.Final {
					line += " (done)"
				}
				r.row(b, strconv.Itoa(i+1), r.st.dim.Render(line))
			}
		}
	})
}

// Stats renders a graph summary.
func (r *Renderer) Stats(s stats.Summary) error {
	return r.render(s, func(b *strings.Builder) {
		r.title(b, "Graph statistics")
		r.row(b, "nodes", r.st.value.Render(strconv.Itoa(s.NodeCount)))
		r.row(b, "edges", r.st.value.Render(strconv.Itoa(s.EdgeCount)))
		r.row(b, "weight", r.st.value.Render(strconv.FormatInt(s.TotalWeight, 10)))
		r.row(b, "degree", r.st.value.Render(fmt.Sprintf("min %d avg %.2f max %d", s.MinDegree, s.AvgDegree, s.MaxDegree)))
		r.row(b, "density", r.st.value.Render(fmt.Sprintf("%.4f", s.Density)))
		r.row(b, "components", r.st.value.Render(strconv.Itoa(s.Components)))
		r.row(b, "largest", r.st.value.Render(strconv.Itoa(s.LargestComponent)))
		r.row(b, "isolated", r.st.value.Render(strconv.Itoa(s.Isolated)))
		r.row(b, "self-loops", r.st.value.Render(strconv.Itoa(s.SelfLoops)))
	})
}

// Neighbors renders the edges incident to one node.
func (r *Renderer) Neighbors(n Neighbors) error {
	return r.render(n, func(b *strings.Builder) {
		r.title(b, fmt.Sprintf("Neighbors of %d", n.ID))
		if len(n.Edges) == 0 {
			b.WriteString(r.st.dim.Render("  (none)"))
			b.WriteByte('\n')
			return
		}
		for _, e := range n.Edges {
			r.row(b, strconv.FormatInt(e.ID, 10), r.st.value.Render("weight "+strconv.FormatInt(e.Weight, 10)))
		}
	})
}

// Components renders a component partition.
func (r *Renderer) Components(comps [][]int64) error {
	if comps == nil {
		comps = [][]int64{}
	}
	c := Components{Count: len(comps), Components: comps}

	return r.render(c, func(b *strings.Builder) {
		r.title(b, fmt.Sprintf("%d connected component(s)", c.Count))
		for i, comp := range comps {
			r.row(b, "#"+strconv.Itoa(i+1), r.st.value.Render(fmt.Sprintf("%d node(s): %s", len(comp), joinIDs(comp))))
		}
	})
}

// Load renders an ingestion summary.
func (r *Renderer) Load(s loader.Summary) error {
	return r.render(s, func(b *strings.Builder) {
		r.title(b, "Load")
		r.row(b, "lines", r.st.value.Render(strconv.Itoa(s.Lines)))
		r.row(b, "edges", r.st.value.Render(strconv.Itoa(s.Edges)))
		r.row(b, "bytes", r.st.value.Render(strconv.FormatInt(s.Bytes, 10)))
	})
}

// Version renders the program version.
func (r *Renderer) Version(v string) error {
	return r.render(map[string]string{"version": v}, func(b *strings.Builder) {
		b.WriteString("pathlab version " + v + "\n")
	})
}

// render dispatches on the format; text builds through fn.
func (r *Renderer) render(v any, fn func(b *strings.Builder)) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		var b strings.Builder
		fn(&b)
		_, err := io.WriteString(r.w, b.String())
		return err
	}
}

func (r *Renderer) title(b *strings.Builder, s string) {
	b.WriteString(r.st.title.Render(s))
	b.WriteByte('\n')
}

func (r *Renderer) row(b *strings.Builder, key, value string) {
	b.WriteString("  ")
	b.WriteString(r.st.key.Render(key))
	b.WriteString(value)
	b.WriteByte('\n')
}

// joinList is a comma-separated id list, elided after maxListed ids.
func joinList(ids []int64) string {
	const maxListed = 10
	parts := make([]string, 0, min(len(ids), maxListed)+1)
	for i, id := range ids {
		if i == maxListed {
			parts = append(parts, fmt.Sprintf("... (+%d)", len(ids)-maxListed))
			break
		}
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	return strings.Join(parts, ", ")
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, " -> ")
}
