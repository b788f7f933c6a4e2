package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/loader"
	"github.com/katalvlaran/pathlab/network"
	"github.com/katalvlaran/pathlab/report"
	"github.com/katalvlaran/pathlab/stats"
)

func found() report.Path {
	d := int64(2)
	return report.Path{
		From: 1, To: 4, Code: "FOUND", Distance: &d,
		Path:  []int64{1, 2, 4},
		Paths: [][]int64{{1, 2, 4}, {1, 3, 4}},
		Steps: []network.Step{{ID: 1}, {ID: 1, Final: true}},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{"text": report.Text, "JSON": report.JSON, " yaml ": report.YAML} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	_, err = report.New(&bytes.Buffer{}, "csv")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestPath_Text(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.Text)
	require.NoError(t, err)
	require.NoError(t, r.Path(found()))

	out := buf.String()
	assert.Contains(t, out, "Shortest path 1 -> 4")
	assert.Contains(t, out, "FOUND")
	assert.Contains(t, out, "1 -> 2 -> 4")
	assert.Contains(t, out, "1 -> 3 -> 4")
	assert.Contains(t, out, "node 1 dist 0 (done)")
	assert.NotContains(t, out, "\x1b[", "non-terminal writers get plain text")
}

func TestPath_TextUnreachable(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.Text)
	require.NoError(t, err)
	require.NoError(t, r.Path(report.Path{From: 1, To: 9, Code: "UNREACHABLE", SourceComponent: []int64{1, 2, 3}}))

	assert.Contains(t, buf.String(), "UNREACHABLE")
	assert.Contains(t, buf.String(), "3 node(s) from 1, 9 not among them: 1, 2, 3")
	assert.NotContains(t, buf.String(), "distance")

	buf.Reset()
	big := make([]int64, 25)
	for i := range big {
		big[i] = int64(i + 1)
	}
	require.NoError(t, r.Path(report.Path{From: 1, To: 99, Code: "UNREACHABLE", SourceComponent: big}))
	assert.Contains(t, buf.String(), "25 node(s)")
	assert.Contains(t, buf.String(), "9, 10, ... (+15)")
}

func TestPath_JSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.JSON)
	require.NoError(t, err)
	require.NoError(t, r.Path(found()))

	var got report.Path
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, found(), got)

	buf.Reset()
	require.NoError(t, r.Path(report.Path{From: 1, To: 9, Code: "UNREACHABLE"}))
	assert.NotContains(t, buf.String(), "distance")
}

func TestStats_YAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.YAML)
	require.NoError(t, err)

	s := stats.Summary{
		GraphStats: stats.GraphStats{NodeCount: 3, EdgeCount: 2, TotalWeight: 5},
		Components: 1, LargestComponent: 3,
	}
	require.NoError(t, r.Stats(s))

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, 3, m["node_count"])
	assert.Equal(t, 2, m["edge_count"])
	assert.Equal(t, 1, m["components"])
}

func TestNeighbors(t *testing.T) {
	n := report.NeighborsOf(5, map[int64]int64{9: 1, 2: 7})
	assert.Equal(t, []report.Neighbor{{ID: 2, Weight: 7}, {ID: 9, Weight: 1}}, n.Edges)

	var buf bytes.Buffer
	r, err := report.New(&buf, report.Text)
	require.NoError(t, err)
	require.NoError(t, r.Neighbors(n))
	assert.Contains(t, buf.String(), "weight 7")

	buf.Reset()
	require.NoError(t, r.Neighbors(report.NeighborsOf(5, nil)))
	assert.Contains(t, buf.String(), "(none)")
}

func TestComponents_JSONAndText(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.JSON)
	require.NoError(t, err)
	require.NoError(t, r.Components(nil))
	assert.JSONEq(t, `{"count":0,"components":[]}`, buf.String())

	buf.Reset()
	r, err = report.New(&buf, report.Text)
	require.NoError(t, err)
	require.NoError(t, r.Components([][]int64{{1, 2}, {7}}))
	assert.Contains(t, buf.String(), "2 connected component(s)")
	assert.Contains(t, buf.String(), "2 node(s): 1 -> 2")
}

func TestLoad_Text(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.Text)
	require.NoError(t, err)
	require.NoError(t, r.Load(loader.Summary{Lines: 4, Edges: 3, Bytes: 40}))
	assert.Contains(t, buf.String(), "Load")
	assert.Equal(t, report.Text, r.Format())
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(&buf, report.JSON)
	require.NoError(t, err)
	require.NoError(t, r.Version("1.2.3"))
	assert.JSONEq(t, `{"version":"1.2.3"}`, buf.String())
}
