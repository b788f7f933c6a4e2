// Package loader ingests edges from line-oriented text into a Sink.
//
// Format: one edge per non-empty line, "idA idB weight". Lines are trimmed.
// The field delimiter is chosen per line by priority: tab, comma, semicolon,
// then runs of spaces. Empty fields are dropped, fields are trimmed, and
// anything after the third field is ignored.
//
// Ingestion stops at the first bad line or rejected edge. Edges applied
// before that line stay applied.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxLineBytes = 1 << 20

// ParseLine splits one line into (idA, idB, weight).
// Errors are ErrTooFewFields or a wrapped ErrBadNumber.
func ParseLine(line string) (int64, int64, int64, error) {
	fields := splitFields(strings.TrimSpace(line))
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("%w: got %d", ErrTooFewFields, len(fields))
	}
	var out [3]int64
	for i := range out {
		v, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: field %d %q", ErrBadNumber, i+1, fields[i])
		}
		out[i] = v
	}

	return out[0], out[1], out[2], nil
}

// splitFields applies the delimiter priority and drops empty parts.
func splitFields(line string) []string {
	var parts []string
	switch {
	case strings.Contains(line, "\t"):
		parts = strings.Split(line, "\t")
	case strings.Contains(line, ","):
		parts = strings.Split(line, ",")
	case strings.Contains(line, ";"):
		parts = strings.Split(line, ";")
	default:
		return strings.Fields(line)
	}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Load reads r to the end, feeding each edge to sink.
//
// The context is checked once per line; cancellation returns ctx.Err() with
// the Summary so far. Progress is reported every ProgressEvery lines and
// once with 1.0 on success.
func Load(ctx context.Context, r io.Reader, sink Sink, opts ...Option) (Summary, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Summary{}, err
	}

	ctx, span := o.Tracer.Start(ctx, "loader.Load", trace.WithAttributes(
		attribute.Int64("loader.size", o.total),
	))
	defer span.End()

	started := time.Now()
	sum, err := run(ctx, r, sink, o)
	span.SetAttributes(
		attribute.Int("loader.lines", sum.Lines),
		attribute.Int("loader.edges", sum.Edges),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingestion aborted")
		o.Logger.Warn("load aborted", "lines", sum.Lines, "edges", sum.Edges, "err", err)

		return sum, err
	}
	o.Logger.Info("load complete", "lines", sum.Lines, "edges", sum.Edges,
		"bytes", sum.Bytes, "elapsed", time.Since(started))

	return sum, nil
}

// LoadFile opens path and loads it, using the file size for progress.
func LoadFile(ctx context.Context, path string, sink Sink, opts ...Option) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		opts = append([]Option{WithSize(st.Size())}, opts...)
	}

	return Load(ctx, f, sink, opts...)
}

func run(ctx context.Context, r io.Reader, sink Sink, o Options) (Summary, error) {
	var sum Summary
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lastReport := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := sc.Text()
		sum.Lines++
		sum.Bytes += int64(len(raw)) + 1

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		a, b, w, err := ParseLine(line)
		if err != nil {
			return sum, &ParseError{Line: sum.Lines, Text: line, Err: err}
		}
		if err := sink.AddEdge(a, b, w); err != nil {
			return sum, &ParseError{Line: sum.Lines, Text: line, Err: err}
		}
		sum.Edges++

		if sum.Lines-lastReport >= o.ProgressEvery {
			lastReport = sum.Lines
			o.OnProgress(fraction(sum.Bytes, o.total), sum.Lines)
			o.Logger.Debug("load progress", "lines", sum.Lines, "edges", sum.Edges)
		}
	}
	if err := sc.Err(); err != nil {
		return sum, fmt.Errorf("loader: read: %w", err)
	}
	o.OnProgress(1.0, sum.Lines)

	return sum, nil
}

func fraction(done, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return min(float64(done)/float64(total), 1.0)
}
