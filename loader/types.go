// Package loader defines the sink contract, options and errors for line-
// oriented edge ingestion.
package loader

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathlab/logging"
	"github.com/katalvlaran/pathlab/telemetry"
)

// DefaultProgressEvery is the line interval between progress reports.
const DefaultProgressEvery = 1000

// Sentinel errors for malformed input. Both reach callers inside *ParseError.
var (
	// ErrTooFewFields indicates a non-empty line with fewer than three fields.
	ErrTooFewFields = errors.New("loader: need at least 3 fields")

	// ErrBadNumber indicates a field that is not a base-10 int64.
	ErrBadNumber = errors.New("loader: cannot parse number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// Sink receives one edge per parsed line. core.Graph and network.Network
// both satisfy it.
type Sink interface {
	AddEdge(idA, idB, weight int64) error
}

// ParseError reports the 1-based line at which ingestion stopped. Err is
// ErrTooFewFields, ErrBadNumber (wrapped) or the error returned by the Sink.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Summary describes a finished (or aborted) ingestion.
type Summary struct {
	Lines int   `json:"lines" yaml:"lines"` // lines read, blank ones included
	Edges int   `json:"edges" yaml:"edges"` // edges accepted by the sink
	Bytes int64 `json:"bytes" yaml:"bytes"` // bytes consumed, one per line terminator
}

// Options configures an ingestion.
type Options struct {
	ProgressEvery int
	OnProgress    func(fraction float64, lines int)
	Logger        *slog.Logger
	Tracer        trace.Tracer

	// total is the expected input size for fraction computation; 0 disables it.
	total int64
	err   error
}

// Option represents a functional option for configuring the loader.
type Option func(*Options)

// DefaultOptions reports every DefaultProgressEvery lines to nobody.
func DefaultOptions() Options {
	return Options{
		ProgressEvery: DefaultProgressEvery,
		OnProgress:    func(float64, int) {},
		Logger:        logging.Discard(),
		Tracer:        telemetry.Tracer("loader"),
	}
}

// WithProgressEvery sets the progress interval in lines. n <= 0 is an
// ErrOptionViolation.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: progress interval must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithOnProgress registers fn. It receives the consumed fraction of the input
// (0 when the size is unknown) and the current line number, and once more
// with 1.0 after a successful run.
func WithOnProgress(fn func(fraction float64, lines int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logging.OrDiscard(l)
	}
}

// WithTracer overrides the tracer used for the load span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithSize declares the input size in bytes so that progress fractions can be
// computed for Load. LoadFile sets it from the file.
func WithSize(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.total = n
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
