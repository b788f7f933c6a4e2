// Package dijkstra defines the engine state, result codes, observer contract
// and configuration options for memoized single-source shortest paths over a
// core.Graph.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if New receives a nil *core.Graph.
//	– ErrEmptyGraph   if Calculate runs on a graph with no nodes.
//	– ErrUnknownNode  if the source identifier is not registered
//	                  (returned as *UnknownNodeError).
//
// Non-error outcomes of Distance are reported through ResultCode.
package dijkstra

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a computation requested on a graph with zero nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrUnknownNode indicates an identifier that was never registered.
	ErrUnknownNode = errors.New("dijkstra: unknown node")
)

// UnknownNodeError carries the identifier that failed to resolve.
type UnknownNodeError struct {
	ID int64
}

// Error implements error.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownNode.Error(), e.ID)
}

// Is lets errors.Is(err, ErrUnknownNode) match.
func (e *UnknownNodeError) Is(target error) bool { return target == ErrUnknownNode }

// CacheState tags the engine's memoized computation.
type CacheState int

const (
	// StateUninitialized means no computation is cached; the next query recomputes.
	StateUninitialized CacheState = iota

	// StateValid means per-node distances and parents hold for the cached source.
	StateValid
)

// String returns a short label for logs.
func (s CacheState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateValid:
		return "valid"
	default:
		return fmt.Sprintf("CacheState(%d)", int(s))
	}
}

// ResultCode classifies the outcome of Distance.
type ResultCode int

const (
	// Found: a path from source to target was reconstructed.
	Found ResultCode = iota
	// FoundTrivial: source and target are the same node.
	FoundTrivial
	// Unreachable: both nodes exist but no path connects them. Not an error.
	Unreachable
	// NodeNotFound: source or target is not registered.
	NodeNotFound
	// InternalError: backtracking did not reach the source. Indicates a bug.
	InternalError
)

// String returns the canonical upper-case name of the code.
func (c ResultCode) String() string {
	switch c {
	case Found:
		return "FOUND"
	case FoundTrivial:
		return "FOUND_TRIVIAL"
	case Unreachable:
		return "UNREACHABLE"
	case NodeNotFound:
		return "NODE_NOT_FOUND"
	case InternalError:
		return "INTERNAL_ERROR"
	default:
		return fmt.Sprintf("ResultCode(%d)", int(c))
	}
}

// OK reports whether the code carries a usable path.
func (c ResultCode) OK() bool { return c == Found || c == FoundTrivial }

// Result is the outcome of Distance.
//
// Distance is core.Unreachable unless Code is Found or FoundTrivial.
// Path lists identifiers from source to target inclusive and is empty unless
// Code.OK(). Recomputed reports whether the query ran a fresh calculation.
type Result struct {
	Code       ResultCode
	Distance   int64
	Path       []int64
	Recomputed bool
}

// Observer receives one notification per visitation step.
//
// Visit is called synchronously on the calculating goroutine with the arena
// index, the distance at that step and whether this is the final call of the
// run. Observers must not mutate the graph.
type Observer interface {
	Visit(index int, distance int64, final bool)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(index int, distance int64, final bool)

// Visit implements Observer.
func (f ObserverFunc) Visit(index int, distance int64, final bool) { f(index, distance, final) }

// NopObserver ignores every notification. It is the default.
type NopObserver struct{}

// Visit implements Observer.
func (NopObserver) Visit(int, int64, bool) {}

// Options configures the engine. Engine-wide defaults are given to New and
// may be overridden per call.
type Options struct {
	Observer Observer // receives visitation steps; never nil after option application
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithObserver installs o as the visitation observer. A nil o restores NopObserver.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o == nil {
			opts.Observer = NopObserver{}
			return
		}
		opts.Observer = o
	}
}

// DefaultOptions returns Options with a NopObserver.
func DefaultOptions() Options {
	return Options{Observer: NopObserver{}}
}
