// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// errors.go - sentinel errors. Constructors wrap them with a method tag and
// the offending values; branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil sink or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option value that cannot be honored.
var ErrOptionViolation = errors.New("builder: invalid option value")
