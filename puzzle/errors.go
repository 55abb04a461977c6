// SPDX-License-Identifier: MIT
// Package: trafficflow/puzzle
//
// errors.go - sentinel errors for the puzzle package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method prefix + detail).
//   • Graph construction errors from core (negative capacity, empty label)
//     are wrapped, not replaced, so core sentinels still match.
//   • flow.ErrDivergence is returned by Grade wrapped with the method prefix
//     (errors.Is still matches): it is an engine defect, not a grading outcome.

package puzzle

import (
	"errors"
	"fmt"
)

// ErrEmptyTerminal indicates that a round has no source or no sink label.
var ErrEmptyTerminal = errors.New("puzzle: source and sink are required")

// ErrSameTerminals indicates that source and sink name the same junction.
var ErrSameTerminals = errors.New("puzzle: source equals sink")

// ErrNoRoads indicates that a round or topology carries no roads at all.
var ErrNoRoads = errors.New("puzzle: round has no roads")

// ErrNeedRandSource indicates that Generate was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("puzzle: rng is required")

// ErrNilRound indicates that a nil *Round was passed.
var ErrNilRound = errors.New("puzzle: round is nil")

// puzzleErrorf prefixes an error with the method name, keeping %w chains intact.
func puzzleErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
