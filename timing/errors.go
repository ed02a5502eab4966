// SPDX-License-Identifier: MIT
// Package: benchplot/timing
//
// errors.go: sentinel and typed errors for the timing package.
//
// Error policy:
//   - Configuration problems are sentinels, matched with errors.Is.
//   - A failing candidate surfaces as *CandidateError, whose Unwrap returns
//     the candidate's own error untouched.
//   - Nothing here is logged-and-swallowed and nothing is retried.

package timing

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a run that cannot start: empty or nil
// candidate set, nil sequencer, repetitions < 1, duplicate or empty names,
// validator/candidate count mismatch.
var ErrInvalidConfiguration = errors.New("timing: invalid configuration")

// ErrArity indicates that a spread candidate received a different number of
// arguments (or an argument of a different type) than its signature takes.
// It matches ErrInvalidConfiguration as well.
var ErrArity = fmt.Errorf("%w: argument list does not match candidate signature", ErrInvalidConfiguration)

// ErrUnknownColumn indicates a Table lookup by a name that is not a column.
var ErrUnknownColumn = errors.New("timing: unknown column")

// ErrRowWidth indicates an appended row whose width differs from the
// number of candidate columns.
var ErrRowWidth = errors.New("timing: row width mismatch")

// CandidateError reports a candidate that returned an error while being
// timed. The run is aborted and no Table is returned.
type CandidateError struct {
	Name string // candidate name
	Size int    // input size being timed
	Err  error  // the candidate's own error
}

// Error implements error.
func (e *CandidateError) Error() string {
	return fmt.Sprintf("timing: candidate %q failed at size %d: %v", e.Name, e.Size, e.Err)
}

// Unwrap exposes the candidate's error to errors.Is / errors.As.
func (e *CandidateError) Unwrap() error {
	return e.Err
}

// configErrorf wraps ErrInvalidConfiguration with method context.
func configErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}
