// SPDX-License-Identifier: MIT
// Package: benchplot/kernels
//
// errors.go: sentinel errors for the kernels package.

package kernels

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates operands whose shapes do not line up,
// e.g. PairwiseDistance on rows of different width or a coefficient vector
// whose length differs from the channel count.
var ErrDimensionMismatch = errors.New("kernels: dimension mismatch")

// ErrEmptyInput indicates an input with no elements where at least one is
// required (e.g. an image with zero height or width).
var ErrEmptyInput = errors.New("kernels: empty input")

// kernelErrorf attaches the function name and detail to a sentinel.
func kernelErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
