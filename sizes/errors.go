// SPDX-License-Identifier: MIT
// Package: benchplot/sizes
//
// errors.go: sentinel errors for the sizes package.
//
// Callers MUST use errors.Is to branch on semantics; context is attached with
// %w by rangeErrorf and never baked into the sentinel text.

package sizes

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates bad sweep bounds: a zero step, an inverted
// interval (min > max) or an ambiguous single endpoint of 0.
var ErrInvalidRange = errors.New("sizes: invalid range")

// ErrNilGenerator indicates that New received a nil data generator.
var ErrNilGenerator = errors.New("sizes: nil data generator")

// rangeErrorf wraps ErrInvalidRange with the constructor name and a reason.
func rangeErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidRange)
}
