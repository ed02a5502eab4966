// SPDX-License-Identifier: MIT
// Package: benchplot/chart
//
// errors.go: sentinel errors for the chart package.
//
// ErrWrite is the I/O class: the underlying *fs.PathError (or encoder
// error) is wrapped alongside it, so both errors.Is(err, ErrWrite) and
// errors.Is(err, fs.ErrNotExist) work.

package chart

import "errors"

var (
	// ErrNilTable indicates Build/Render received a nil table.
	ErrNilTable = errors.New("chart: nil table")

	// ErrEmptyTitle indicates Save was requested without a title to name the file.
	ErrEmptyTitle = errors.New("chart: empty title")

	// ErrWrite indicates the chart image could not be written to disk.
	ErrWrite = errors.New("chart: write failed")

	// ErrDisplay indicates the chart could not be shown.
	ErrDisplay = errors.New("chart: display failed")
)
