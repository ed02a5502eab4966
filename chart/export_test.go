// SPDX-License-Identifier: MIT

package chart

import "image"

// Test-only access to unexported rendering stages.

// Raster exposes the uncropped canvas of r.
func Raster(r *Renderer, ch *Chart) (image.Image, error) { return r.raster(ch) }

// CropToContent exposes cropToContent.
var CropToContent = cropToContent

// StubViewer replaces the viewer launcher for the duration of a test.
func StubViewer(fn func(path string) error) (restore func()) {
	prev := startViewer
	startViewer = fn

	return func() { startViewer = prev }
}
