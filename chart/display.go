// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"runtime"
)

// Displayer presents a rendered chart to the user.
type Displayer interface {
	Display(title string, img image.Image) error
}

// DisplayFunc adapts a function to Displayer.
type DisplayFunc func(title string, img image.Image) error

// Display implements Displayer.
func (f DisplayFunc) Display(title string, img image.Image) error {
	return f(title, img)
}

// SystemViewer writes the chart to a temporary PNG and opens it with the
// platform's default image viewer (open, xdg-open or the Windows URL
// handler). It does not wait for the viewer to exit.
//
// The temporary file, named benchplot-*.png, is left in TempDir after
// Display returns: the viewer may still be loading it, and launchers such as
// xdg-open exit before it does. Point TempDir at a directory you clean up to
// collect them.
type SystemViewer struct {
	// TempDir holds the temporary files; "" means os.TempDir().
	TempDir string
}

// Display implements Displayer.
func (v SystemViewer) Display(title string, img image.Image) error {
	f, err := os.CreateTemp(v.TempDir, "benchplot-*.png")
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = startViewer(f.Name()); err != nil {
		return fmt.Errorf("open %q (%s): %w", f.Name(), title, err)
	}

	return nil
}

// startViewer launches the platform viewer on path without waiting for it.
var startViewer = func(path string) error {
	return openCommand(path).Start()
}

func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
