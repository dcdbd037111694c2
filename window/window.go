// Package window is the thin windowing wrapper over GLFW. It exposes the
// minimal surface the engine needs: availability, blank-window creation
// and destruction. GPU rendering lives elsewhere (see the gpu package).
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// IsAvailable reports whether the windowing subsystem is ready for use.
// The current implementation always reports true; it exists as the
// integration point for callers probing the window layer.
func IsAvailable() bool {
	return true
}

// CreateBlankWindow initializes GLFW and opens a window with an OpenGL
// 3.3 core profile context, v-sync enabled, and the given dimensions and
// title. Dimensions must be positive. The returned handle must be
// released with DestroyWindow.
//
// Must be called from the main goroutine (a GLFW requirement).
func CreateBlankWindow(width, height int, title string) (*glfw.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window: invalid dimensions %dx%d", width, height)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create window: %w", err)
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	return win, nil
}

// DestroyWindow releases a window created by CreateBlankWindow and shuts
// GLFW down. Passing nil is a no-op.
func DestroyWindow(win *glfw.Window) {
	if win == nil {
		return
	}

	win.Destroy()
	glfw.Terminate()
}
