// Package gui implements the windowed shells on top of fyne: a single
// window that asks before closing, and a toolkit-style frame with menus
// and a status bar. Building with the nogui tag replaces both with stubs
// that fail to initialize.
package gui

import (
	"os"
	"runtime"
)

const (
	// WindowName is the shell name of the single-window shell
	WindowName = "window"
	// ToolkitName is the shell name of the menu/status bar frame
	ToolkitName = "toolkit"
)

// haveDisplay reports whether a windowing system can be reached.
// Only X11 and Wayland platforms are checked; elsewhere the native
// driver always has a desktop.
func haveDisplay() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}
