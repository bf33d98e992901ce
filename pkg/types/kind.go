package types

import (
	"strings"

	"launchpad/internal/errors"
)

// ShellKind names one of the interchangeable front ends
type ShellKind int

const (
	// TextShell is the numbered-menu loop on stdin/stdout
	TextShell ShellKind = iota
	// WindowShell is a single top-level window with a close prompt
	WindowShell
	// ImmediateShell is the frame-driven terminal interface
	ImmediateShell
	// ToolkitShell is a toolkit frame with menus and a status bar
	ToolkitShell
)

// DefaultShell is chosen when nothing else asks for a specific kind
const DefaultShell = TextShell

var kindNames = map[ShellKind]string{
	TextShell:      "text",
	WindowShell:    "window",
	ImmediateShell: "imgui",
	ToolkitShell:   "toolkit",
}

var kindDescriptions = map[ShellKind]string{
	TextShell:      "numbered menu on standard input/output",
	WindowShell:    "single window, asks before closing",
	ImmediateShell: "frame-driven terminal interface with a demo panel",
	ToolkitShell:   "window with menu bar and status bar",
}

var kindAliases = map[string]ShellKind{
	"text":      TextShell,
	"cli":       TextShell,
	"window":    WindowShell,
	"gui":       WindowShell,
	"imgui":     ImmediateShell,
	"immediate": ImmediateShell,
	"toolkit":   ToolkitShell,
	"wx":        ToolkitShell,
}

// String returns the canonical name of the kind
func (k ShellKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Description returns a one-line summary of the kind
func (k ShellKind) Description() string {
	return kindDescriptions[k]
}

// Valid reports whether k is one of the defined kinds
func (k ShellKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseShellKind resolves a name or alias, ignoring case and surrounding space.
func ParseShellKind(name string) (ShellKind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return DefaultShell, errors.NewKind(errors.UnknownShell,
		"unknown shell %q (want one of %s)", name, strings.Join(ShellKindNames(), ", "))
}

// ShellKinds returns every kind in declaration order
func ShellKinds() []ShellKind {
	return []ShellKind{TextShell, WindowShell, ImmediateShell, ToolkitShell}
}

// ShellKindNames returns the canonical names in declaration order
func ShellKindNames() []string {
	kinds := ShellKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
