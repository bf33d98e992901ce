//go:build nogui
// +build nogui

package gui

import (
	"context"
	"fmt"
	"io"

	"launchpad/internal/config"
	"launchpad/internal/errors"
	"launchpad/pkg/types"
)

// Available reports whether this build carries the windowed shells
func Available() bool {
	return false
}

// stub is a windowed shell in a build without GUI support
type stub struct {
	name   string
	errOut io.Writer
	lc     types.Lifecycle
}

// WindowShell is a stub implementation for builds with GUI disabled
type WindowShell struct{ stub }

// ToolkitShell is a stub implementation for builds with GUI disabled
type ToolkitShell struct{ stub }

// NewWindow returns a window shell that always fails to initialize
func NewWindow(cfg *config.Config, errOut io.Writer) *WindowShell {
	return &WindowShell{stub{name: WindowName, errOut: errOut}}
}

// NewToolkit returns a toolkit shell that always fails to initialize
func NewToolkit(cfg *config.Config, errOut io.Writer) *ToolkitShell {
	return &ToolkitShell{stub{name: ToolkitName, errOut: errOut}}
}

func (s *stub) Name() string       { return s.name }
func (s *stub) State() types.State { return s.lc.State() }

func (s *stub) Run(ctx context.Context) error {
	if !s.lc.Start() {
		return errors.ForShell(errors.ErrAlreadyRun, s.name)
	}
	defer s.lc.Stop()
	return errors.NewShellError("GUI is disabled in this build", s.name, errors.ShellInitFailed, nil)
}

func (s *stub) ShowError(title string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(s.errOut, "%s: %v\n", title, err)
}

func (s *stub) ShowInfo(message string) {
	fmt.Fprintln(s.errOut, message)
}
