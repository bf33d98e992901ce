// Package shell picks the one user interface the process runs and hands
// it control until the user quits.
package shell

import (
	"context"
	"io"
	"os"

	"launchpad/internal/cli"
	"launchpad/internal/config"
	"launchpad/internal/errors"
	"launchpad/internal/gui"
	"launchpad/internal/log"
	"launchpad/internal/tui"
	"launchpad/pkg/types"
)

// Kind names a shell implementation
type Kind = types.ShellKind

// Shell is a user interface that can be run to completion once
type Shell interface {
	// Run blocks until the interaction loop ends. It may be called once.
	Run(ctx context.Context) error
	// ShowError reports a failure to the user
	ShowError(title string, err error)
	// ShowInfo shows a message to the user
	ShowInfo(message string)
	// Name returns the shell's canonical kind name
	Name() string
	// State returns the lifecycle state
	State() types.State
}

// Options carries what Select needs to construct a shell
type Options struct {
	Kind   Kind
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.New()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	return o
}

// Select returns a new shell in the Created state. It only constructs;
// windows, terminals and watchers are acquired by Run. Kinds outside the
// known set fall back to the text shell.
func Select(opts Options) Shell {
	opts = opts.withDefaults()

	switch opts.Kind {
	case types.WindowShell:
		return gui.NewWindow(opts.Config, opts.Err)
	case types.ImmediateShell:
		return tui.New(opts.Config, opts.In, opts.Out, opts.Err)
	case types.ToolkitShell:
		return gui.NewToolkit(opts.Config, opts.Err)
	default:
		return cli.New(opts.In, opts.Out)
	}
}

// Execute runs s once on the calling goroutine. A failed run is logged
// and shown to the user, never propagated: the exit status is always 0.
func Execute(ctx context.Context, s Shell) int {
	log.LogWithFields(log.F("shell", s.Name())).Info("Starting shell")

	if err := s.Run(ctx); err != nil {
		log.LogError(err, "Shell failed")
		s.ShowError(title(err), err)
		return 0
	}

	log.LogWithFields(log.F("shell", s.Name())).Info("Shell finished")
	return 0
}

func title(err error) string {
	switch {
	case errors.IsShellInit(err):
		return "Could not start the user interface"
	case errors.KindOf(err) == errors.ShellAlreadyRun:
		return "User interface already ran"
	}
	return "User interface failed"
}

// ParseKind resolves a shell name or alias
func ParseKind(name string) (Kind, error) {
	return types.ParseShellKind(name)
}

// Kinds returns every selectable kind
func Kinds() []Kind {
	return types.ShellKinds()
}

// Resolve applies precedence to the requested kind: an explicit name
// wins, then the configured shell, then the default.
func Resolve(flag string, cfg *config.Config) (Kind, error) {
	if flag != "" {
		return ParseKind(flag)
	}
	if cfg != nil {
		return cfg.ShellKind(), nil
	}
	return types.DefaultShell, nil
}

// Available reports whether kind can start in this build
func Available(kind Kind) bool {
	switch kind {
	case types.WindowShell, types.ToolkitShell:
		return gui.Available()
	}
	return kind.Valid()
}
