// Package tui implements the immediate-mode shell: the whole frame is
// rebuilt from the model on every tick and drawn to the terminal.
package tui

import (
	"context"
	"fmt"
	"io"

	"launchpad/internal/config"
	"launchpad/internal/errors"
	"launchpad/internal/log"
	"launchpad/internal/watch"
	"launchpad/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Name is the shell name used in logs and errors
const Name = "imgui"

type fder interface {
	Fd() uintptr
}

// Shell runs the frame loop on a terminal
type Shell struct {
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	notify *lipgloss.Renderer
	lc     types.Lifecycle
	model  *Model

	// isTerminal reports whether both streams are attached to a terminal
	isTerminal func(in io.Reader, out io.Writer) bool
}

// New creates the immediate-mode shell
func New(cfg *config.Config, in io.Reader, out, errOut io.Writer) *Shell {
	return &Shell{
		cfg:        cfg,
		in:         in,
		out:        out,
		errOut:     errOut,
		notify:     lipgloss.NewRenderer(errOut),
		isTerminal: attachedToTerminal,
	}
}

func attachedToTerminal(in io.Reader, out io.Writer) bool {
	fi, ok := in.(fder)
	if !ok || !term.IsTerminal(int(fi.Fd())) {
		return false
	}
	fo, ok := out.(fder)
	return ok && term.IsTerminal(int(fo.Fd()))
}

// Name returns the shell name
func (s *Shell) Name() string { return Name }

// State returns the lifecycle state
func (s *Shell) State() types.State { return s.lc.State() }

// Model returns the model of the last run, or nil before Run
func (s *Shell) Model() *Model { return s.model }

// Run draws frames until the user quits or ctx is cancelled
func (s *Shell) Run(ctx context.Context) error {
	if !s.lc.Start() {
		return errors.ForShell(errors.ErrAlreadyRun, Name)
	}
	defer s.lc.Stop()

	if !s.isTerminal(s.in, s.out) {
		return errors.ForShell(errors.ErrNoTerminal, Name)
	}

	s.model = NewModel(s.cfg)
	if w := s.startWatcher(); w != nil {
		defer w.Stop()
		s.model.WithWatcher(w)
	}

	p := tea.NewProgram(s.model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)

	log.LogWithFields(log.F("shell", Name), log.F("fps", s.cfg.Imgui.FPS)).Debug("Starting frame loop")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			log.Debugf("imgui shell: %v", ctx.Err())
			return nil
		}
		return errors.NewShellError("frame loop failed", Name, errors.Unknown, err)
	}
	log.LogWithFields(log.F("shell", Name), log.F("frames", s.model.Frames())).Debug("Frame loop finished")
	return nil
}

// startWatcher watches the loaded config file when reloading is enabled.
// A watcher that cannot start only costs the reload feature.
func (s *Shell) startWatcher() *watch.Watcher {
	if !s.cfg.Imgui.WatchConfig || s.cfg.Path() == "" {
		return nil
	}
	w, err := watch.New()
	if err != nil {
		log.LogWithError(err).Warn("imgui shell: config reload disabled")
		return nil
	}
	if err := w.AddFile(s.cfg.Path()); err != nil {
		w.Stop()
		log.LogWithError(err).Warn("imgui shell: config reload disabled")
		return nil
	}
	if err := w.Start(); err != nil {
		w.Stop()
		log.LogWithError(err).Warn("imgui shell: config reload disabled")
		return nil
	}
	return w
}

// ShowError prints a styled error line once the terminal is released.
// Styles follow errOut's own color support, not stdout's.
func (s *Shell) ShowError(title string, err error) {
	style := s.notify.NewStyle().Bold(true).Foreground(lipgloss.Color(s.cfg.Theme.Error))
	fmt.Fprintf(s.errOut, "%s %v\n", style.Render(title+":"), err)
}

// ShowInfo prints a styled message line
func (s *Shell) ShowInfo(message string) {
	style := s.notify.NewStyle().Foreground(lipgloss.Color(s.cfg.Theme.Info))
	fmt.Fprintln(s.errOut, style.Render(message))
}
