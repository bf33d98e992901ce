//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"launchpad/internal/config"
	"launchpad/internal/errors"
	"launchpad/internal/log"
	"launchpad/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appID = "io.github.launchpad"

// Available reports whether this build carries the windowed shells
func Available() bool {
	return true
}

// base holds what both windowed shells share: the fyne app and its one
// window, the lifecycle, and the fallback output used once no window is
// open.
type base struct {
	name   string
	cfg    *config.Config
	errOut io.Writer
	lc     types.Lifecycle

	newApp           func() fyne.App
	displayAvailable func() bool

	mu      sync.Mutex
	app     fyne.App
	window  fyne.Window
	open    bool
	closing bool
}

func (b *base) setup(name string, cfg *config.Config, errOut io.Writer) {
	b.name = name
	b.cfg = cfg
	b.errOut = errOut
	b.newApp = func() fyne.App { return app.NewWithID(appID) }
	b.displayAvailable = haveDisplay
}

// Name returns the shell name
func (b *base) Name() string { return b.name }

// State returns the lifecycle state
func (b *base) State() types.State { return b.lc.State() }

// Window returns the shell's window, or nil before Run
func (b *base) Window() fyne.Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.window
}

// Closed reports whether the window was closed by the shell
func (b *base) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closing
}

// run creates the app and the window built by build, then blocks in the
// fyne event loop until the window closes or ctx is cancelled.
func (b *base) run(ctx context.Context, build func(a fyne.App) fyne.Window) error {
	if !b.lc.Start() {
		return errors.ForShell(errors.ErrAlreadyRun, b.name)
	}
	defer b.lc.Stop()

	if !b.displayAvailable() {
		return errors.ForShell(errors.ErrNoDisplay, b.name)
	}

	a := b.newApp()
	if a == nil {
		return errors.NewShellError("could not create application", b.name, errors.ShellInitFailed, nil)
	}
	w := build(a)
	w.SetMaster()

	b.mu.Lock()
	b.app = a
	b.window = w
	b.open = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.open = false
		b.mu.Unlock()
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			log.Debugf("%s shell: %v", b.name, ctx.Err())
			a.Quit()
		case <-done:
		}
	}()

	log.LogWithFields(log.F("shell", b.name)).Debug("Starting event loop")
	w.Show()
	a.Run()
	log.LogWithFields(log.F("shell", b.name)).Debug("Event loop finished")
	return nil
}

// quit closes the window and stops the event loop
func (b *base) quit() {
	b.mu.Lock()
	a, w := b.app, b.window
	b.closing = true
	b.mu.Unlock()

	if w != nil {
		w.Close()
	}
	if a != nil {
		a.Quit()
	}
}

// activeWindow returns the window while the event loop can still show
// dialogs on it
func (b *base) activeWindow() fyne.Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open || b.closing {
		return nil
	}
	return b.window
}

// ShowError displays an error dialog, or writes to the fallback output
// when no window is open
func (b *base) ShowError(title string, err error) {
	if err == nil {
		return
	}
	if w := b.activeWindow(); w != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), w)
		return
	}
	fmt.Fprintf(b.errOut, "%s: %v\n", title, err)
}

// ShowInfo displays an information dialog, or writes to the fallback
// output when no window is open
func (b *base) ShowInfo(message string) {
	if w := b.activeWindow(); w != nil {
		dialog.ShowInformation("Information", message, w)
		return
	}
	fmt.Fprintln(b.errOut, message)
}
