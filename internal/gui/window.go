//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"image/color"
	"io"

	"launchpad/internal/config"
	"launchpad/internal/log"
	"launchpad/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// confirmFunc asks a yes/no question on parent and reports the answer
type confirmFunc func(title, message string, callback func(bool), parent fyne.Window)

// WindowShell opens one window cleared to the configured color and asks
// before letting the user close it.
type WindowShell struct {
	base

	confirm    confirmFunc
	background *canvas.Rectangle
	greeting   *canvas.Text
}

// NewWindow creates the window shell. Nothing is opened until Run.
func NewWindow(cfg *config.Config, errOut io.Writer) *WindowShell {
	s := &WindowShell{confirm: dialog.ShowConfirm}
	s.setup(WindowName, cfg, errOut)
	return s
}

// Run shows the window and blocks until it is closed
func (s *WindowShell) Run(ctx context.Context) error {
	return s.run(ctx, s.build)
}

func (s *WindowShell) build(a fyne.App) fyne.Window {
	wc := s.cfg.Window
	w := a.NewWindow(wc.Title)
	w.Resize(fyne.NewSize(float32(wc.Width), float32(wc.Height)))

	s.background = canvas.NewRectangle(wc.ClearColor.NRGBA())
	s.greeting = canvas.NewText("Hello from launchpad!", textColorOn(wc.ClearColor))
	s.greeting.Alignment = fyne.TextAlignCenter
	s.greeting.TextSize = 24

	w.SetContent(container.NewStack(s.background, container.NewCenter(s.greeting)))
	w.SetCloseIntercept(s.requestClose)

	w.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		if ke.Name == fyne.KeyEscape {
			s.requestClose()
		}
	})
	return w
}

// requestClose runs when the user tries to close the window. Declining
// the prompt leaves the window open and the shell running.
func (s *WindowShell) requestClose() {
	if !s.cfg.Window.ConfirmClose {
		s.quit()
		return
	}
	s.confirm("Quit", "Really quit?", func(ok bool) {
		if !ok {
			log.Debug("window shell: close cancelled")
			return
		}
		s.quit()
	}, s.Window())
}

// ClearColor returns the color the window is filled with
func (s *WindowShell) ClearColor() color.Color {
	if s.background == nil {
		return s.cfg.Window.ClearColor.NRGBA()
	}
	return s.background.FillColor
}

// textColorOn picks black or white, whichever reads better on bg
func textColorOn(bg types.Color) color.Color {
	// Rec. 601 luma
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return color.Black
	}
	return color.White
}
