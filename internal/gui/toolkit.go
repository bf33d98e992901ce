//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"io"

	"launchpad/internal/config"
	"launchpad/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	helloMessage = "Hello world from launchpad!"
	aboutTitle   = "About Hello World"
	aboutMessage = "This is the launchpad Hello World example"
)

// HelloShortcut triggers File > Hello...
var HelloShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyH, Modifier: fyne.KeyModifierControl}

// ToolkitShell is a classic application frame: a menu bar, a message log
// in the middle and a status bar along the bottom.
type ToolkitShell struct {
	base

	messages binding.StringList
	status   binding.String
}

// NewToolkit creates the toolkit shell. Nothing is opened until Run.
func NewToolkit(cfg *config.Config, errOut io.Writer) *ToolkitShell {
	status := binding.NewString()
	_ = status.Set(cfg.Toolkit.Status)

	s := &ToolkitShell{
		messages: binding.NewStringList(),
		status:   status,
	}
	s.setup(ToolkitName, cfg, errOut)
	return s
}

// Run shows the frame and blocks until it is closed
func (s *ToolkitShell) Run(ctx context.Context) error {
	return s.run(ctx, s.build)
}

func (s *ToolkitShell) build(a fyne.App) fyne.Window {
	tc := s.cfg.Toolkit
	w := a.NewWindow(tc.Title)
	w.Resize(fyne.NewSize(float32(tc.Width), float32(tc.Height)))
	w.SetMainMenu(s.mainMenu())
	w.Canvas().AddShortcut(HelloShortcut, func(fyne.Shortcut) { s.hello() })

	messageLog := widget.NewListWithData(s.messages,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	statusBar := widget.NewLabelWithData(s.status)

	w.SetContent(container.NewBorder(nil, statusBar, nil, nil, messageLog))
	w.SetCloseIntercept(s.quit)
	return w
}

func (s *ToolkitShell) mainMenu() *fyne.MainMenu {
	hello := fyne.NewMenuItem("Hello...", s.hello)
	hello.Shortcut = HelloShortcut

	quit := fyne.NewMenuItem("Quit", s.quit)
	quit.IsQuit = true

	about := fyne.NewMenuItem("About", s.about)

	return fyne.NewMainMenu(
		fyne.NewMenu("File", hello, fyne.NewMenuItemSeparator(), quit),
		fyne.NewMenu("Help", about),
	)
}

// hello logs the greeting and shows it
func (s *ToolkitShell) hello() {
	if err := s.messages.Append(helloMessage); err != nil {
		log.LogWithError(err).Warn("toolkit shell: could not append message")
	}
	log.Debug("toolkit shell: " + helloMessage)
	if w := s.activeWindow(); w != nil {
		dialog.ShowInformation("Hello", helloMessage, w)
	}
}

func (s *ToolkitShell) about() {
	if w := s.activeWindow(); w != nil {
		dialog.ShowInformation(aboutTitle, aboutMessage, w)
	}
}

// SetStatus replaces the status bar text
func (s *ToolkitShell) SetStatus(text string) {
	_ = s.status.Set(text)
}

// Status returns the status bar text
func (s *ToolkitShell) Status() string {
	text, _ := s.status.Get()
	return text
}

// Messages returns the message log, oldest first
func (s *ToolkitShell) Messages() []string {
	msgs, _ := s.messages.Get()
	return msgs
}

// ShowError shows the error and repeats the title in the status bar
func (s *ToolkitShell) ShowError(title string, err error) {
	if err == nil {
		return
	}
	s.SetStatus(title)
	s.base.ShowError(title, err)
}
