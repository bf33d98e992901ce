package tui

import (
	"fmt"
	"strings"
	"time"

	"launchpad/internal/config"
	"launchpad/internal/log"
	"launchpad/internal/watch"
	"launchpad/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sliderStep   = 0.05
	channelStep  = 5
	frameHistory = 120
)

var channelNames = [4]string{"R", "G", "B", "A"}

// Model is the frame-driven interface. All display state lives here and
// is only touched from Update.
type Model struct {
	// Display state
	showDemo    bool
	showAnother bool
	slider      float64
	counter     int
	clear       types.Color
	channel     int

	// Frame timing
	frameInterval time.Duration
	lastFrame     time.Time
	frameTimes    []time.Duration
	frames        int

	// Layout
	width  int
	height int

	keys   KeyMap
	help   help.Model
	bar    progress.Model
	styles Styles
	status *StatusBar

	// Optional config reload source
	watcher *watch.Watcher
}

// NewModel creates the model from configuration
func NewModel(cfg *config.Config) *Model {
	h := help.New()
	styles := NewStyles(cfg.Theme)
	bar := progress.New(
		progress.WithSolidFill(cfg.Theme.Primary),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)

	return &Model{
		showDemo:      cfg.Imgui.ShowDemo,
		showAnother:   cfg.Imgui.ShowAnother,
		clear:         cfg.Imgui.ClearColor,
		frameInterval: time.Second / time.Duration(cfg.Imgui.FPS),
		frameTimes:    make([]time.Duration, 0, frameHistory),
		keys:          DefaultKeyMap(),
		help:          h,
		bar:           bar,
		styles:        styles,
		status:        NewStatusBar(styles.Status),
	}
}

// WithWatcher makes the model reload its clear color from watcher events
func (m *Model) WithWatcher(w *watch.Watcher) *Model {
	m.watcher = w
	if files := w.Files(); len(files) > 0 {
		m.status.SetText("Watching " + files[0])
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.nextFrame(),
		m.waitForReload(),
		m.status.SetActive(m.watcher != nil),
	)
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForReload blocks on the watcher and turns the next change into a message
func (m *Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		for mod := range w.FileChannel() {
			if truncated(mod) {
				log.LogWithFields(log.F("file", mod.Path)).Debug("imgui shell: skipping reload of empty file")
				continue
			}
			cfg, err := config.LoadConfigFile(mod.Path)
			if err != nil {
				return reloadErrMsg{Err: err}
			}
			return clearColorMsg{Color: cfg.Imgui.ClearColor}
		}
		return nil
	}
}

// truncated reports a file caught between an editor's truncate and its
// write. Loading it would reset every setting to its default.
func truncated(mod watch.FileModification) bool {
	return mod.Info != nil && mod.Info.Size() == 0
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.recordFrame(time.Time(msg))
		return m, m.nextFrame()

	case spinner.TickMsg:
		return m, m.status.Update(msg)

	case clearColorMsg:
		m.clear = msg.Color
		m.status.SetText("Clear color reloaded: " + msg.Color.Hex())
		log.Infof("imgui shell: clear color reloaded: %s", msg.Color.Hex())
		return m, m.waitForReload()

	case reloadErrMsg:
		m.status.SetText("Reload failed: " + msg.Err.Error())
		log.LogWithError(msg.Err).Warn("imgui shell: config reload failed")
		return m, m.waitForReload()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleDemo):
		m.showDemo = !m.showDemo
	case key.Matches(msg, m.keys.ToggleAnother):
		m.showAnother = !m.showAnother
	case key.Matches(msg, m.keys.CloseAnother):
		m.showAnother = false
	case key.Matches(msg, m.keys.SliderDown):
		m.setSlider(m.slider - sliderStep)
	case key.Matches(msg, m.keys.SliderUp):
		m.setSlider(m.slider + sliderStep)
	case key.Matches(msg, m.keys.NextChannel):
		m.channel = (m.channel + 1) % len(channelNames)
	case key.Matches(msg, m.keys.ChannelUp):
		m.clear = m.clear.Adjust(m.channel, channelStep)
	case key.Matches(msg, m.keys.ChannelDown):
		m.clear = m.clear.Adjust(m.channel, -channelStep)
	case key.Matches(msg, m.keys.Click):
		m.counter++
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) setSlider(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	// Keep the value on the step grid so repeated presses do not drift
	m.slider = float64(int(v/sliderStep+0.5)) * sliderStep
}

func (m *Model) recordFrame(t time.Time) {
	if !m.lastFrame.IsZero() {
		if len(m.frameTimes) == frameHistory {
			m.frameTimes = m.frameTimes[1:]
		}
		m.frameTimes = append(m.frameTimes, t.Sub(m.lastFrame))
	}
	m.lastFrame = t
	m.frames++
}

// FrameStats returns the average frame time and the matching rate.
// Both are zero until two frames have been seen.
func (m *Model) FrameStats() (msPerFrame, fps float64) {
	if len(m.frameTimes) == 0 {
		return 0, 0
	}
	var total time.Duration
	for _, d := range m.frameTimes {
		total += d
	}
	avg := total / time.Duration(len(m.frameTimes))
	if avg <= 0 {
		return 0, 0
	}
	return float64(avg) / float64(time.Millisecond), float64(time.Second) / float64(avg)
}

// Accessors used by tests and the shell

func (m *Model) ShowDemo() bool          { return m.showDemo }
func (m *Model) ShowAnother() bool       { return m.showAnother }
func (m *Model) Slider() float64         { return m.slider }
func (m *Model) Counter() int            { return m.counter }
func (m *Model) ClearColor() types.Color { return m.clear }
func (m *Model) Channel() int            { return m.channel }
func (m *Model) Frames() int             { return m.frames }
func (m *Model) Status() string          { return m.status.Text() }

// View implements tea.Model. Each frame is painted with the clear color
// first and the panels are laid over it.
func (m *Model) View() string {
	panels := []string{m.mainPanel()}
	if m.showAnother {
		panels = append(panels, m.anotherPanel())
	}
	if m.showDemo {
		panels = append(panels, m.demoPanel())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	footer := m.help.View(m.keys)
	if bar := m.status.View(); bar != "" {
		footer = bar + "\n" + footer
	}
	frame := lipgloss.JoinVertical(lipgloss.Left, body, footer)

	background := lipgloss.NewStyle().Background(lipgloss.Color(m.clear.RGBHex()))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, frame,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.clear.RGBHex())))
	}
	return background.Render(frame)
}

func (m *Model) mainPanel() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Hello, world!"))
	b.WriteString("\n")
	b.WriteString("This is some useful text.\n")
	b.WriteString(m.checkbox("Demo Window", m.showDemo) + "\n")
	b.WriteString(m.checkbox("Another Window", m.showAnother) + "\n")
	fmt.Fprintf(&b, "float %s %.3f\n", m.bar.ViewAs(m.slider), m.slider)
	b.WriteString("clear color " + m.colorEditor() + "\n")
	fmt.Fprintf(&b, "%s counter = %d\n", m.styles.Button.Render("[Button]"), m.counter)

	ms, fps := m.FrameStats()
	fmt.Fprintf(&b, "Application average %.3f ms/frame (%.1f FPS)", ms, fps)
	return m.styles.Panel.Render(b.String())
}

func (m *Model) anotherPanel() string {
	body := m.styles.Title.Render("Another Window") + "\n" +
		"Hello from another window!\n" +
		m.styles.Button.Render("[c] Close Me")
	return m.styles.Panel.Render(body)
}

func (m *Model) demoPanel() string {
	h := m.help
	h.ShowAll = true
	body := m.styles.Title.Render("Demo Window") + "\n" + h.View(m.keys)
	return m.styles.Panel.Render(body)
}

func (m *Model) checkbox(label string, on bool) string {
	if on {
		return m.styles.Checked.Render("[x]") + " " + label
	}
	return "[ ] " + label
}

func (m *Model) colorEditor() string {
	values := [4]uint8{m.clear.R, m.clear.G, m.clear.B, m.clear.A}
	parts := make([]string, len(values))
	for i, v := range values {
		part := fmt.Sprintf("%s:%3d", channelNames[i], v)
		if i == m.channel {
			part = m.styles.Selected.Render(part)
		}
		parts[i] = part
	}
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(m.clear.RGBHex())).Render("    ")
	return strings.Join(parts, " ") + " " + swatch
}
