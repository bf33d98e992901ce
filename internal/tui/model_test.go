package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"launchpad/internal/config"
	"launchpad/internal/watch"
	"launchpad/pkg/testutils"
	"launchpad/pkg/types"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModelInitialization(t *testing.T) {
	cfg := config.New()
	m := NewModel(cfg)

	assert.True(t, m.ShowDemo())
	assert.False(t, m.ShowAnother())
	assert.Equal(t, 0.0, m.Slider())
	assert.Equal(t, 0, m.Counter())
	assert.Equal(t, types.DefaultClearColor, m.ClearColor())
	assert.Equal(t, time.Second/30, m.frameInterval)
	assert.NotNil(t, m.Init())
}

func TestModelToggles(t *testing.T) {
	m := NewModel(config.New())

	press(m, runeKey("d"))
	assert.False(t, m.ShowDemo())
	press(m, runeKey("d"))
	assert.True(t, m.ShowDemo())

	press(m, runeKey("a"))
	assert.True(t, m.ShowAnother())
	press(m, runeKey("c"))
	assert.False(t, m.ShowAnother())

	// Closing an already closed panel is a no-op
	press(m, runeKey("c"))
	assert.False(t, m.ShowAnother())
}

func TestModelSliderBounds(t *testing.T) {
	m := NewModel(config.New())

	press(m, runeKey("h"))
	assert.Equal(t, 0.0, m.Slider())

	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.InDelta(t, 0.25, m.Slider(), 1e-9)

	for i := 0; i < 40; i++ {
		press(m, runeKey("l"))
	}
	assert.InDelta(t, 1.0, m.Slider(), 1e-9)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.InDelta(t, 0.95, m.Slider(), 1e-9)
}

func TestModelCounter(t *testing.T) {
	m := NewModel(config.New())
	press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, 3, m.Counter())
	assert.Contains(t, testutils.StripANSI(m.View()), "counter = 3")
}

func TestModelClearColorEditing(t *testing.T) {
	cfg := config.New()
	cfg.Imgui.ClearColor = types.Color{R: 250, G: 0, B: 100, A: 255}
	m := NewModel(cfg)

	press(m, runeKey("+"), runeKey("+"))
	assert.Equal(t, uint8(255), m.ClearColor().R)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Channel())
	press(m, runeKey("-"))
	assert.Equal(t, uint8(0), m.ClearColor().G)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, uint8(105), m.ClearColor().B)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Channel())
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runeKey("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m := NewModel(config.New())
			cmd := press(m, msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModelFrameStats(t *testing.T) {
	m := NewModel(config.New())

	ms, fps := m.FrameStats()
	assert.Zero(t, ms)
	assert.Zero(t, fps)

	start := time.Unix(1000, 0)
	for i := 0; i < 11; i++ {
		cmd := press(m, frameMsg(start.Add(time.Duration(i)*20*time.Millisecond)))
		assert.NotNil(t, cmd, "every frame schedules the next one")
	}

	ms, fps = m.FrameStats()
	assert.InDelta(t, 20.0, ms, 1e-6)
	assert.InDelta(t, 50.0, fps, 1e-6)
	assert.Equal(t, 11, m.Frames())
	assert.Contains(t, testutils.StripANSI(m.View()), "Application average 20.000 ms/frame (50.0 FPS)")
}

func TestModelFrameHistoryIsBounded(t *testing.T) {
	m := NewModel(config.New())
	start := time.Unix(0, 0)
	for i := 0; i < frameHistory*2; i++ {
		press(m, frameMsg(start.Add(time.Duration(i)*time.Millisecond)))
	}
	assert.Len(t, m.frameTimes, frameHistory)
}

func TestModelView(t *testing.T) {
	m := NewModel(config.New())
	press(m, tea.WindowSizeMsg{Width: 160, Height: 50})

	view := testutils.StripANSI(m.View())
	assert.Contains(t, view, "Hello, world!")
	assert.Contains(t, view, "[x] Demo Window")
	assert.Contains(t, view, "[ ] Another Window")
	assert.Contains(t, view, "Demo Window")
	assert.NotContains(t, view, "Hello from another window!")

	press(m, runeKey("a"), runeKey("d"))
	view = testutils.StripANSI(m.View())
	assert.Contains(t, view, "Hello from another window!")
	assert.Contains(t, view, "[ ] Demo Window")
}

func TestModelReloadMessages(t *testing.T) {
	m := NewModel(config.New())

	c := types.Color{R: 1, G: 2, B: 3, A: 4}
	press(m, clearColorMsg{Color: c})
	assert.Equal(t, c, m.ClearColor())
	assert.Contains(t, m.Status(), c.Hex())

	press(m, reloadErrMsg{Err: fmt.Errorf("bad yaml")})
	assert.Equal(t, c, m.ClearColor())
	assert.Contains(t, m.Status(), "bad yaml")
}

func TestModelWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("imgui:\n  clear_color: \"#000000\"\n"), 0644))

	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.AddFile(path))
	require.NoError(t, w.Start())

	m := NewModel(config.New()).WithWatcher(w)
	cmd := m.waitForReload()
	require.NotNil(t, cmd)

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	// Replace the file the way editors save, so no event sees a half-written file
	time.Sleep(100 * time.Millisecond)
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("imgui:\n  clear_color: \"#ff8000\"\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case msg := <-result:
		cc, ok := msg.(clearColorMsg)
		require.True(t, ok, "unexpected message %T", msg)
		assert.Equal(t, types.Color{R: 0xff, G: 0x80, B: 0, A: 0xff}, cc.Color)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestModelWithoutWatcher(t *testing.T) {
	m := NewModel(config.New())
	assert.Nil(t, m.waitForReload())
}

func TestStatusBar(t *testing.T) {
	bar := NewStatusBar(NewStyles(config.New().Theme).Status)
	assert.Empty(t, bar.View())
	assert.Nil(t, bar.Update(spinner.TickMsg{}))

	bar.SetText("ready")
	assert.Equal(t, "ready", testutils.StripANSI(bar.View()))

	cmd := bar.SetActive(true)
	require.NotNil(t, cmd)
	assert.True(t, bar.Active())
	assert.Contains(t, testutils.StripANSI(bar.View()), " ready")

	assert.Nil(t, bar.SetActive(false))
	assert.Equal(t, "ready", testutils.StripANSI(bar.View()))
}

func TestModelWatcherStatus(t *testing.T) {
	path := testutils.WriteConfig(t, "")
	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.AddFile(path))

	m := NewModel(config.New()).WithWatcher(w)
	assert.Contains(t, m.Status(), "Watching ")
	require.NotNil(t, m.Init())
	assert.True(t, m.status.Active())
}

func TestTruncatedFileIsNotReloaded(t *testing.T) {
	empty := testutils.WriteConfig(t, "")
	info, err := os.Stat(empty)
	require.NoError(t, err)
	assert.True(t, truncated(watch.FileModification{Path: empty, Info: info}))

	full := testutils.WriteConfig(t, "imgui:\n  clear_color: \"#102030\"\n")
	info, err = os.Stat(full)
	require.NoError(t, err)
	assert.False(t, truncated(watch.FileModification{Path: full, Info: info}))
	assert.False(t, truncated(watch.FileModification{Path: full}))
}

func TestModelWatchReloadSkipsTruncation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("imgui:\n  clear_color: \"#000000\"\n"), 0644))

	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.AddFile(path))
	require.NoError(t, w.Start())

	m := NewModel(config.New()).WithWatcher(w)
	cmd := m.waitForReload()
	require.NotNil(t, cmd)

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	// Truncate in place first, then save the real content
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Truncate(path, 0))
	time.Sleep(100 * time.Millisecond)
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("imgui:\n  clear_color: \"#ff8000\"\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case msg := <-result:
		cc, ok := msg.(clearColorMsg)
		require.True(t, ok, "unexpected message %T", msg)
		assert.Equal(t, types.Color{R: 0xff, G: 0x80, B: 0, A: 0xff}, cc.Color)
		assert.NotEqual(t, types.DefaultClearColor, cc.Color)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
