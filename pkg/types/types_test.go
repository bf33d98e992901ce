package types

import (
	"image/color"
	"sync"
	"testing"

	"launchpad/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseShellKind(t *testing.T) {
	tests := map[string]ShellKind{
		"text":      TextShell,
		"cli":       TextShell,
		"Window":    WindowShell,
		"gui":       WindowShell,
		" imgui ":   ImmediateShell,
		"IMMEDIATE": ImmediateShell,
		"toolkit":   ToolkitShell,
		"wx":        ToolkitShell,
	}
	for name, want := range tests {
		got, err := ParseShellKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, bad := range []string{"", "curses", "text2"} {
		k, err := ParseShellKind(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.IsUnknownShell(err))
		assert.Equal(t, DefaultShell, k)
	}
}

func TestShellKindNames(t *testing.T) {
	assert.Equal(t, []string{"text", "window", "imgui", "toolkit"}, ShellKindNames())
	for _, k := range ShellKinds() {
		assert.True(t, k.Valid())
		assert.NotEmpty(t, k.Description())
	}
	assert.False(t, ShellKind(7).Valid())
	assert.Equal(t, "unknown", ShellKind(7).String())
	assert.Equal(t, TextShell, DefaultShell)
}

func TestLifecycle(t *testing.T) {
	var lc Lifecycle
	assert.Equal(t, Created, lc.State())

	require.True(t, lc.Start())
	assert.Equal(t, Running, lc.State())
	assert.False(t, lc.Start(), "a running shell cannot start again")

	lc.Stop()
	assert.Equal(t, Terminated, lc.State())
	assert.False(t, lc.Start(), "a terminated shell cannot start again")
	assert.Equal(t, Terminated, lc.State())

	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func TestLifecycleConcurrentStart(t *testing.T) {
	var lc Lifecycle
	var wg sync.WaitGroup
	var mu sync.Mutex
	started := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lc.State()
			if lc.Start() {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, started, "exactly one caller wins the start")
	assert.Equal(t, Running, lc.State())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#738c99")
	require.NoError(t, err)
	assert.Equal(t, DefaultClearColor, c)

	c, err = ParseColor("11223344")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, c)
	assert.Equal(t, "#11223344", c.Hex())
	assert.Equal(t, "#112233", c.RGBHex())
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, c.NRGBA())

	for _, bad := range []string{"", "#fff", "#gggggg", "teal"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorAdjust(t *testing.T) {
	c := Color{R: 250, G: 5, B: 128, A: 255}

	assert.Equal(t, uint8(255), c.Adjust(0, 10).R)
	assert.Equal(t, uint8(0), c.Adjust(1, -10).G)
	assert.Equal(t, uint8(138), c.Adjust(2, 10).B)
	assert.Equal(t, uint8(245), c.Adjust(3, -10).A)

	// Adjust returns a copy
	assert.Equal(t, uint8(250), c.R)

	assert.InDelta(t, 1.0, c.Channel(3), 1e-9)
	assert.InDelta(t, 128.0/255, c.Channel(2), 1e-9)
}

func TestColorYAML(t *testing.T) {
	var doc struct {
		Clear Color `yaml:"clear"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`clear: "#ff000080"`), &doc))
	assert.Equal(t, Color{R: 255, A: 0x80}, doc.Clear)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#ff000080")

	assert.Error(t, yaml.Unmarshal([]byte(`clear: [1, 2]`), &doc))
}
