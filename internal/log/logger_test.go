package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"launchpad/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapLogger installs a buffer-backed package logger for the duration of a test
func swapLogger(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := current()
	Configure(append([]Option{WithOutput(&buf)}, opts...)...)
	t.Cleanup(func() {
		mu.Lock()
		logger = original
		isDebug = false
		mu.Unlock()
	})
	return &buf
}

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "msg=formatted message")
}

func TestTextLineShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("shell", "text")).Info("started")
	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "time="), line)
	assert.NotContains(t, line, "\x1b[", "colors are disabled")
	assert.True(t, strings.HasSuffix(line, "level=info msg=started shell=text"), line)
}

func TestLevelOption(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel("warn"))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warnf("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}

func TestDebugLogging(t *testing.T) {
	buf := swapLogger(t)

	SetDebug(false)
	Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
	buf.Reset()

	SetDebug(false)
	Debugf("gone again")
	assert.Empty(t, buf.String())
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1 key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "chained fields")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	// Child loggers do not leak fields into the parent
	l.Info("plain")
	assert.NotContains(t, buf.String(), "key1")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.Info("json message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "info", logEntry["level"])
	assert.Equal(t, "json message", logEntry["message"])
	assert.Contains(t, logEntry, "timestamp")
	buf.Reset()

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "value1", logEntry["key1"])
	assert.Equal(t, float64(123), logEntry["key2"])
}

func TestErrorLogging(t *testing.T) {
	buf := swapLogger(t)

	stdErr := fmt.Errorf("standard error")
	LogWithFields(F("error", stdErr.Error())).Error("error occurred")
	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "standard error")
	buf.Reset()

	appErr := errors.New("application error")
	LogWithError(appErr).Error("app error occurred")
	output = buf.String()
	assert.Contains(t, output, "app error occurred")
	assert.Contains(t, output, "application error")
	assert.Contains(t, output, "error_kind=0")
	buf.Reset()

	shellErr := errors.ForShell(errors.ErrNoDisplay, "window")
	LogWithError(shellErr).Error("shell failed")
	output = buf.String()
	assert.Contains(t, output, "window shell: no display available")
	assert.Contains(t, output, "shell=window")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", int(errors.ShellInitFailed)))
	buf.Reset()

	configErr := errors.NewConfigError("config error", "imgui.fps", errors.InvalidConfig, nil)
	LogWithError(configErr).Error("config error occurred")
	output = buf.String()
	assert.Contains(t, output, "config error: imgui.fps")
	assert.Contains(t, output, "param=imgui.fps")
	buf.Reset()

	inputErr := errors.NewInputError("not a number", "abc", nil)
	LogError(inputErr, "convenient error log")
	output = buf.String()
	assert.Contains(t, output, "convenient error log")
	assert.Contains(t, output, "token=abc")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.log")
	buf := swapLogger(t, WithFile(path))
	defer Close()

	Info("file test message")

	assert.Contains(t, buf.String(), "file test message")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestConfigureClosesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.log")
	swapLogger(t, WithFile(path))
	first := current().file
	require.NotNil(t, first)

	Configure(WithOutput(&bytes.Buffer{}))
	assert.Nil(t, current().file)
	assert.Error(t, first.Close(), "the old handle is already closed")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.WithContext(context.Background()).Info("context message")
	assert.Contains(t, buf.String(), "context message")
	buf.Reset()

	l.WithContext(nil).Info("nil context")
	assert.Contains(t, buf.String(), "nil context")
}

func TestConfigure(t *testing.T) {
	buf := swapLogger(t, WithJSON())

	Info("global config test")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "global config test", logEntry["message"])
}

func TestNilErrorHandling(t *testing.T) {
	buf := swapLogger(t)

	LogWithError(nil).Error("nil error test")
	output := buf.String()
	assert.Contains(t, output, "nil error test")
	assert.Contains(t, output, "error=<nil>")
}
