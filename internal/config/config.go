package config

import (
	"fmt"
	"os"
	"path/filepath"

	"launchpad/internal/errors"
	"launchpad/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It names the shell to start and the display settings of each shell.
type Config struct {
	Shell  string `yaml:"shell"` // Shell kind or alias; empty means the default
	Window struct {
		Title        string      `yaml:"title"`         // Window title
		Width        int         `yaml:"width"`         // Initial width in pixels
		Height       int         `yaml:"height"`        // Initial height in pixels
		ConfirmClose bool        `yaml:"confirm_close"` // Ask before closing
		ClearColor   types.Color `yaml:"clear_color"`   // Background fill
	} `yaml:"window"`
	Toolkit struct {
		Title  string `yaml:"title"`  // Frame title
		Width  int    `yaml:"width"`  // Initial width in pixels
		Height int    `yaml:"height"` // Initial height in pixels
		Status string `yaml:"status"` // Initial status bar text
	} `yaml:"toolkit"`
	Imgui struct {
		FPS         int         `yaml:"fps"`          // Frame ticks per second
		ShowDemo    bool        `yaml:"show_demo"`    // Demo panel visible at start
		ShowAnother bool        `yaml:"show_another"` // Second panel visible at start
		ClearColor  types.Color `yaml:"clear_color"`  // Frame background
		WatchConfig bool        `yaml:"watch_config"` // Reload clear color when this file changes
	} `yaml:"imgui"`
	Logging struct {
		Level string `yaml:"level"` // debug, info, warn or error
		JSON  bool   `yaml:"json"`  // Use JSON log lines
		File  string `yaml:"file"`  // Also append logs to this file
	} `yaml:"logging"`
	Theme Theme `yaml:"theme"`

	// path is where the configuration was loaded from, if anywhere
	path string
}

// Theme holds the terminal color numbers used by styled output
type Theme struct {
	Name     string `yaml:"name"`     // Theme name (default, dark, light, monochrome)
	Primary  string `yaml:"primary"`  // Primary color for titles
	Success  string `yaml:"success"`  // Success message color
	Warning  string `yaml:"warning"`  // Warning message color
	Error    string `yaml:"error"`    // Error message color
	Info     string `yaml:"info"`     // Informational message color
	Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
	Border   string `yaml:"border"`   // Border color for panels
}

// DefaultPath returns ~/.config/launchpad/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "launchpad", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults so unset fields keep their default values.
	// Theme colors are filled from the named theme afterwards instead.
	cfg.Theme = Theme{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.fillTheme()

	return cfg, nil
}

// Path returns the file the configuration was loaded from, or "" for an
// in-memory configuration.
func (c *Config) Path() string {
	return c.path
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Shell = ""

	cfg.Window.Title = "launchpad"
	cfg.Window.Width = 1280
	cfg.Window.Height = 800
	cfg.Window.ConfirmClose = true
	cfg.Window.ClearColor = types.Color{R: 255, G: 255, B: 255, A: 255}

	cfg.Toolkit.Title = "Hello World"
	cfg.Toolkit.Width = 450
	cfg.Toolkit.Height = 340
	cfg.Toolkit.Status = "Welcome to launchpad!"

	cfg.Imgui.FPS = 30
	cfg.Imgui.ShowDemo = true
	cfg.Imgui.ShowAnother = false
	cfg.Imgui.ClearColor = types.DefaultClearColor
	cfg.Imgui.WatchConfig = false

	cfg.Logging.Level = "warn"

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns a *errors.ConfigError naming the first offending parameter.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Shell != "" {
		if _, err := types.ParseShellKind(c.Shell); err != nil {
			return errors.NewConfigError("invalid value", "shell", errors.InvalidConfig, err)
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window size must be positive", "window", errors.InvalidConfig, nil)
	}
	if c.Toolkit.Width <= 0 || c.Toolkit.Height <= 0 {
		return errors.NewConfigError("toolkit size must be positive", "toolkit", errors.InvalidConfig, nil)
	}

	if c.Imgui.FPS < 1 || c.Imgui.FPS > 240 {
		return errors.NewConfigError("fps must be between 1 and 240", "imgui.fps", errors.InvalidConfig, nil)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError("invalid log level "+c.Logging.Level, "logging.level", errors.InvalidConfig, nil)
	}

	return nil
}

// ShellKind resolves the configured shell, falling back to the default
// for an empty value. Validate has already rejected unknown names.
func (c *Config) ShellKind() types.ShellKind {
	if c.Shell == "" {
		return types.DefaultShell
	}
	k, err := types.ParseShellKind(c.Shell)
	if err != nil {
		return types.DefaultShell
	}
	return k
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"emphasis": "147", // Light Blue
			"border":   "105", // Dark Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"emphasis": "219", // Very Light Pink
			"border":   "135", // Light Purple
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"success":  "252", // White
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"info":     "248", // Grey
			"emphasis": "255", // Bright White
			"border":   "245", // Light Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// fillTheme sets every empty theme color from the named theme.
func (c *Config) fillTheme() {
	if c.Theme.Name == "" {
		c.Theme.Name = "default"
	}
	theme := GetTheme(c.Theme.Name)
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = theme[key]
		}
	}
	fill(&c.Theme.Primary, "primary")
	fill(&c.Theme.Success, "success")
	fill(&c.Theme.Warning, "warning")
	fill(&c.Theme.Error, "error")
	fill(&c.Theme.Info, "info")
	fill(&c.Theme.Emphasis, "emphasis")
	fill(&c.Theme.Border, "border")
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
