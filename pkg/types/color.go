package types

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color, used as the clear color of
// frame-oriented shells. It marshals to YAML as a hex string.
type Color struct {
	R, G, B, A uint8
}

// DefaultClearColor is the teal-ish background the immediate-mode demo starts with.
var DefaultClearColor = Color{R: 115, G: 140, B: 153, A: 255}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBHex returns the color as "#rrggbb", dropping alpha. Terminal
// renderers have no notion of transparency.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the standard library color type used by canvas objects.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Channel returns channel i (0=R, 1=G, 2=B, 3=A) as a float in [0,1].
func (c Color) Channel(i int) float64 {
	switch i {
	case 0:
		return float64(c.R) / 255
	case 1:
		return float64(c.G) / 255
	case 2:
		return float64(c.B) / 255
	default:
		return float64(c.A) / 255
	}
}

// Adjust returns a copy with channel i moved by delta, clamped to [0,255].
func (c Color) Adjust(i int, delta int) Color {
	clamp := func(v uint8) uint8 {
		n := int(v) + delta
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	switch i {
	case 0:
		c.R = clamp(c.R)
	case 1:
		c.G = clamp(c.G)
	case 2:
		c.B = clamp(c.B)
	default:
		c.A = clamp(c.A)
	}
	return c
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the string form.
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
