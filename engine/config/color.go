package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a hex color read from YAML. The zero value carries no color; use
// Or to pick a fallback.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: color must be a string")
	}
	nc, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = nc
	return nil
}

// Or returns the parsed color, or fallback when none was set.
func (c *Color) Or(fallback color.NRGBA) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

// ParseColor parses a CSS-style hex color: #rgb, #rgba, #rrggbb, or
// #rrggbbaa. The leading # is optional; alpha defaults to opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 3:
		return color.NRGBA{R: nibble(v >> 8), G: nibble(v >> 4), B: nibble(v), A: 0xff}, nil
	case 4:
		return color.NRGBA{R: nibble(v >> 12), G: nibble(v >> 8), B: nibble(v >> 4), A: nibble(v)}, nil
	case 6:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 8:
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q: want 3, 4, 6, or 8 hex digits", s)
	}
}

// nibble doubles a 4-bit channel into 8 bits, so #abc expands to #aabbcc.
func nibble(v uint64) uint8 {
	n := uint8(v & 0xf)
	return n<<4 | n
}
