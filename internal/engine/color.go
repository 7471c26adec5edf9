package engine

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParseHexColor parses "#rrggbb" (the leading '#' is optional) into an opaque color.
func ParseHexColor(s string) (rl.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return rl.Color{}, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
}

// MustParseHexColor is like ParseHexColor but panics on bad input.
// Meant for package level color constants.
func MustParseHexColor(s string) rl.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor formats c as "#rrggbb". Alpha is dropped.
func HexColor(c rl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
