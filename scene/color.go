package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color in 0xRRGGBB form.
type Color uint32

const (
	White Color = 0xFFFFFF
	Black Color = 0x000000
)

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// Scale returns c with every channel multiplied by f, clamped to [0, 255].
func (c Color) Scale(f float32) Color {
	ch := func(v uint8) Color {
		s := float32(v) * f
		if s < 0 {
			s = 0
		}
		if s > 255 {
			s = 255
		}
		return Color(s)
	}
	rgba := c.RGBA()
	return ch(rgba.R)<<16 | ch(rgba.G)<<8 | ch(rgba.B)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or a plain decimal integer.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("parse color: empty value")
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("parse color %q: out of range", s)
	}
	return Color(v), nil
}
