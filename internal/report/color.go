package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var colorBold = color.New(color.Bold)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ParseHex parses a #rrggbb colour.
func ParseHex(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// RowColor builds a 24-bit colour printer from #rrggbb background and
// foreground values. Unparseable or empty values are left out.
func RowColor(background, foreground string) *color.Color {
	c := color.New()
	if r, g, b, err := ParseHex(background); err == nil {
		c.AddBgRGB(r, g, b)
	}
	if r, g, b, err := ParseHex(foreground); err == nil {
		c.AddRGB(r, g, b)
	}
	return c
}
