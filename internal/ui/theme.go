package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"hexbot-palette/internal/colour"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// Accent returns primary brand-colored text
func Accent(format string, a ...interface{}) string {
	return Paint(CLIPalette.Accent, format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return Paint(CLIPalette.AccentDim, format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return Paint(CLIPalette.Muted, format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	c := CLIPalette.AccentBright
	return color.New(color.Bold).AddRGB(int(c.R), int(c.G), int(c.B)).Sprintf(format, a...)
}

// Subtle returns subtle white text
func Subtle(format string, a ...interface{}) string {
	return clrSubtle.Sprintf(format, a...)
}

// Bold returns bold white text
func Bold(format string, a ...interface{}) string {
	return clrBold.Sprintf(format, a...)
}

// Paint renders text in the given truecolor foreground.
func Paint(c colour.Colour, format string, a ...interface{}) string {
	return color.RGB(int(c.R), int(c.G), int(c.B)).Sprintf(format, a...)
}

// OnColour renders text over a truecolor background using the contrast
// text token picked for that background.
func OnColour(bg colour.Colour, contrast colour.Contrast, text string) string {
	fg := color.New(color.Bold).AddBgRGB(int(bg.R), int(bg.G), int(bg.B))
	if contrast.Text == colour.Black {
		fg = fg.AddRGB(0, 0, 0)
	} else {
		fg = fg.AddRGB(255, 255, 255)
	}
	return fg.Sprint(text)
}

// Swatch returns a block of width cells filled with c.
func Swatch(c colour.Colour, width int) string {
	if !IsRich() {
		return "[" + spaces(max(0, width-2)) + "]"
	}
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(spaces(width))
}
