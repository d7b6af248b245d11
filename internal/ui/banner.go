package ui

import (
	"fmt"
	"os"
	"strings"

	"hexbot-palette/internal/colour"
)

var bannerArt = []string{
	"██████╗  █████╗ ██╗     ███████╗████████╗████████╗███████╗",
	"██╔══██╗██╔══██╗██║     ██╔════╝╚══██╔══╝╚══██╔══╝██╔════╝",
	"██████╔╝███████║██║     █████╗     ██║      ██║   █████╗  ",
	"██╔═══╝ ██╔══██║██║     ██╔══╝     ██║      ██║   ██╔══╝  ",
	"██║     ██║  ██║███████╗███████╗   ██║      ██║   ███████╗",
	"╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝   ╚═╝      ╚═╝   ╚══════╝",
}

var bannerEmitted = false

// FormatBannerArt returns the banner, each row stepped along the hue wheel
// from the brand accent.
func FormatBannerArt() string {
	if !IsRich() {
		return strings.Join(bannerArt, "\n")
	}

	lines := make([]string, len(bannerArt))
	for i, line := range bannerArt {
		row := colour.RotateHue(CLIPalette.Accent, float64(i)*12)
		shade := colour.Darken(row, 0.35)

		var b strings.Builder
		for _, ch := range line {
			switch ch {
			case '█':
				b.WriteString(Paint(row, "%c", ch))
			case ' ':
				b.WriteRune(ch)
			default:
				b.WriteString(Paint(shade, "%c", ch))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// FormatBannerLine returns the version/tagline line
func FormatBannerLine(version, tagline string) string {
	title := "◆ HEXBOT PALETTE"
	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			Heading("%s", title),
			Muted("%s", version),
			Muted("—"),
			AccentDim("%s", tagline))
	}
	return fmt.Sprintf("%s %s — %s", title, version, tagline)
}

// EmitBanner displays the banner once per process, and only on a terminal.
func EmitBanner(version, tagline string) {
	if bannerEmitted || !isTTY() {
		return
	}
	printf("\n%s\n\n%s\n\n", FormatBannerArt(), FormatBannerLine(version, tagline))
	bannerEmitted = true
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
