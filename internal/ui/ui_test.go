package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"hexbot-palette/internal/colour"
)

func plain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestLogStatusRespectsLevel(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil); SetLevel("info") })

	SetLevel("warning")
	LogStatus("info", "hidden")
	LogStatus("warning", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warning level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warning message missing: %q", out)
	}

	buf.Reset()
	SetLevel("debug")
	LogStatus("debug", "trace")
	if !strings.Contains(buf.String(), "trace") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
}

func TestStripAnsi(t *testing.T) {
	in := "\x1b[38;2;255;90;45mhex\x1b[0m"
	if got := StripAnsi(in); got != "hex" {
		t.Errorf("StripAnsi = %q", got)
	}
	if got := VisibleWidth(in); got != 3 {
		t.Errorf("VisibleWidth = %d", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
}

func TestTableRender(t *testing.T) {
	plain(t)
	out := Table{
		Columns: []Column{{Header: "#", Align: AlignRight}, {Header: "saved"}},
		Rows:    [][]string{{"1", "#ff0000"}, {"10", "#00ff00"}},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	width := VisibleWidth(lines[0])
	for i, l := range lines {
		if VisibleWidth(l) != width {
			t.Errorf("line %d width %d, want %d:\n%s", i, VisibleWidth(l), width, out)
		}
	}
	if !strings.Contains(lines[3], "|  1 |") {
		t.Errorf("right alignment lost: %q", lines[3])
	}
}

func TestRenderSaved(t *testing.T) {
	plain(t)
	if got := RenderSaved(nil); !strings.Contains(got, "no saved colours") {
		t.Errorf("empty palette rendered as %q", got)
	}
	out := RenderSaved([]string{"#ff0000", "#00ff00"})
	if strings.Index(out, "#ff0000") > strings.Index(out, "#00ff00") {
		t.Errorf("insertion order lost:\n%s", out)
	}
}

func TestRenderColour(t *testing.T) {
	plain(t)
	base := colour.MustParse("#336699")
	out := RenderColour(base, colour.ContrastOf(base), colour.DeriveRelated(base))
	for _, label := range colour.Labels() {
		if !strings.Contains(out, label) {
			t.Errorf("missing %q in:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "#336699") || !strings.Contains(out, colour.White) {
		t.Errorf("header missing base or text token:\n%s", out)
	}
}

func TestFormatBannerArtPlain(t *testing.T) {
	plain(t)
	if got := FormatBannerArt(); got != strings.Join(bannerArt, "\n") {
		t.Error("plain banner should be the bare art")
	}
}

func TestFormatBannerLineKeepsPercent(t *testing.T) {
	for _, noColor := range []bool{true, false} {
		prev := color.NoColor
		color.NoColor = noColor
		got := StripAnsi(FormatBannerLine("v1.0-100%", "50% off"))
		color.NoColor = prev

		if !strings.Contains(got, "v1.0-100%") || !strings.Contains(got, "50% off") || strings.Contains(got, "%!") {
			t.Errorf("noColor=%v: FormatBannerLine = %q", noColor, got)
		}
	}
}

func TestRenderSavedCount(t *testing.T) {
	plain(t)
	out := RenderSaved([]string{"#ff0000", "#00ff00", "#0000ff"})
	if !strings.HasSuffix(out, "3 saved\n") {
		t.Errorf("count line missing:\n%s", out)
	}
}

func TestLogSection(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	LogSection("Palette API 100%")
	if !strings.Contains(buf.String(), "Palette API 100%") {
		t.Errorf("LogSection wrote %q", buf.String())
	}
}
