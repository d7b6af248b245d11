package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrBold   = color.New(color.FgWhite, color.Bold)

	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrAccent  = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Log levels, lowest first.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarning
	LevelError
)

var (
	outMu    sync.Mutex
	out      io.Writer = os.Stdout
	minLevel           = LevelInfo
)

// SetOutput redirects all log output. Passing nil restores stdout.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetLevel sets the minimum level written by LogStatus.
// Unknown names fall back to info.
func SetLevel(name string) {
	outMu.Lock()
	defer outMu.Unlock()
	minLevel = parseLevel(name)
}

func parseLevel(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func categoryLevel(category string) int {
	switch category {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func printf(format string, a ...interface{}) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, format, a...)
}

func printLine(s string) {
	printf("%s\n", s)
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	outMu.Lock()
	level := minLevel
	outMu.Unlock()
	if categoryLevel(category) < level {
		return
	}

	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warn", "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	printf("%s  %s  %s\n", ts, icon, styledMsg)
}

// LogSection prints a section header
func LogSection(title string) {
	printf("\n%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", max(0, 50-len(title)))))
}

// LogGroup starts a boxed group of items
func LogGroup(title string) {
	printf("\n%s\n", clrDim.Sprintf("%s%s %s %s%s",
		boxTopLeft,
		strings.Repeat(boxHorizontal, 2),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, max(0, 50-len(title)))),
		boxTopRight))
}

// LogGroupItem logs a label/value pair inside a group
func LogGroupItem(label, value string) {
	printf("%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogGroupEnd closes a group
func LogGroupEnd() {
	printLine(clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, 56) + boxBottomRight))
}

// LogGracefulShutdown announces the shutdown sequence
func LogGracefulShutdown() {
	LogStatus("warning", "Shutdown signal received, stopping servers...")
}

// PrintFooter prints a dim hint line
func PrintFooter(message string) {
	printf("\n  %s %s\n", clrDim.Sprint("▸"), clrDim.Sprint(message))
}
