package ui

import "strings"

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column defines one table column
type Column struct {
	Header   string
	Align    Align
	MinWidth int
}

// Table is a boxed, ANSI-aware text table. Cells may carry colour codes;
// widths are measured on visible runes.
type Table struct {
	Columns []Column
	Rows    [][]string
	ASCII   bool
}

type boxChars struct {
	tl, tr, bl, br string
	h, v           string
	t, ml, m, mr, b string
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
)

// Render returns the table with a trailing newline.
func (t Table) Render() string {
	box := unicodeBox
	if t.ASCII || !IsRich() {
		box = asciiBox
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		w := max(VisibleWidth(col.Header), col.MinWidth)
		for _, row := range t.Rows {
			if i < len(row) {
				w = max(w, VisibleWidth(row[i]))
			}
		}
		widths[i] = w
	}

	hLine := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	renderRow := func(cells []string) string {
		parts := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			pad := spaces(widths[i] - VisibleWidth(cell))
			if col.Align == AlignRight {
				cell = pad + cell
			} else {
				cell += pad
			}
			parts[i] = " " + cell + " "
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}

	lines := []string{hLine(box.tl, box.t, box.tr), renderRow(headers), hLine(box.ml, box.m, box.mr)}
	for _, row := range t.Rows {
		lines = append(lines, renderRow(row))
	}
	lines = append(lines, hLine(box.bl, box.b, box.br))
	return strings.Join(lines, "\n") + "\n"
}
