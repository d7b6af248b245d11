package ui

import (
	"fmt"
	"strconv"
	"strings"

	"hexbot-palette/internal/colour"
)

const swatchWidth = 6

// RenderColour draws the base colour header followed by its related colours.
func RenderColour(base colour.Colour, contrast colour.Contrast, related []colour.Derived) string {
	var b strings.Builder

	title := fmt.Sprintf("  %s  ", base.Hex())
	if IsRich() {
		title = OnColour(base, contrast, title)
	}
	fmt.Fprintf(&b, "%s  %s\n", Swatch(base, swatchWidth), title)
	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		Muted("text"), Subtle("%s", contrast.Text),
		Muted("shadow"), Subtle("%s", contrast.Shadow))

	rows := make([][]string, 0, len(related))
	for _, d := range related {
		rows = append(rows, []string{
			Swatch(d.Colour, swatchWidth),
			Accent("%s", d.Label),
			d.Colour.Hex(),
			d.Colour.CSS(),
		})
	}
	b.WriteString(Table{
		Columns: []Column{
			{Header: "", MinWidth: swatchWidth},
			{Header: "related"},
			{Header: "hex"},
			{Header: "css"},
		},
		Rows: rows,
	}.Render())
	return b.String()
}

// RenderSaved draws the saved palette in insertion order.
func RenderSaved(saved []string) string {
	if len(saved) == 0 {
		return Muted("no saved colours") + "\n"
	}
	rows := make([][]string, 0, len(saved))
	for i, hex := range saved {
		swatch := spaces(swatchWidth)
		if c, err := colour.Parse(hex); err == nil {
			swatch = Swatch(c, swatchWidth)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), swatch, hex})
	}
	table := Table{
		Columns: []Column{
			{Header: "#", Align: AlignRight},
			{Header: "", MinWidth: swatchWidth},
			{Header: "saved"},
		},
		Rows: rows,
	}.Render()
	return table + Bold("%d saved", len(saved)) + "\n"
}
