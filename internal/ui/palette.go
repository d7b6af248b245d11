package ui

import "hexbot-palette/internal/colour"

// CLIPalette holds the brand colours used for the banner and headings.
var CLIPalette = struct {
	Accent       colour.Colour // #FF5A2D - primary brand colour
	AccentBright colour.Colour // highlighted/active state
	AccentDim    colour.Colour // muted accent
	Muted        colour.Colour // #8B7F77 - hints, metadata
}{
	Accent:       colour.MustParse("#FF5A2D"),
	AccentBright: colour.Lighten(colour.MustParse("#FF5A2D"), 0.1),
	AccentDim:    colour.Darken(colour.MustParse("#FF5A2D"), 0.2),
	Muted:        colour.MustParse("#8B7F77"),
}
