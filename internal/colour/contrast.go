package colour

// Text colour tokens chosen by ContrastOf.
const (
	Black = "#000"
	White = "#fff"
)

const (
	// lightThreshold splits light from dark on the WCAG relative luminance scale.
	lightThreshold = 0.5
	shadowStep     = 0.4
)

// Contrast is the text colour and text-shadow colour for a background.
type Contrast struct {
	Text   string `json:"text"`
	Shadow string `json:"shadow"`
}

// Luminance is the WCAG 2.x relative luminance of c, from 0 (black) to 1 (white).
func Luminance(c Colour) float64 {
	r, g, b := c.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsLight reports whether dark text reads better than light text on c.
func IsLight(c Colour) bool {
	return Luminance(c) >= lightThreshold
}

// ContrastOf picks black or white text for base and a darkened shadow.
func ContrastOf(base Colour) Contrast {
	text := White
	if IsLight(base) {
		text = Black
	}
	return Contrast{
		Text:   text,
		Shadow: Darken(base, shadowStep).CSS(),
	}
}
