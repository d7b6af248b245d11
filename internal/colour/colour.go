// Package colour implements the pure colour math behind the palette: hex
// parsing, HSL adjustments, hue rotation, the related-colour set and the
// light/dark contrast decision. Every function is deterministic and free of
// shared state, so it is safe to call from any goroutine.
package colour

import (
	"fmt"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern is the only accepted input form: '#' followed by six hex digits.
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Colour is an sRGB colour with 8 bits per channel. The zero value is black.
//
// Every transform quantises its result back to 8 bits, so a Colour always
// round-trips through Hex without loss and two Colours compare with ==.
type Colour struct {
	R, G, B uint8
}

// Parse reads a colour in #rrggbb form. Case is ignored.
func Parse(s string) (Colour, error) {
	if !hexPattern.MatchString(s) {
		return Colour{}, &InvalidColorError{Input: s}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Colour{}, &InvalidColorError{Input: s, Err: err}
	}
	return fromColorful(c), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Colour {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSL builds a colour from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) Colour {
	return fromColorful(colorful.Hsl(normaliseHue(h), clampUnit(s), clampUnit(l)))
}

// Hex returns the canonical lowercase #rrggbb form.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Colour) String() string { return c.Hex() }

// CSS renders the colour as a CSS rgb() function.
func (c Colour) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns hue in [0,360) and saturation/lightness in [0,1].
func (c Colour) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

// MarshalText encodes the colour as its hex form.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts the same input as Parse.
func (c *Colour) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Colour) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Colour {
	r, g, b := c.Clamped().RGB255()
	return Colour{R: r, G: g, B: b}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// normaliseHue wraps h into [0,360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
