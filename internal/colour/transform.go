package colour

// Amounts passed to the lightness and saturation transforms are fractions in
// [0,1]; values outside that range are clamped into it.

// Darken scales HSL lightness down by amount, bottoming out at black.
func Darken(c Colour, amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s, l*(1-clampUnit(amount)))
}

// Lighten scales HSL lightness up by amount, topping out at white.
func Lighten(c Colour, amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s, l*(1+clampUnit(amount)))
}

// Saturate moves saturation towards 1 by amount of the remaining range.
func Saturate(c Colour, amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s+(1-s)*clampUnit(amount), l)
}

// Desaturate moves saturation towards 0 by amount of its current value.
func Desaturate(c Colour, amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s-s*clampUnit(amount), l)
}

// RotateHue adds degrees to the hue, wrapping modulo 360 in both directions.
func RotateHue(c Colour, degrees float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h+degrees, s, l)
}
