package colour

// Labels of the related colours, in the order DeriveRelated returns them.
const (
	LabelDarker        = "darker"
	LabelLighter       = "lighter"
	LabelSaturated     = "saturated"
	LabelDesaturated   = "desaturated"
	LabelComplementary = "complementary"
	LabelTriadic1      = "triadic-1"
	LabelTriadic2      = "triadic-2"
)

const relatedStep = 0.1

// Derived is one named transform applied to a base colour.
type Derived struct {
	Label  string `json:"label"`
	Colour Colour `json:"colour"`
}

var derivations = []struct {
	label string
	apply func(Colour) Colour
}{
	{LabelDarker, func(c Colour) Colour { return Darken(c, relatedStep) }},
	{LabelLighter, func(c Colour) Colour { return Lighten(c, relatedStep) }},
	{LabelSaturated, func(c Colour) Colour { return Saturate(c, relatedStep) }},
	{LabelDesaturated, func(c Colour) Colour { return Desaturate(c, relatedStep) }},
	{LabelComplementary, func(c Colour) Colour { return RotateHue(c, 180) }},
	{LabelTriadic1, func(c Colour) Colour { return RotateHue(c, 120) }},
	{LabelTriadic2, func(c Colour) Colour { return RotateHue(c, -120) }},
}

// Labels returns the related-colour labels in display order.
func Labels() []string {
	out := make([]string, len(derivations))
	for i, d := range derivations {
		out[i] = d.label
	}
	return out
}

// DeriveRelated returns the seven related colours of base in fixed order.
func DeriveRelated(base Colour) []Derived {
	out := make([]Derived, len(derivations))
	for i, d := range derivations {
		out[i] = Derived{Label: d.label, Colour: d.apply(base)}
	}
	return out
}

// Related computes a single related colour by label.
func Related(base Colour, label string) (Colour, bool) {
	for _, d := range derivations {
		if d.label == label {
			return d.apply(base), true
		}
	}
	return Colour{}, false
}
