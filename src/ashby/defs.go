// Package ashby renders material-property ("Ashby") charts: per-category
// bounding ellipses and convex hulls in a two-quantity property space, with
// power-law guidelines and an outside-the-axes legend.
package ashby

import "image/color"

// Named plot colors shared by both palettes.
var (
	Blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	Green  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	Red    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Purple = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
	Brown  = color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}
	Pink   = color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}
	Grey   = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
	Cyan   = color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}
	Yellow = color.RGBA{R: 0xff, G: 0xdd, B: 0x33, A: 0xff}
	Black  = color.RGBA{A: 0xff}
)

// Units maps a physical quantity to the unit string shown on axis labels.
// Keys are case sensitive and must match the CSV quantity names.
var Units = map[string]string{
	"Density":              "kg/m³",
	"Tensile Strength":     "MPa",
	"Young Modulus":        "GPa",
	"Fracture Toughness":   "MPa√m",
	"Thermal Conductivity": "W/m·K",
	"Thermal expansion":    "1e-6/m",
	"Resistivity":          "Ω·m",
	"Poisson":              "-",
	"Poisson difference":   "-",
}

// MaterialColors maps the material-chart categories to their plot colors.
var MaterialColors = map[string]color.Color{
	"Foams":                 Blue,
	"Elastomers":            Orange,
	"Natural materials":     Green,
	"Polymers":              Red,
	"Nontechnical ceramics": Purple,
	"Composites":            Brown,
	"Technical ceramics":    Pink,
	"Metals":                Grey,
}

// CategoryColors maps the unit-cell categories to their plot colors,
// including the Violated bucket written by the manufacturing constraint.
var CategoryColors = map[string]color.Color{
	"Chiral":     Red,
	"Lattice":    Blue,
	"Re-entrant": Green,
	"Violated":   Grey,
}

// WithAlpha returns c with its alpha channel replaced, for translucent
// ellipse faces and hull fills.
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	// Scale channels for premultiplied-alpha correctness.
	f := uint32(alpha)
	return color.RGBA{
		R: uint8((r >> 8) * f / 255),
		G: uint8((g >> 8) * f / 255),
		B: uint8((b >> 8) * f / 255),
		A: alpha,
	}
}
