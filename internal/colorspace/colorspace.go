// Package colorspace converts colors among sRGB hex, linear RGB, Oklab and
// OKLCH, and provides gamut tests and chroma clamping for 8-bit sRGB output.
package colorspace

import (
	"errors"
	"math"
)

// ErrInvalidColor reports a hex string that does not match #RRGGBB.
var ErrInvalidColor = errors.New("colorspace: invalid hex color")

// LinearRGB is a linear-light RGB triple. Channels are nominally in [0,1]
// but may exceed that range for out-of-gamut intermediates.
type LinearRGB struct {
	R, G, B float64
}

// Oklab is the Cartesian form of the perceptually uniform Oklab space.
type Oklab struct {
	L, A, B float64
}

// OKLCH is the polar form of Oklab: lightness in [0,1], chroma from 0 up to
// roughly 0.4 for sRGB, hue in degrees [0,360). Values outside the sRGB
// gamut are valid intermediates and must be clamped before hex emission.
type OKLCH struct {
	L, C, H float64
}

// NormalizeHue wraps a hue angle into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// OklchToOklab converts polar OKLCH to Cartesian Oklab.
func OklchToOklab(c OKLCH) Oklab {
	rad := c.H * math.Pi / 180
	return Oklab{
		L: c.L,
		A: c.C * math.Cos(rad),
		B: c.C * math.Sin(rad),
	}
}

// OklabToOklch converts Cartesian Oklab to polar OKLCH.
func OklabToOklch(c Oklab) OKLCH {
	hue := math.Atan2(c.B, c.A) * 180 / math.Pi
	return OKLCH{
		L: c.L,
		C: math.Sqrt(c.A*c.A + c.B*c.B),
		H: NormalizeHue(hue),
	}
}
