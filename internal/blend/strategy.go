package blend

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tinthq/tint/internal/colorspace"
)

// Method selects a blend strategy.
type Method string

const (
	// MethodOverlay alpha-composites in linear sRGB, ignoring hue entirely.
	MethodOverlay Method = "overlay"
	// MethodHueShift interpolates perceptually in OKLCH.
	MethodHueShift Method = "hueShift"
)

// DefaultMethod is used when a method value is unrecognized.
const DefaultMethod = MethodHueShift

// ParseMethod maps a string onto a Method, substituting DefaultMethod for
// anything unknown. It never fails.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodOverlay, MethodHueShift:
		return Method(s)
	default:
		return DefaultMethod
	}
}

// Request carries one key's blend inputs. Tint is the pre-blend OKLCH color
// matching TintHex; Majority is the harmonized direction, if any.
type Request struct {
	Tint     colorspace.OKLCH
	TintHex  string
	ThemeHex string
	Factor   float64
	HueOnly  bool
	Majority Direction
}

// Apply runs the strategy named by method. Both strategies fail soft: an
// unusable theme color yields the tint hex unchanged rather than an error,
// so one bad theme entry never breaks a whole palette.
func Apply(method Method, req Request) string {
	if method == MethodOverlay {
		return Overlay(req)
	}
	return HueShift(req)
}

// Overlay blends the two hexes channel-wise in linear sRGB, like painting
// the theme color over the tint at the given alpha.
func Overlay(req Request) string {
	tint, err := srgbColor(req.TintHex)
	if err != nil {
		return req.TintHex
	}
	theme, err := srgbColor(req.ThemeHex)
	if err != nil {
		return req.TintHex
	}

	t := clamp01(req.Factor)
	r1, g1, b1 := tint.LinearRgb()
	r2, g2, b2 := theme.LinearRgb()
	mixed := colorful.LinearRgb(r1+t*(r2-r1), g1+t*(g2-g1), b1+t*(b2-b1)).Clamped()
	r, g, b := mixed.RGB255()
	return colorspace.FormatHex(r, g, b)
}

// HueShift interpolates lightness and chroma linearly and hue around the
// circle, honoring the harmonized majority direction where applicable. With
// HueOnly set, lightness and chroma stay at the tint's values. The result
// is gamut-clamped before emission.
func HueShift(req Request) string {
	theme, err := colorspace.HexToOklch(req.ThemeHex)
	if err != nil {
		return req.TintHex
	}

	factor := clamp01(req.Factor)
	tint := req.Tint

	out := colorspace.OKLCH{L: tint.L, C: tint.C}
	if !req.HueOnly {
		out.L = tint.L + (theme.L-tint.L)*factor
		out.C = tint.C + (theme.C-tint.C)*factor
	}
	dir := EffectiveDirection(tint.H, theme.H, req.Majority)
	out.H = HueDirected(tint.H, theme.H, factor, dir)

	return colorspace.OklchToHex(colorspace.ClampToGamut(out))
}

func srgbColor(hex string) (colorful.Color, error) {
	r, g, b, err := colorspace.ParseHex(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}
