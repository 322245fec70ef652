package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// OklabToLinearRGB converts Oklab to linear RGB using the canonical
// published matrices of the Oklab space.
func OklabToLinearRGB(c Oklab) LinearRGB {
	lp := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	mp := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	sp := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return LinearRGB{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// LinearRGBToOklab converts linear RGB to Oklab.
func LinearRGBToOklab(c LinearRGB) Oklab {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	lr := math.Cbrt(l)
	mr := math.Cbrt(m)
	sr := math.Cbrt(s)

	return Oklab{
		L: 0.2104542553*lr + 0.7936177850*mr - 0.0040720468*sr,
		A: 1.9779984951*lr - 2.4285922050*mr + 0.4505937099*sr,
		B: 0.0259040371*lr + 0.7827717662*mr - 0.8086757660*sr,
	}
}

// SrgbToLinear decodes one gamma-encoded sRGB channel to linear light.
func SrgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSrgb encodes one linear-light channel with the sRGB gamma curve.
func LinearToSrgb(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// ParseHex parses a #RRGGBB string (leading # optional, case-insensitive)
// into 8-bit channels. Anything else fails with ErrInvalidColor.
func ParseHex(hex string) (r, g, b uint8, err error) {
	if !hexPattern.MatchString(hex) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	digits := strings.TrimPrefix(hex, "#")
	rv, _ := strconv.ParseUint(digits[0:2], 16, 8)
	gv, _ := strconv.ParseUint(digits[2:4], 16, 8)
	bv, _ := strconv.ParseUint(digits[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv), nil
}

// FormatHex renders 8-bit channels as a canonical #RRGGBB string.
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HexToOklch parses an sRGB hex color and converts it to OKLCH.
func HexToOklch(hex string) (OKLCH, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return OKLCH{}, err
	}
	lin := LinearRGB{
		R: SrgbToLinear(float64(r) / 255),
		G: SrgbToLinear(float64(g) / 255),
		B: SrgbToLinear(float64(b) / 255),
	}
	return OklabToOklch(LinearRGBToOklab(lin)), nil
}

// OklchToHex converts OKLCH to an sRGB hex string. Channels are clamped to
// [0,255] before rounding, so out-of-gamut input still yields a valid color;
// callers wanting hue-preserving reduction should ClampToGamut first.
func OklchToHex(c OKLCH) string {
	lin := OklabToLinearRGB(OklchToOklab(c))
	return FormatHex(encodeChannel(lin.R), encodeChannel(lin.G), encodeChannel(lin.B))
}

func encodeChannel(linear float64) uint8 {
	v := LinearToSrgb(linear)
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
