package colorspace

const (
	gamutSlack      = 1e-4
	chromaTolerance = 1e-4

	// maxChromaCeiling sits above the practical sRGB chroma ceiling so the
	// search interval always brackets the true maximum.
	maxChromaCeiling = 0.4
)

// InGamut reports whether a linear RGB triple is representable in 8-bit
// sRGB, allowing a small numerical slack on either side of [0,1].
func InGamut(c LinearRGB) bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if v < -gamutSlack || v > 1+gamutSlack {
			return false
		}
	}
	return true
}

func oklchInGamut(c OKLCH) bool {
	return InGamut(OklabToLinearRGB(OklchToOklab(c)))
}

// ClampToGamut reduces chroma until the color is representable in sRGB.
// Lightness and hue are preserved exactly; only chroma shrinks. Degenerate
// lightness collapses to black or white at the same hue, and colors already
// in gamut are returned unchanged.
func ClampToGamut(c OKLCH) OKLCH {
	if c.L <= 0 {
		return OKLCH{L: 0, C: 0, H: c.H}
	}
	if c.L >= 1 {
		return OKLCH{L: 1, C: 0, H: c.H}
	}
	if c.C <= 0 || oklchInGamut(c) {
		return c
	}

	low, high := 0.0, c.C
	for high-low >= chromaTolerance {
		mid := (low + high) / 2
		if oklchInGamut(OKLCH{L: c.L, C: mid, H: c.H}) {
			low = mid
		} else {
			high = mid
		}
	}
	return OKLCH{L: c.L, C: low, H: c.H}
}

// MaxChroma returns the largest chroma representable in sRGB at the given
// lightness and hue. It is 0 at or beyond the lightness extremes.
func MaxChroma(l, h float64) float64 {
	if l <= 0 || l >= 1 {
		return 0
	}

	low, high := 0.0, maxChromaCeiling
	for high-low >= chromaTolerance {
		mid := (low + high) / 2
		if oklchInGamut(OKLCH{L: l, C: mid, H: h}) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}
