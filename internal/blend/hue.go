// Package blend interpolates tint colors toward theme colors, keeping hue
// rotation direction consistent across independently blended surfaces.
package blend

import (
	"math"
	"sort"

	"github.com/tinthq/tint/internal/colorspace"
)

// Direction names a rotation sense around the hue circle. The zero value
// means no forced direction, so interpolation takes the shortest arc.
type Direction string

const (
	DirectionNone     Direction = ""
	DirectionCW       Direction = "cw"
	DirectionCCW      Direction = "ccw"
	DirectionShortest Direction = "shortest"
)

// maxForcedArc bounds how far harmonization may drag a single hue. Forcing
// the majority direction across an arc longer than this distorts the color
// more than the inconsistency it prevents, so the blend falls back to the
// shortest path. Empirically tuned; see EffectiveDirection.
const maxForcedArc = 270.0

// signedDelta normalizes h2-h1 into (-180, 180].
func signedDelta(h1, h2 float64) float64 {
	d := math.Mod(h2-h1, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// Hue interpolates between two hues along the shortest arc. The factor is
// clamped into [0,1].
func Hue(h1, h2, factor float64) float64 {
	return colorspace.NormalizeHue(h1 + signedDelta(h1, h2)*clamp01(factor))
}

// HueDirection classifies the shortest rotation from h1 to h2. A delta of
// exactly 180 degrees ties to clockwise.
func HueDirection(h1, h2 float64) Direction {
	if signedDelta(h1, h2) >= 0 {
		return DirectionCW
	}
	return DirectionCCW
}

// HueDirected interpolates from h1 toward h2 going the given way around the
// circle, even when that is not the shortest arc. DirectionShortest and
// DirectionNone reduce to Hue.
func HueDirected(h1, h2, factor float64, dir Direction) float64 {
	switch dir {
	case DirectionCW:
		delta := math.Mod(h2-h1, 360)
		if delta < 0 {
			delta += 360
		}
		return colorspace.NormalizeHue(h1 + delta*clamp01(factor))
	case DirectionCCW:
		delta := math.Mod(h2-h1, 360)
		if delta > 0 {
			delta -= 360
		}
		return colorspace.NormalizeHue(h1 + delta*clamp01(factor))
	default:
		return Hue(h1, h2, factor)
	}
}

// arcLength returns the rotation distance from h1 to h2 going dir.
func arcLength(h1, h2 float64, dir Direction) float64 {
	delta := math.Mod(h2-h1, 360)
	if dir == DirectionCCW {
		delta = -delta
	}
	if delta < 0 {
		delta += 360
	}
	return delta
}

// EffectiveDirection resolves the direction an individual blend should use
// under a harmonized majority. Without a majority the shortest arc applies.
// A majority is honored only while the forced arc stays within maxForcedArc;
// beyond that the blend reverts to the shortest path rather than swing a
// single key most of the way around the circle.
func EffectiveDirection(h1, h2 float64, majority Direction) Direction {
	if majority != DirectionCW && majority != DirectionCCW {
		return DirectionNone
	}
	if arcLength(h1, h2, majority) > maxForcedArc {
		return DirectionNone
	}
	return majority
}

// HuePair records one key's pre-blend tint hue and its theme target hue.
type HuePair struct {
	Key  string
	From float64
	To   float64
}

// MajorityDirection votes on the natural rotation direction across the
// given pairs. Ties resolve to the direction of the first pair in key
// order, so the outcome is deterministic regardless of input order. No
// pairs means no majority.
func MajorityDirection(pairs []HuePair) Direction {
	if len(pairs) == 0 {
		return DirectionNone
	}

	sorted := make([]HuePair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var cw, ccw int
	for _, p := range sorted {
		if HueDirection(p.From, p.To) == DirectionCW {
			cw++
		} else {
			ccw++
		}
	}
	switch {
	case cw > ccw:
		return DirectionCW
	case ccw > cw:
		return DirectionCCW
	default:
		return HueDirection(sorted[0].From, sorted[0].To)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
