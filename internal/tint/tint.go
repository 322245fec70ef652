// Package tint composes the hash, colorspace, blend and scheme layers into
// workspace palette computation. Compute is a pure function of its inputs:
// identical arguments always produce identical results, and nothing here
// performs I/O or holds state between calls.
package tint

import (
	"errors"

	"github.com/tinthq/tint/internal/blend"
	"github.com/tinthq/tint/internal/colorspace"
	"github.com/tinthq/tint/internal/hash"
	"github.com/tinthq/tint/internal/scheme"
)

// ErrMissingConfiguration reports that neither a base hue nor a workspace
// identifier was supplied, or that both were.
var ErrMissingConfiguration = errors.New("tint: exactly one of base hue and workspace identifier is required")

// DefaultBlendFactor is the interpolation weight toward the theme color
// when none is configured.
const DefaultBlendFactor = 0.35

// Params are the inputs to Compute. Exactly one of BaseHue and WorkspaceID
// must be set. Enum fields are validated with the scheme fallbacks, so
// unknown values degrade to defaults instead of failing.
type Params struct {
	// WorkspaceID derives the base hue when BaseHue is nil.
	WorkspaceID string
	// BaseHue pins the base hue directly, in degrees.
	BaseHue *float64
	// Seed perturbs the derived hue; 0 leaves it untouched.
	Seed int64

	// Targets are the elements the caller wants colored. Every managed key
	// is computed regardless; targets only control the Enabled flag.
	Targets []scheme.Element

	ThemeType scheme.ThemeType
	Style     scheme.Style
	Harmony   scheme.Harmony
	Method    blend.Method

	// ThemeColors is the sparse ambient palette to blend toward, keyed by
	// color key name. Malformed entries are ignored per key.
	ThemeColors map[string]string

	// BlendFactor weighs the blend toward the theme color; nil selects
	// DefaultBlendFactor. Values clamp into [0,1].
	BlendFactor *float64
	// BlendFactors overrides the global factor per element.
	BlendFactors map[scheme.Element]float64

	// HueOnly restricts the hueShift strategy to hue movement, holding the
	// tint's lightness and chroma.
	HueOnly bool
}

// Detail is one key's computed colors.
type Detail struct {
	Key         scheme.Key
	Enabled     bool
	Tint        colorspace.OKLCH
	TintHex     string
	ThemeColor  string
	BlendFactor float64
	FinalHex    string
}

// Result is a full palette computation.
type Result struct {
	BaseHue     float64
	BaseTintHex string
	Keys        []Detail
}

// Compute derives the full key-to-color mapping for a workspace. See the
// package comment for the purity guarantees.
func Compute(p Params) (*Result, error) {
	if (p.BaseHue == nil) == (p.WorkspaceID == "") {
		return nil, ErrMissingConfiguration
	}

	var baseHue float64
	if p.BaseHue != nil {
		baseHue = colorspace.NormalizeHue(*p.BaseHue)
	} else {
		baseHue = hash.BaseHue(p.WorkspaceID, p.Seed)
	}

	style := scheme.ParseStyle(string(p.Style))
	themeType := scheme.ParseThemeType(string(p.ThemeType))
	harmony := scheme.ParseHarmony(string(p.Harmony))
	method := blend.ParseMethod(string(p.Method))

	enabled := map[scheme.Element]bool{}
	for _, e := range p.Targets {
		enabled[e] = true
	}

	keys := scheme.Keys()
	details := make([]Detail, len(keys))
	for i, key := range keys {
		params := scheme.StyleParams(style, themeType, key)
		hue := colorspace.NormalizeHue(baseHue + scheme.HarmonyOffset(harmony, key.Element) + params.HueOffset)
		tint := colorspace.OKLCH{
			L: params.Lightness,
			C: colorspace.MaxChroma(params.Lightness, hue) * params.ChromaFactor,
			H: hue,
		}
		details[i] = Detail{
			Key:        key,
			Enabled:    enabled[key.Element],
			Tint:       tint,
			TintHex:    colorspace.OklchToHex(tint),
			ThemeColor: resolveThemeColor(p.ThemeColors, key),
		}
	}

	majority := majorityDirection(details)

	globalFactor := DefaultBlendFactor
	if p.BlendFactor != nil {
		globalFactor = *p.BlendFactor
	}

	for i := range details {
		d := &details[i]
		if d.ThemeColor == "" {
			d.FinalHex = d.TintHex
			continue
		}

		factor := globalFactor
		if override, ok := p.BlendFactors[d.Key.Element]; ok {
			factor = override
		}
		d.BlendFactor = clamp01(factor)
		d.FinalHex = blend.Apply(method, blend.Request{
			Tint:     d.Tint,
			TintHex:  d.TintHex,
			ThemeHex: d.ThemeColor,
			Factor:   d.BlendFactor,
			HueOnly:  p.HueOnly,
			Majority: majority,
		})
	}

	baseParams := scheme.StyleParams(style, themeType, scheme.Key{Type: scheme.TypeBackground})
	baseTint := colorspace.OKLCH{
		L: baseParams.Lightness,
		C: colorspace.MaxChroma(baseParams.Lightness, baseHue) * baseParams.ChromaFactor,
		H: baseHue,
	}

	return &Result{
		BaseHue:     baseHue,
		BaseTintHex: colorspace.OklchToHex(baseTint),
		Keys:        details,
	}, nil
}

// resolveThemeColor finds the theme color a key blends toward: its own
// entry first, then its in-element fallback, then the theme's editor color
// for the key's type. Malformed entries count as absent so one bad value
// never fails the palette.
func resolveThemeColor(themeColors map[string]string, key scheme.Key) string {
	if len(themeColors) == 0 {
		return ""
	}
	if hex, ok := validEntry(themeColors, key.Name); ok {
		return hex
	}
	if fb, ok := scheme.FallbackKey(key.Name); ok {
		if hex, ok := validEntry(themeColors, fb); ok {
			return hex
		}
	}
	if fb, ok := scheme.EditorFallback(key.Type); ok {
		if hex, ok := validEntry(themeColors, fb); ok {
			return hex
		}
	}
	return ""
}

func validEntry(themeColors map[string]string, name string) (string, bool) {
	hex, ok := themeColors[name]
	if !ok {
		return "", false
	}
	if _, _, _, err := colorspace.ParseHex(hex); err != nil {
		return "", false
	}
	return hex, true
}

// majorityDirection votes across the background keys that resolved a theme
// color, before any individual blend runs. Foregrounds and borders follow
// their element's backgrounds, which all share this one majority, so the
// whole palette rotates the same way.
func majorityDirection(details []Detail) blend.Direction {
	var pairs []blend.HuePair
	for _, d := range details {
		if d.Key.Type != scheme.TypeBackground || d.ThemeColor == "" {
			continue
		}
		theme, err := colorspace.HexToOklch(d.ThemeColor)
		if err != nil {
			continue
		}
		pairs = append(pairs, blend.HuePair{Key: d.Key.Name, From: d.Tint.H, To: theme.H})
	}
	return blend.MajorityDirection(pairs)
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
