package scheme

// Style names a color style: how saturated and how light the generated
// palette is relative to the base hue.
type Style string

const (
	StylePastel       Style = "pastel"
	StyleVibrant      Style = "vibrant"
	StyleMuted        Style = "muted"
	StyleTinted       Style = "tinted"
	StyleDuotone      Style = "duotone"
	StyleUndercurrent Style = "undercurrent"
	StyleAnalogous    Style = "analogous"
	StyleNeon         Style = "neon"
	StyleAdaptive     Style = "adaptive"
)

// DefaultStyle is substituted for unrecognized style values.
const DefaultStyle = StylePastel

// ThemeType is the ambient dark/light appearance the palette is built for.
type ThemeType string

const (
	ThemeDark  ThemeType = "dark"
	ThemeLight ThemeType = "light"
)

// DefaultThemeType is substituted for unrecognized theme types.
const DefaultThemeType = ThemeDark

// Params shapes one key's tint: a hue offset in degrees relative to the
// element hue, an absolute OKLCH lightness, and a chroma factor applied to
// the maximum in-gamut chroma at that lightness and hue.
type Params struct {
	HueOffset    float64
	Lightness    float64
	ChromaFactor float64
}

// styleTable maps (style, themeType, colorType) to base params. Values are
// tuned by eye against the marketplace themes in the theme database; they
// are data, not derivation.
var styleTable = map[Style]map[ThemeType]map[ColorType]Params{
	StylePastel: {
		ThemeDark: {
			TypeBackground: {0, 0.32, 0.45},
			TypeForeground: {0, 0.90, 0.12},
			TypeBorder:     {0, 0.44, 0.35},
		},
		ThemeLight: {
			TypeBackground: {0, 0.87, 0.35},
			TypeForeground: {0, 0.32, 0.30},
			TypeBorder:     {0, 0.70, 0.30},
		},
	},
	StyleVibrant: {
		ThemeDark: {
			TypeBackground: {0, 0.36, 0.95},
			TypeForeground: {0, 0.93, 0.20},
			TypeBorder:     {0, 0.48, 0.80},
		},
		ThemeLight: {
			TypeBackground: {0, 0.80, 0.85},
			TypeForeground: {0, 0.25, 0.45},
			TypeBorder:     {0, 0.62, 0.70},
		},
	},
	StyleMuted: {
		ThemeDark: {
			TypeBackground: {0, 0.30, 0.22},
			TypeForeground: {0, 0.88, 0.08},
			TypeBorder:     {0, 0.42, 0.18},
		},
		ThemeLight: {
			TypeBackground: {0, 0.88, 0.18},
			TypeForeground: {0, 0.34, 0.18},
			TypeBorder:     {0, 0.72, 0.15},
		},
	},
	StyleTinted: {
		ThemeDark: {
			TypeBackground: {0, 0.27, 0.12},
			TypeForeground: {0, 0.87, 0.05},
			TypeBorder:     {0, 0.38, 0.10},
		},
		ThemeLight: {
			TypeBackground: {0, 0.92, 0.10},
			TypeForeground: {0, 0.30, 0.10},
			TypeBorder:     {0, 0.78, 0.08},
		},
	},
	StyleDuotone: {
		ThemeDark: {
			TypeBackground: {0, 0.32, 0.60},
			TypeForeground: {180, 0.90, 0.25},
			TypeBorder:     {0, 0.44, 0.50},
		},
		ThemeLight: {
			TypeBackground: {0, 0.85, 0.50},
			TypeForeground: {180, 0.30, 0.40},
			TypeBorder:     {0, 0.68, 0.40},
		},
	},
	StyleUndercurrent: {
		ThemeDark: {
			TypeBackground: {-15, 0.25, 0.35},
			TypeForeground: {15, 0.91, 0.10},
			TypeBorder:     {0, 0.36, 0.30},
		},
		ThemeLight: {
			TypeBackground: {-15, 0.90, 0.28},
			TypeForeground: {15, 0.28, 0.22},
			TypeBorder:     {0, 0.74, 0.22},
		},
	},
	StyleAnalogous: {
		ThemeDark: {
			TypeBackground: {20, 0.32, 0.55},
			TypeForeground: {-20, 0.90, 0.15},
			TypeBorder:     {0, 0.44, 0.45},
		},
		ThemeLight: {
			TypeBackground: {20, 0.86, 0.45},
			TypeForeground: {-20, 0.30, 0.32},
			TypeBorder:     {0, 0.70, 0.36},
		},
	},
	StyleNeon: {
		ThemeDark: {
			TypeBackground: {0, 0.24, 1.0},
			TypeForeground: {0, 0.95, 0.35},
			TypeBorder:     {0, 0.52, 1.0},
		},
		ThemeLight: {
			TypeBackground: {0, 0.78, 1.0},
			TypeForeground: {0, 0.22, 0.60},
			TypeBorder:     {0, 0.60, 0.90},
		},
	},
	StyleAdaptive: {
		ThemeDark: {
			TypeBackground: {0, 0.32, 0.50},
			TypeForeground: {0, 0.90, 0.15},
			TypeBorder:     {0, 0.44, 0.40},
		},
		ThemeLight: {
			TypeBackground: {0, 0.86, 0.40},
			TypeForeground: {0, 0.30, 0.30},
			TypeBorder:     {0, 0.70, 0.32},
		},
	},
}

// keyAdjust tweaks base params for specific keys.
type keyAdjust struct {
	LightnessDelta map[ThemeType]float64
	ChromaScale    float64
}

// keyAdjustTable dims the inactive title bar relative to the active one:
// toward black on dark themes, toward white on light ones.
var keyAdjustTable = map[string]keyAdjust{
	"titleBar.inactiveBackground": {
		LightnessDelta: map[ThemeType]float64{ThemeDark: -0.04, ThemeLight: 0.04},
		ChromaScale:    0.6,
	},
	"titleBar.inactiveForeground": {
		LightnessDelta: map[ThemeType]float64{ThemeDark: -0.12, ThemeLight: 0.12},
		ChromaScale:    0.6,
	},
}

// StyleParams resolves the tint parameters for one key under a style and
// theme type. Unknown styles and theme types fall back to the defaults;
// lookup never fails.
func StyleParams(style Style, theme ThemeType, key Key) Params {
	byTheme, ok := styleTable[style]
	if !ok {
		byTheme = styleTable[DefaultStyle]
	}
	if _, ok := byTheme[theme]; !ok {
		theme = DefaultThemeType
	}
	params := byTheme[theme][key.Type]

	if adj, ok := keyAdjustTable[key.Name]; ok {
		params.Lightness += adj.LightnessDelta[theme]
		params.ChromaFactor *= adj.ChromaScale
	}
	return params
}

// ParseStyle maps a string onto a Style, substituting DefaultStyle for
// anything unknown. It never fails.
func ParseStyle(s string) Style {
	if _, ok := styleTable[Style(s)]; ok {
		return Style(s)
	}
	return DefaultStyle
}

// ParseThemeType maps a string onto a ThemeType, substituting
// DefaultThemeType for anything unknown.
func ParseThemeType(s string) ThemeType {
	switch ThemeType(s) {
	case ThemeDark, ThemeLight:
		return ThemeType(s)
	}
	return DefaultThemeType
}

// Styles lists the known styles in a stable order.
func Styles() []Style {
	return []Style{
		StylePastel, StyleVibrant, StyleMuted, StyleTinted, StyleDuotone,
		StyleUndercurrent, StyleAnalogous, StyleNeon, StyleAdaptive,
	}
}
