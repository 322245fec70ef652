package scheme

// Harmony names how element hues relate to the base hue.
type Harmony string

const (
	HarmonyUniform       Harmony = "uniform"
	HarmonyDuotone       Harmony = "duotone"
	HarmonyAnalogous     Harmony = "analogous"
	HarmonyTriadic       Harmony = "triadic"
	HarmonySplit         Harmony = "split"
	HarmonyMonochromatic Harmony = "monochromatic"
)

// DefaultHarmony is substituted for unrecognized harmony values.
const DefaultHarmony = HarmonyUniform

// harmonyTable maps (harmony, element) to a hue offset in degrees added to
// the base hue. Monochromatic relies on lightness variation alone, so it
// matches uniform here.
var harmonyTable = map[Harmony]map[Element]float64{
	HarmonyUniform: {},
	HarmonyDuotone: {
		ElementStatusBar: 30,
		ElementSideBar:   30,
	},
	HarmonyAnalogous: {
		ElementStatusBar:   30,
		ElementActivityBar: -30,
		ElementSideBar:     15,
	},
	HarmonyTriadic: {
		ElementStatusBar:   120,
		ElementActivityBar: 240,
		ElementSideBar:     120,
	},
	HarmonySplit: {
		ElementStatusBar:   150,
		ElementActivityBar: 210,
	},
	HarmonyMonochromatic: {},
}

// HarmonyOffset resolves the hue offset an element contributes under a
// harmony. Unknown harmonies fall back to DefaultHarmony; elements absent
// from a table contribute no offset.
func HarmonyOffset(h Harmony, e Element) float64 {
	table, ok := harmonyTable[h]
	if !ok {
		table = harmonyTable[DefaultHarmony]
	}
	return table[e]
}

// ParseHarmony maps a string onto a Harmony, substituting DefaultHarmony
// for anything unknown. It never fails.
func ParseHarmony(s string) Harmony {
	if _, ok := harmonyTable[Harmony(s)]; ok {
		return Harmony(s)
	}
	return DefaultHarmony
}

// Harmonies lists the known harmonies in a stable order.
func Harmonies() []Harmony {
	return []Harmony{
		HarmonyUniform, HarmonyDuotone, HarmonyAnalogous,
		HarmonyTriadic, HarmonySplit, HarmonyMonochromatic,
	}
}
