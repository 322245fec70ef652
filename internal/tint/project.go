package tint

import "github.com/tinthq/tint/internal/scheme"

// EnabledBackgrounds projects the palette down to one background color per
// enabled element, for callers that only need a simple display.
func (r *Result) EnabledBackgrounds() map[scheme.Element]string {
	out := map[scheme.Element]string{}
	for _, d := range r.Keys {
		if d.Enabled && d.Key.Palette {
			out[d.Key.Element] = d.FinalHex
		}
	}
	return out
}

// Lookup returns the detail for a key name.
func (r *Result) Lookup(name string) (Detail, bool) {
	for _, d := range r.Keys {
		if d.Key.Name == name {
			return d, true
		}
	}
	return Detail{}, false
}

// Colors flattens the palette into a key-name-to-final-hex map.
func (r *Result) Colors() map[string]string {
	out := make(map[string]string, len(r.Keys))
	for _, d := range r.Keys {
		out[d.Key.Name] = d.FinalHex
	}
	return out
}
