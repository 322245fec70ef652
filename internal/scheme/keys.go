// Package scheme holds the static configuration tables of the tint engine:
// the managed color keys and the style and harmony lookup tables that shape
// a base hue into a per-surface palette.
package scheme

import "strings"

// Element identifies a UI surface whose colors stay hue-harmonized as a
// group.
type Element string

const (
	ElementTitleBar    Element = "titleBar"
	ElementStatusBar   Element = "statusBar"
	ElementActivityBar Element = "activityBar"
	ElementSideBar     Element = "sideBar"
	ElementEditor      Element = "editor"
)

// ColorType classifies the channel a key colors.
type ColorType string

const (
	TypeBackground ColorType = "background"
	TypeForeground ColorType = "foreground"
	TypeBorder     ColorType = "border"
)

// Key is a managed color key with its static metadata. Palette marks the
// keys that define the palette proper; foregrounds and borders derive from
// their element's background.
type Key struct {
	Name    string
	Element Element
	Type    ColorType
	Palette bool
}

// managedKeys lists every key the engine computes, in a stable order. The
// editor element is a theme-fallback source only and carries no managed
// keys.
var managedKeys = []Key{
	{Name: "titleBar.activeBackground", Element: ElementTitleBar, Type: TypeBackground, Palette: true},
	{Name: "titleBar.activeForeground", Element: ElementTitleBar, Type: TypeForeground},
	{Name: "titleBar.inactiveBackground", Element: ElementTitleBar, Type: TypeBackground},
	{Name: "titleBar.inactiveForeground", Element: ElementTitleBar, Type: TypeForeground},
	{Name: "titleBar.border", Element: ElementTitleBar, Type: TypeBorder},
	{Name: "statusBar.background", Element: ElementStatusBar, Type: TypeBackground, Palette: true},
	{Name: "statusBar.foreground", Element: ElementStatusBar, Type: TypeForeground},
	{Name: "statusBar.border", Element: ElementStatusBar, Type: TypeBorder},
	{Name: "activityBar.background", Element: ElementActivityBar, Type: TypeBackground, Palette: true},
	{Name: "activityBar.foreground", Element: ElementActivityBar, Type: TypeForeground},
	{Name: "activityBar.border", Element: ElementActivityBar, Type: TypeBorder},
	{Name: "sideBar.background", Element: ElementSideBar, Type: TypeBackground, Palette: true},
	{Name: "sideBar.foreground", Element: ElementSideBar, Type: TypeForeground},
	{Name: "sideBar.border", Element: ElementSideBar, Type: TypeBorder},
}

// Keys returns every managed key in stable order.
func Keys() []Key {
	out := make([]Key, len(managedKeys))
	copy(out, managedKeys)
	return out
}

// KeyByName looks up a managed key by its name.
func KeyByName(name string) (Key, bool) {
	for _, k := range managedKeys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// TargetElements lists the elements that can be requested as tint targets.
func TargetElements() []Element {
	return []Element{ElementTitleBar, ElementStatusBar, ElementActivityBar, ElementSideBar}
}

// ParseElement maps a string onto an Element. Matching is case-insensitive
// because config layers (viper in particular) lowercase map keys. Unknown
// values report false rather than failing.
func ParseElement(s string) (Element, bool) {
	for _, e := range []Element{ElementTitleBar, ElementStatusBar, ElementActivityBar, ElementSideBar, ElementEditor} {
		if strings.EqualFold(s, string(e)) {
			return e, true
		}
	}
	return "", false
}

// CanonicalKeyName restores the canonical casing of a color key name,
// matching case-insensitively over the managed keys and the editor
// fallback keys.
func CanonicalKeyName(name string) (string, bool) {
	for _, k := range managedKeys {
		if strings.EqualFold(name, k.Name) {
			return k.Name, true
		}
	}
	for _, n := range []string{"editor.background", "editor.foreground"} {
		if strings.EqualFold(name, n) {
			return n, true
		}
	}
	return "", false
}

// fallbackKeys maps a key to the key it borrows a theme color from when its
// own entry is missing: inactive title bar surfaces fall back to their
// active counterparts.
var fallbackKeys = map[string]string{
	"titleBar.inactiveBackground": "titleBar.activeBackground",
	"titleBar.inactiveForeground": "titleBar.activeForeground",
}

// FallbackKey returns the in-element fallback for a key name, if any.
func FallbackKey(name string) (string, bool) {
	fb, ok := fallbackKeys[name]
	return fb, ok
}

// EditorFallback names the theme's editor-level fallback for a color type.
// Borders have no editor counterpart.
func EditorFallback(t ColorType) (string, bool) {
	switch t {
	case TypeBackground:
		return "editor.background", true
	case TypeForeground:
		return "editor.foreground", true
	}
	return "", false
}
