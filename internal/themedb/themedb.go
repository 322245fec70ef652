// Package themedb bundles a static database of marketplace editor themes.
// Entries are pure data: a sparse color-key map per theme, always including
// the editor background, used as blend targets by the tint engine.
package themedb

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed themes.json
var themeFS embed.FS

// Theme is one marketplace theme entry.
type Theme struct {
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Colors map[string]string `json:"colors"`
}

var (
	decodeOnce sync.Once
	decodeErr  error
	themes     []Theme
	byName     map[string]Theme
)

// decode parses the embedded database on first access. Keeping the JSON
// encoded until someone asks for it keeps startup cost off callers that
// never touch the database.
func decode() error {
	decodeOnce.Do(func() {
		data, err := themeFS.ReadFile("themes.json")
		if err != nil {
			decodeErr = fmt.Errorf("read theme database: %w", err)
			return
		}
		if err := json.Unmarshal(data, &themes); err != nil {
			decodeErr = fmt.Errorf("parse theme database: %w", err)
			return
		}
		sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
		byName = make(map[string]Theme, len(themes))
		for _, t := range themes {
			byName[strings.ToLower(t.Name)] = t
		}
	})
	return decodeErr
}

// All returns every bundled theme, sorted by name.
func All() ([]Theme, error) {
	if err := decode(); err != nil {
		return nil, err
	}
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out, nil
}

// Lookup finds a theme by name, case-insensitively.
func Lookup(name string) (Theme, bool) {
	if decode() != nil {
		return Theme{}, false
	}
	t, ok := byName[strings.ToLower(name)]
	return t, ok
}

// Search returns the themes whose names contain the query,
// case-insensitively. An empty query matches everything.
func Search(query string) ([]Theme, error) {
	if err := decode(); err != nil {
		return nil, err
	}
	query = strings.ToLower(query)
	var out []Theme
	for _, t := range themes {
		if strings.Contains(strings.ToLower(t.Name), query) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Names lists the bundled theme names in sorted order.
func Names() ([]string, error) {
	if err := decode(); err != nil {
		return nil, err
	}
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = t.Name
	}
	return out, nil
}
