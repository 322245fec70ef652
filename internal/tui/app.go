// Package tui implements the interactive palette preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinthq/tint/internal/scheme"
	"github.com/tinthq/tint/internal/tint"
)

// Model is the bubbletea model for the palette preview.
type Model struct {
	params tint.Params
	styles Styles

	styleIdx   int
	harmonyIdx int

	result *tint.Result
	err    error
}

// NewModel builds a preview model around the given compute parameters.
func NewModel(params tint.Params) Model {
	m := Model{params: params, styles: DefaultStyles()}

	for i, s := range scheme.Styles() {
		if s == scheme.ParseStyle(string(params.Style)) {
			m.styleIdx = i
		}
	}
	for i, h := range scheme.Harmonies() {
		if h == scheme.ParseHarmony(string(params.Harmony)) {
			m.harmonyIdx = i
		}
	}

	m.recompute()
	return m
}

// Run starts the preview program.
func Run(params tint.Params) error {
	_, err := tea.NewProgram(NewModel(params), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) recompute() {
	m.params.Style = scheme.Styles()[m.styleIdx]
	m.params.Harmony = scheme.Harmonies()[m.harmonyIdx]
	m.result, m.err = tint.Compute(m.params)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.styleIdx = (m.styleIdx + 1) % len(scheme.Styles())
	case "k", "up":
		m.styleIdx = (m.styleIdx - 1 + len(scheme.Styles())) % len(scheme.Styles())
	case "l", "right":
		m.harmonyIdx = (m.harmonyIdx + 1) % len(scheme.Harmonies())
	case "h", "left":
		m.harmonyIdx = (m.harmonyIdx - 1 + len(scheme.Harmonies())) % len(scheme.Harmonies())
	case "t":
		if scheme.ParseThemeType(string(m.params.ThemeType)) == scheme.ThemeDark {
			m.params.ThemeType = scheme.ThemeLight
		} else {
			m.params.ThemeType = scheme.ThemeDark
		}
	case "+", "=":
		m.params.BlendFactor = adjustFactor(m.params.BlendFactor, 0.05)
	case "-":
		m.params.BlendFactor = adjustFactor(m.params.BlendFactor, -0.05)
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tint preview"))
	b.WriteString("\n\n")

	factor := tint.DefaultBlendFactor
	if m.params.BlendFactor != nil {
		factor = *m.params.BlendFactor
	}
	b.WriteString(fmt.Sprintf(
		"style %s   harmony %s   theme %s   blend %.2f   base hue %.1f°\n\n",
		m.styles.Value.Render(string(m.params.Style)),
		m.styles.Value.Render(string(m.params.Harmony)),
		m.styles.Value.Render(string(m.params.ThemeType)),
		factor,
		m.result.BaseHue,
	))

	lines := make([]string, 0, len(m.result.Keys))
	for _, d := range m.result.Keys {
		line := m.styles.Label.Render(d.Key.Name) + " " + Swatch(d.FinalHex, 10) + " " + d.FinalHex
		if !d.Enabled {
			line = m.styles.Muted.Render(line)
		}
		lines = append(lines, line)
	}
	b.WriteString(m.styles.Border.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render("j/k style  h/l harmony  t theme  +/- blend  q quit"))
	b.WriteString("\n")
	return b.String()
}

func adjustFactor(current *float64, delta float64) *float64 {
	v := tint.DefaultBlendFactor
	if current != nil {
		v = *current
	}
	v += delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return &v
}
