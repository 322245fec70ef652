package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/blend"
	"github.com/tinthq/tint/internal/scheme"
	"github.com/tinthq/tint/internal/themedb"
	"github.com/tinthq/tint/internal/tint"
)

var (
	computeBaseHue     float64
	computeStyle       string
	computeHarmony     string
	computeMethod      string
	computeThemeType   string
	computeTheme       string
	computeBlendFactor float64
	computeSeed        int64
	computeTargets     []string
	computeHueOnly     bool
)

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().Float64Var(&computeBaseHue, "base-hue", -1, "pin the base hue in degrees instead of hashing the workspace")
	computeCmd.Flags().StringVar(&computeStyle, "style", "", "color style (pastel, vibrant, muted, ...)")
	computeCmd.Flags().StringVar(&computeHarmony, "harmony", "", "hue harmony (uniform, duotone, triadic, ...)")
	computeCmd.Flags().StringVar(&computeMethod, "method", "", "blend method (overlay or hueShift)")
	computeCmd.Flags().StringVar(&computeThemeType, "theme-type", "", "dark or light")
	computeCmd.Flags().StringVar(&computeTheme, "theme", "", "bundled theme to blend toward")
	computeCmd.Flags().Float64Var(&computeBlendFactor, "blend-factor", -1, "blend weight toward the theme color")
	computeCmd.Flags().Int64Var(&computeSeed, "seed", 0, "hue seed")
	computeCmd.Flags().StringSliceVar(&computeTargets, "target", nil, "elements to enable (repeatable)")
	computeCmd.Flags().BoolVar(&computeHueOnly, "hue-only", false, "shift hue only, keeping tint lightness and chroma")
}

var computeCmd = &cobra.Command{
	Use:   "compute [workspace-id]",
	Short: "Compute the palette for a workspace",
	Long: "Compute the full palette for a workspace identifier. Without an " +
		"argument the identifier comes from the config file or the working " +
		"directory name.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := buildParams(cmd, args)
		if err != nil {
			return err
		}

		result, err := tint.Compute(params)
		if err != nil {
			return err
		}
		logger.Debug().
			Float64("base_hue", result.BaseHue).
			Str("base_tint", result.BaseTintHex).
			Int("keys", len(result.Keys)).
			Msg("palette computed")

		if jsonOut {
			return writeJSON(os.Stdout, result)
		}
		return writeResult(os.Stdout, result)
	},
}

func buildParams(cmd *cobra.Command, args []string) (tint.Params, error) {
	cfg := GetConfig()

	params := tint.Params{
		Seed:        cfg.Seed,
		ThemeType:   scheme.ThemeType(cfg.ThemeType),
		Style:       scheme.Style(cfg.Style),
		Harmony:     scheme.Harmony(cfg.Harmony),
		Method:      blend.Method(cfg.Method),
		HueOnly:     cfg.HueOnly,
		Targets:     cfg.TargetElements(),
		ThemeColors: map[string]string{},
	}

	switch {
	case len(args) == 1:
		params.WorkspaceID = args[0]
	case cfg.Workspace != "":
		params.WorkspaceID = cfg.Workspace
	default:
		wd, err := os.Getwd()
		if err != nil {
			return tint.Params{}, fmt.Errorf("resolve working directory: %w", err)
		}
		params.WorkspaceID = filepath.Base(wd)
	}

	if cmd.Flags().Changed("base-hue") {
		hue := computeBaseHue
		params.BaseHue = &hue
		params.WorkspaceID = ""
	}
	if cmd.Flags().Changed("seed") {
		params.Seed = computeSeed
	}
	if computeStyle != "" {
		params.Style = scheme.ParseStyle(computeStyle)
	}
	if computeHarmony != "" {
		params.Harmony = scheme.ParseHarmony(computeHarmony)
	}
	if computeMethod != "" {
		params.Method = blend.ParseMethod(computeMethod)
	}
	if computeThemeType != "" {
		params.ThemeType = scheme.ParseThemeType(computeThemeType)
	}
	if computeHueOnly {
		params.HueOnly = true
	}

	if len(computeTargets) > 0 {
		params.Targets = nil
		for _, t := range computeTargets {
			if e, ok := scheme.ParseElement(t); ok && e != scheme.ElementEditor {
				params.Targets = append(params.Targets, e)
			} else {
				logger.Warn().Str("target", t).Msg("ignoring unknown target")
			}
		}
	}

	themeName := cfg.Theme
	if computeTheme != "" {
		themeName = computeTheme
	}
	if themeName != "" {
		theme, ok := themedb.Lookup(themeName)
		if !ok {
			return tint.Params{}, fmt.Errorf("unknown theme %q (try 'tint themes')", themeName)
		}
		for key, hex := range theme.Colors {
			params.ThemeColors[key] = hex
		}
		if computeThemeType == "" {
			params.ThemeType = scheme.ParseThemeType(theme.Type)
		}
	}
	for key, hex := range cfg.ThemeColors {
		params.ThemeColors[key] = hex
	}
	if len(params.ThemeColors) == 0 {
		params.ThemeColors = nil
	}

	factor := cfg.BlendFactor
	if cmd.Flags().Changed("blend-factor") {
		factor = computeBlendFactor
	}
	params.BlendFactor = &factor

	if len(cfg.BlendFactors) > 0 {
		params.BlendFactors = map[scheme.Element]float64{}
		for name, f := range cfg.BlendFactors {
			if e, ok := scheme.ParseElement(name); ok {
				params.BlendFactors[e] = f
			}
		}
	}

	return params, nil
}

func writeResult(out io.Writer, result *tint.Result) error {
	fmt.Fprintf(out, "base hue %.1f°  %s\n\n", result.BaseHue, swatch(result.BaseTintHex))

	headers := []string{"KEY", "ENABLED", "TINT", "THEME", "FACTOR", "FINAL"}
	rows := make([][]string, 0, len(result.Keys))
	for _, d := range result.Keys {
		theme := d.ThemeColor
		if theme == "" {
			theme = "-"
		}
		rows = append(rows, []string{
			d.Key.Name,
			formatYesNo(d.Enabled),
			d.TintHex,
			theme,
			fmt.Sprintf("%.2f", d.BlendFactor),
			swatch(d.FinalHex),
		})
	}
	return writeTable(out, headers, rows)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
