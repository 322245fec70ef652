package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tinthq/tint/internal/scheme"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "style: pastel\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style != "pastel" {
		t.Fatalf("style = %q", cfg.Style)
	}
	if cfg.Harmony != string(scheme.DefaultHarmony) {
		t.Fatalf("harmony default = %q", cfg.Harmony)
	}
	if cfg.BlendFactor != 0.35 {
		t.Fatalf("blend factor default = %v", cfg.BlendFactor)
	}
	if len(cfg.Targets) != 3 {
		t.Fatalf("targets default = %v", cfg.Targets)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("log defaults = %+v", cfg.Log)
	}
}

func TestLoadFullFile(t *testing.T) {
	yaml := `workspace: my-project
seed: 7
style: vibrant
harmony: triadic
method: overlay
theme_type: light
theme: Nord
blend_factor: 0.5
hue_only: true
targets:
  - titleBar
  - statusBar
theme_colors:
  editor.background: "#282C34"
blend_factors:
  statusBar: 0.1
log:
  level: debug
  format: json
`
	cfg, err := Load(writeConfig(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workspace != "my-project" || cfg.Seed != 7 {
		t.Fatalf("workspace/seed = %q/%d", cfg.Workspace, cfg.Seed)
	}
	if cfg.Style != "vibrant" || cfg.Harmony != "triadic" || cfg.ThemeType != "light" {
		t.Fatalf("enums = %q/%q/%q", cfg.Style, cfg.Harmony, cfg.ThemeType)
	}
	if cfg.Theme != "Nord" || cfg.BlendFactor != 0.5 || !cfg.HueOnly {
		t.Fatalf("theme/blend = %q/%v/%v", cfg.Theme, cfg.BlendFactor, cfg.HueOnly)
	}
	if cfg.ThemeColors["editor.background"] != "#282C34" {
		t.Fatalf("theme colors = %v", cfg.ThemeColors)
	}
	if cfg.BlendFactors["statusBar"] != 0.1 {
		t.Fatalf("blend factors = %v", cfg.BlendFactors)
	}
	if len(cfg.TargetElements()) != 2 {
		t.Fatalf("target elements = %v", cfg.TargetElements())
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log = %+v", cfg.Log)
	}
}

func TestLoadKeepsDottedThemeColorKeys(t *testing.T) {
	yaml := `theme_colors:
  editor.background: "#282C34"
  titleBar.activeBackground: "#112233"
`
	cfg, err := Load(writeConfig(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ThemeColors["editor.background"] != "#282C34" {
		t.Fatalf("editor.background = %q", cfg.ThemeColors["editor.background"])
	}
	// Canonical casing survives viper's key lowercasing.
	if cfg.ThemeColors["titleBar.activeBackground"] != "#112233" {
		t.Fatalf("theme colors = %v", cfg.ThemeColors)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TINT_LOG_LEVEL", "warn")
	cfg, err := Load(writeConfig(t, "style: pastel\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level = %q, want env override", cfg.Log.Level)
	}
}

func TestLoadNormalizesUnknownEnums(t *testing.T) {
	yaml := `style: sparkly
harmony: quadratic
theme_type: sepia
targets:
  - titleBar
  - kitchenSink
  - editor
`
	cfg, err := Load(writeConfig(t, yaml))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style != string(scheme.DefaultStyle) {
		t.Fatalf("style = %q, want default", cfg.Style)
	}
	if cfg.Harmony != string(scheme.DefaultHarmony) {
		t.Fatalf("harmony = %q, want default", cfg.Harmony)
	}
	if cfg.ThemeType != string(scheme.DefaultThemeType) {
		t.Fatalf("theme type = %q, want default", cfg.ThemeType)
	}
	// Unknown targets drop; the editor is never a tint target.
	if len(cfg.Targets) != 1 || cfg.Targets[0] != "titleBar" {
		t.Fatalf("targets = %v", cfg.Targets)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
