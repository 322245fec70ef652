package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tinthq/tint/internal/scheme"
	"github.com/tinthq/tint/internal/tint"
)

func TestWriteTableAligns(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"KEY", "VALUE"}, [][]string{
		{"titleBar.activeBackground", "#112233"},
		{"statusBar.background", "#445566"},
	})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Fatalf("missing header: %q", lines[0])
	}
}

func TestFormatYesNo(t *testing.T) {
	if formatYesNo(true) != "yes" || formatYesNo(false) != "no" {
		t.Fatal("formatYesNo broken")
	}
}

func TestWriteResultIncludesEveryKey(t *testing.T) {
	result, err := tint.Compute(tint.Params{
		WorkspaceID: "my-project",
		Targets:     []scheme.Element{scheme.ElementTitleBar},
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, result); err != nil {
		t.Fatalf("writeResult: %v", err)
	}
	out := buf.String()
	for _, k := range scheme.Keys() {
		if !strings.Contains(out, k.Name) {
			t.Fatalf("output missing key %s:\n%s", k.Name, out)
		}
	}
	if !strings.Contains(out, "base hue") {
		t.Fatalf("output missing base hue header:\n%s", out)
	}
}

func TestWriteNamesListsThemes(t *testing.T) {
	var buf bytes.Buffer
	if err := writeNames(&buf); err != nil {
		t.Fatalf("writeNames: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 20 {
		t.Fatalf("expected one line per theme, got %d", len(lines))
	}
	if !strings.Contains(buf.String(), "Nord") {
		t.Fatalf("names missing Nord:\n%s", buf.String())
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	result, err := tint.Compute(tint.Params{WorkspaceID: "my-project"})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, result); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\"BaseHue\"") {
		t.Fatalf("JSON missing BaseHue:\n%s", buf.String())
	}
}
