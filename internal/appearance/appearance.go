// Package appearance detects the ambient OS dark/light mode. The tint
// engine itself never calls out here; callers resolve an appearance first
// and pass the resulting theme type in.
package appearance

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
)

// Appearance is a detected system color mode.
type Appearance string

const (
	Dark    Appearance = "dark"
	Light   Appearance = "light"
	Unknown Appearance = "unknown"
)

// Detector resolves the ambient appearance.
type Detector interface {
	Detect(ctx context.Context) (Appearance, error)
}

// Executor runs a system command and returns its stdout.
type Executor interface {
	Exec(ctx context.Context, name string, args ...string) ([]byte, error)
}

type systemExecutor struct{}

func (systemExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CommandDetector shells out to the platform's settings store: the macOS
// defaults database or the GNOME color-scheme preference.
type CommandDetector struct {
	exec Executor
	goos string
}

// NewCommandDetector creates a detector for the current platform. A nil
// executor uses the real system commands.
func NewCommandDetector(exec Executor) *CommandDetector {
	if exec == nil {
		exec = systemExecutor{}
	}
	return &CommandDetector{exec: exec, goos: runtime.GOOS}
}

// Detect queries the OS setting. Absent or unreadable settings report
// Light on macOS (the key only exists in dark mode) and Unknown elsewhere.
func (d *CommandDetector) Detect(ctx context.Context) (Appearance, error) {
	switch d.goos {
	case "darwin":
		out, err := d.exec.Exec(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			// The key is unset in light mode, so the read failing is the
			// light-mode signal.
			return Light, nil
		}
		if strings.EqualFold(strings.TrimSpace(string(out)), "dark") {
			return Dark, nil
		}
		return Light, nil
	case "linux":
		out, err := d.exec.Exec(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return Unknown, err
		}
		scheme := strings.Trim(strings.TrimSpace(string(out)), "'")
		switch {
		case strings.Contains(scheme, "dark"):
			return Dark, nil
		case strings.Contains(scheme, "light"), scheme == "default":
			return Light, nil
		}
		return Unknown, nil
	}
	return Unknown, nil
}

// TerminalDetector infers the appearance from the terminal background
// color, as a fallback when no OS setting is reachable.
type TerminalDetector struct{}

// Detect never fails; a terminal always has some background.
func (TerminalDetector) Detect(ctx context.Context) (Appearance, error) {
	if termenv.HasDarkBackground() {
		return Dark, nil
	}
	return Light, nil
}
