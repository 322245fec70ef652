package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/scheme"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: "Write a starter config into the current directory. The workspace " +
		"identifier defaults to the directory name; when that is empty or " +
		"unusable a random identifier is generated instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "tint.yaml"
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		workspace := workspaceIdentifier()
		content := fmt.Sprintf(`workspace: %s
style: %s
harmony: %s
method: hueShift
theme_type: %s
blend_factor: 0.35
targets:
  - titleBar
  - statusBar
  - activityBar
`, workspace, scheme.DefaultStyle, scheme.DefaultHarmony, scheme.DefaultThemeType)

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info().Str("path", path).Str("workspace", workspace).Msg("config written")
		return nil
	},
}

func workspaceIdentifier() string {
	wd, err := os.Getwd()
	if err == nil {
		if base := strings.TrimSpace(filepath.Base(wd)); base != "" && base != "." && base != string(filepath.Separator) {
			return base
		}
	}
	return "ws-" + uuid.NewString()[:8]
}
