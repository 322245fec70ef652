package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinthq/tint/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [workspace-id]",
	Short: "Browse palettes interactively",
	Long: "Launch an interactive palette browser. Keys cycle the style, " +
		"harmony and theme type live against the computed palette.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return cmd.Help()
		}

		params, err := buildParams(cmd, args)
		if err != nil {
			return err
		}
		return tui.Run(params)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
