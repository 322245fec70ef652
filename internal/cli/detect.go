package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/appearance"
)

var detectTerminal bool

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().BoolVar(&detectTerminal, "terminal", false, "infer from the terminal background instead of the OS setting")
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the ambient dark/light appearance",
	RunE: func(cmd *cobra.Command, args []string) error {
		var detector appearance.Detector = appearance.NewCommandDetector(nil)
		if detectTerminal {
			detector = appearance.TerminalDetector{}
		}

		mode, err := detector.Detect(cmd.Context())
		if err != nil {
			logger.Debug().Err(err).Msg("OS appearance lookup failed, falling back to terminal")
			mode, _ = appearance.TerminalDetector{}.Detect(cmd.Context())
		}
		fmt.Println(mode)
		return nil
	},
}
