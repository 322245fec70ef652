package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/hash"
)

var hueSeed int64

func init() {
	rootCmd.AddCommand(hueCmd)
	hueCmd.Flags().Int64Var(&hueSeed, "seed", 0, "hue seed")
}

var hueCmd = &cobra.Command{
	Use:   "hue <identifier>",
	Short: "Print the base hue derived from an identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hue := hash.BaseHue(args[0], hueSeed)
		if jsonOut {
			fmt.Printf("{\"identifier\":%q,\"seed\":%d,\"hue\":%g}\n", args[0], hueSeed, hue)
			return nil
		}
		fmt.Printf("%g\n", hue)
		return nil
	},
}
