package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/themedb"
)

var themesNamesOnly bool

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.Flags().BoolVar(&themesNamesOnly, "names", false, "print theme names only, one per line")
}

var themesCmd = &cobra.Command{
	Use:   "themes [query]",
	Short: "List the bundled marketplace themes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if themesNamesOnly {
			return writeNames(os.Stdout)
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		themes, err := themedb.Search(query)
		if err != nil {
			return err
		}

		if jsonOut {
			return writeJSON(os.Stdout, themes)
		}

		headers := []string{"NAME", "TYPE", "EDITOR BACKGROUND"}
		rows := make([][]string, 0, len(themes))
		for _, t := range themes {
			rows = append(rows, []string{t.Name, t.Type, swatch(t.Colors["editor.background"])})
		}
		return writeTable(os.Stdout, headers, rows)
	},
}

func writeNames(out io.Writer) error {
	names, err := themedb.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
