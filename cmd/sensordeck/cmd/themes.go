package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensensorlab/sensordeck/pkg/preset"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

var themesDir string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme presets",
	Long:  `List the built-in theme presets plus any loaded from a preset directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := preset.NewStore()
		if themesDir != "" {
			if err := store.LoadDir(themesDir); err != nil {
				return err
			}
		}
		for _, name := range store.Names() {
			t, _ := store.Get(name)
			fmt.Printf("%-12s bg %s  fg %s  accent %s\n",
				name,
				theme.FormatColor(t.Color(0)),
				theme.FormatColor(t.Color(1)),
				theme.FormatColor(t.Color(2)),
			)
		}
		return nil
	},
}

func init() {
	themesCmd.Flags().StringVar(&themesDir, "dir", "", "extra preset directory to load")
	rootCmd.AddCommand(themesCmd)
}
