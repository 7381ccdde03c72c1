package cmd

import (
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"github.com/opensensorlab/sensordeck/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Launch the demo panel viewer",
	Long: `Launch the interactive panel viewer with the synthetic metric
simulator.

Shortcuts: S next skin, T next theme, F toggle item frames,
Space pause animation, Q or Escape quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		viewer, err := ui.New(newLogger())
		if err != nil {
			return err
		}
		go func() {
			if err := viewer.Run(); err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
