package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensensorlab/sensordeck/pkg/skin"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List registered panel skins",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range skin.Names() {
			def, _ := skin.Lookup(name)
			fmt.Printf("%-12s %s\n", name, def.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skinsCmd)
}
