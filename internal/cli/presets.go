package cli

import (
	"fmt"

	"github.com/appkit-labs/appkit/internal/preset"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List dependency presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range preset.Names() {
			p, err := preset.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", p.Name, p.Description)
			for _, d := range p.Dependencies {
				version := d.Version
				if version == "" {
					version = "latest"
				}
				kind := ""
				if d.Dev {
					kind = " (dev)"
				}
				fmt.Fprintf(out, "  %s@%s%s\n", d.Name, version, kind)
			}
		}
		return nil
	},
}
