package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/profile"
)

// profilesCommand creates the profiles command listing built-in dimension
// profiles and their values.
func (c *CLI) profilesCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in dimension profiles",
		Long: `Profiles lists the built-in dimension profiles and their spacing values.
With --profile-file, it shows the effective configuration of a custom TOML
profile instead (unset keys inherit from the standard profile).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				cfg, err := profile.Load(file)
				if err != nil {
					return err
				}
				fmt.Println(StyleTitle.Render(file))
				printConfig(cfg)
				return nil
			}

			for i, name := range profile.Names() {
				if i > 0 {
					fmt.Println()
				}
				cfg, err := profile.Get(name)
				if err != nil {
					return err
				}
				title := name
				if name == profile.Standard {
					title += " (default)"
				}
				fmt.Println(StyleTitle.Render(title))
				printConfig(cfg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "profile-file", "", "show the effective configuration of a TOML profile file")

	return cmd
}

// printConfig prints each dimension of a layout configuration, in mm.
func printConfig(cfg layout.Config) {
	mm := func(v float64) string { return fmt.Sprintf("%g mm", v) }
	printKeyValue("dot radius", mm(cfg.DotRadius))
	printKeyValue("dot height", mm(cfg.DotHeight))
	printKeyValue("dot spacing x", mm(cfg.DotSpacingX))
	printKeyValue("dot spacing y", mm(cfg.DotSpacingY))
	printKeyValue("cell spacing", mm(cfg.CellSpacingX))
	printKeyValue("line spacing", mm(cfg.LineSpacingY))
	printKeyValue("base height", mm(cfg.BaseHeight))
	printKeyValue("padding x", mm(cfg.PaddingX))
	printKeyValue("padding y", mm(cfg.PaddingY))
}
