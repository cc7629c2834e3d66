package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotforge/dotforge/pkg/braille/layout"
)

// encodeCommand creates the encode command: print the braille cell sequence
// as Unicode braille glyphs, one output line per input line.
func (c *CLI) encodeCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Print the braille translation as Unicode glyphs",
		Long: `Encode runs the same cell translation as generate, including the
capitalization markers and word-gap cells, and prints the result as Unicode
braille characters. A quick way to check what a model will say before
printing it.`,
		Example: `  dotforge encode "Hello world"
  dotforge encode "FIRE EXIT\nKeep clear"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, input)
			if err != nil {
				return err
			}

			plan := layout.Layout(text, layout.DefaultConfig())
			for _, u := range plan.Unmapped {
				printWarning("no braille pattern for %q, emitted blank cell", string(u))
			}

			lines := make([]strings.Builder, plan.Lines)
			for _, cell := range plan.Cells {
				lines[cell.Line].WriteRune(cell.Pattern.Rune())
			}
			for i := range lines {
				fmt.Println(lines[i].String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read text from file")

	return cmd
}
