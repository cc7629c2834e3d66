package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/solid/sink"
)

// layoutCommand creates the layout command: compute the placement plan and
// print it as JSON without building any geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		input   string
		compact bool
		strict  bool
		config  configOpts
	)

	cmd := &cobra.Command{
		Use:   "layout [text]",
		Short: "Compute the dot placement plan as JSON",
		Long: `Layout runs only the placement stage: it prints every cell and dot
position plus the backing-plate geometry as JSON, without tessellating any
geometry. Useful for inspecting spacing decisions or for feeding a custom
geometry backend.`,
		Example: `  dotforge layout "Hello world"
  dotforge layout "EXIT" --profile signage --compact
  dotforge layout --input label.txt -o plan.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, input)
			if err != nil {
				return err
			}
			cfg, err := config.resolve(cmd)
			if err != nil {
				return err
			}
			if strict {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			plan := layout.Layout(text, cfg)
			for _, u := range plan.Unmapped {
				c.Logger.Warn("no braille pattern for character, emitting blank cell", "char", string(u))
			}

			jsonOpts := []sink.JSONOption{sink.WithJSONText(text)}
			if compact {
				jsonOpts = append(jsonOpts, sink.WithJSONCompact())
			}
			data, err := sink.RenderJSON(plan, jsonOpts...)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}
			printSuccess("Wrote placement plan")
			printFile(output)
			printStats(len(plan.Cells), len(plan.Dots), 0, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan to a file instead of stdout")
	cmd.Flags().StringVarP(&input, "input", "i", "", "read text from file")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON without indentation")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-positive dimensions before layout")
	config.register(cmd)

	return cmd
}
