package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/pipeline"
)

// defaultOutputBase is the output base path when -o is not given.
const defaultOutputBase = "braille"

// artifactExt maps a pipeline format to its output file extension.
var artifactExt = map[string]string{
	pipeline.FormatSTL:      "stl",
	pipeline.FormatSTLASCII: "ascii.stl",
	pipeline.FormatOBJ:      "obj",
	pipeline.FormatSCAD:     "scad",
	pipeline.FormatJSON:     "json",
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string     // output file (single format) or base path
	formats  []string   // output formats: stl, stla, obj, scad, json
	segments int        // dome tessellation density
	name     string     // solid/object name in mesh outputs
	input    string     // read text from file instead of argument
	noCache  bool       // disable the artifact cache
	refresh  bool       // recompute even if cached
	strict   bool       // validate configuration before layout
	config   configOpts // spacing configuration
}

// generateCommand creates the generate command: text in, model files out.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{segments: pipeline.DefaultSegments}

	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate a tactile braille model from text",
		Long: `Generate converts text into a 3D braille model: one dome per raised dot,
laid out on a backing plate sized to fit the text plus padding.

Lines are split on newlines (the sequence \n in the argument works too) and
words on spaces. Capitalized words are preceded by the braille capitalization
marker; all-caps words by a double marker.`,
		Example: `  dotforge generate "Hello world"
  dotforge generate "EXIT" --profile signage -f stl,scad -o exit-sign
  dotforge generate --input label.txt --dot-radius 0.75`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			text, err := readText(args, opts.input)
			if err != nil {
				return err
			}
			cfg, err := opts.config.resolve(cmd)
			if err != nil {
				return err
			}

			popts := pipeline.Options{
				Text:     text,
				Config:   cfg,
				Formats:  opts.formats,
				Segments: opts.segments,
				Name:     opts.name,
				Strict:   opts.strict,
				Refresh:  opts.refresh,
				Logger:   c.Logger,
			}
			return c.runGenerate(cmd.Context(), &opts, popts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): stl (default), stla, obj, scad, json (comma-separated)")
	cmd.Flags().IntVar(&opts.segments, "segments", opts.segments, "dome tessellation segments")
	cmd.Flags().StringVar(&opts.name, "name", "", "solid name embedded in mesh outputs")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read text from file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute artifacts even if cached")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject non-positive dimensions before layout")
	opts.config.register(cmd)

	return cmd
}

// runGenerate executes the pipeline and writes the artifacts to disk.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts, popts pipeline.Options) error {
	p := newProgress(c.Logger)

	runner := c.newRunner(opts.noCache)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	for _, u := range result.Plan.Unmapped {
		printWarning("no braille pattern for %q, emitted blank cell", string(u))
	}

	if result.Plan.Empty() {
		printWarning("Nothing to place: the input contains no encodable characters")
		return nil
	}

	written := make([]string, 0, len(popts.Formats))
	for _, format := range popts.Formats {
		path, err := outputPath(opts.output, format, len(popts.Formats) > 1)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		written = append(written, path)
	}

	p.done(fmt.Sprintf("Generated %d artifact(s)", len(written)))
	printSuccess("Generated braille model")
	for _, path := range written {
		printFile(path)
	}
	stats := result.Stats
	printStats(stats.CellCount, stats.DotCount, stats.TriangleCount,
		result.CacheInfo.Hits == len(popts.Formats))
	plate := result.Plan.Plate
	printDetail("plate %.1f × %.1f × %.1f mm", plate.Width, plate.Depth, plate.Height)

	return nil
}

// outputPath derives the output file path for one format. A single-format
// run with an explicit -o that already carries an extension uses it as-is;
// everything else appends the format's extension to the base path.
func outputPath(output, format string, multi bool) (string, error) {
	base := output
	if base == "" {
		base = defaultOutputBase
	}
	if err := errors.ValidateOutputPath(base); err != nil {
		return "", err
	}

	if !multi && output != "" && filepath.Ext(output) != "" {
		return output, nil
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + artifactExt[format], nil
}
