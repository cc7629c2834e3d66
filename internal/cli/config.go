package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/profile"
)

// configOpts holds the spacing-configuration flags shared by the generate
// and layout commands. Resolution order: built-in profile, then TOML profile
// file, then individual dimension flags on top.
type configOpts struct {
	profile string // built-in profile name
	file    string // TOML profile file (overrides --profile)

	dotRadius    float64
	dotHeight    float64
	dotSpacingX  float64
	dotSpacingY  float64
	cellSpacingX float64
	lineSpacingY float64
	baseHeight   float64
	paddingX     float64
	paddingY     float64
}

// register adds the configuration flags to cmd.
func (o *configOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.profile, "profile", "p", profile.Standard, "built-in dimension profile")
	cmd.Flags().StringVar(&o.file, "profile-file", "", "TOML profile file (overrides --profile)")

	cmd.Flags().Float64Var(&o.dotRadius, "dot-radius", 0, "dot base radius in mm")
	cmd.Flags().Float64Var(&o.dotHeight, "dot-height", 0, "dot dome height in mm")
	cmd.Flags().Float64Var(&o.dotSpacingX, "dot-spacing-x", 0, "pitch between dot columns in mm")
	cmd.Flags().Float64Var(&o.dotSpacingY, "dot-spacing-y", 0, "pitch between dot rows in mm")
	cmd.Flags().Float64Var(&o.cellSpacingX, "cell-spacing", 0, "pitch between cells in mm")
	cmd.Flags().Float64Var(&o.lineSpacingY, "line-spacing", 0, "pitch between lines in mm")
	cmd.Flags().Float64Var(&o.baseHeight, "base-height", 0, "backing plate thickness in mm")
	cmd.Flags().Float64Var(&o.paddingX, "padding-x", 0, "plate margin on the x-axis in mm")
	cmd.Flags().Float64Var(&o.paddingY, "padding-y", 0, "plate margin on the y-axis in mm")
}

// resolve computes the effective layout configuration from the flags.
func (o *configOpts) resolve(cmd *cobra.Command) (layout.Config, error) {
	var cfg layout.Config
	var err error

	if o.file != "" {
		cfg, err = profile.Load(o.file)
	} else {
		cfg, err = profile.Get(o.profile)
	}
	if err != nil {
		return layout.Config{}, err
	}

	overrides := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"dot-radius", &cfg.DotRadius, o.dotRadius},
		{"dot-height", &cfg.DotHeight, o.dotHeight},
		{"dot-spacing-x", &cfg.DotSpacingX, o.dotSpacingX},
		{"dot-spacing-y", &cfg.DotSpacingY, o.dotSpacingY},
		{"cell-spacing", &cfg.CellSpacingX, o.cellSpacingX},
		{"line-spacing", &cfg.LineSpacingY, o.lineSpacingY},
		{"base-height", &cfg.BaseHeight, o.baseHeight},
		{"padding-x", &cfg.PaddingX, o.paddingX},
		{"padding-y", &cfg.PaddingY, o.paddingY},
	}
	for _, ov := range overrides {
		if cmd.Flags().Changed(ov.flag) {
			*ov.dst = ov.src
		}
	}

	return cfg, nil
}

// readText resolves the input text from a positional argument or --input
// file. In a positional argument, the two-character sequence \n is expanded
// to a line break so multi-line labels can be passed without shell quoting
// tricks; file input is taken verbatim.
func readText(args []string, inputPath string) (string, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", inputPath)
			}
			return "", errors.Wrap(errors.ErrCodeInternal, err, "read input file %s", inputPath)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	if len(args) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "no input text: pass it as an argument or use --input")
	}
	return strings.ReplaceAll(args[0], `\n`, "\n"), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
