// Package profile provides named braille dimension profiles.
//
// A profile is a complete layout configuration. Built-in profiles cover the
// common use cases; custom profiles are TOML files using the same keys as
// the built-ins (dot_radius, cell_spacing_x, ...). Custom profiles inherit
// unset keys from the standard profile, so a file only needs to override
// what differs.
package profile

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
)

// Standard is the name of the default profile.
const Standard = "standard"

// builtins holds the built-in dimension profiles. All dimensions are
// millimeters.
var builtins = map[string]layout.Config{
	// standard is sized for desktop labels and test prints.
	"standard": layout.DefaultConfig(),

	// signage uses larger dots and wider cells for wall-mounted signs.
	"signage": {
		DotRadius:    0.85,
		DotHeight:    0.77,
		DotSpacingX:  2.5,
		DotSpacingY:  2.5,
		CellSpacingX: 7.0,
		LineSpacingY: 10.0,
		BaseHeight:   3.0,
		PaddingX:     3.0,
		PaddingY:     3.0,
	},

	// compact trades tactile comfort for footprint, for small tags.
	"compact": {
		DotRadius:    0.4,
		DotHeight:    0.4,
		DotSpacingX:  2.0,
		DotSpacingY:  2.0,
		CellSpacingX: 5.0,
		LineSpacingY: 8.0,
		BaseHeight:   2.0,
		PaddingX:     1.5,
		PaddingY:     1.5,
	},
}

// Default returns the standard profile's configuration.
func Default() layout.Config {
	return builtins[Standard]
}

// Get returns the named built-in profile.
func Get(name string) (layout.Config, error) {
	if err := errors.ValidateProfileName(name); err != nil {
		return layout.Config{}, err
	}
	cfg, ok := builtins[name]
	if !ok {
		return layout.Config{}, errors.New(errors.ErrCodeInvalidProfile,
			"unknown profile: %q (available: %v)", name, Names())
	}
	return cfg, nil
}

// Names returns the built-in profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a TOML profile file. Keys not present in the file keep their
// standard-profile values; keys that are not layout options are rejected.
func Load(path string) (layout.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile file %s", path)
		}
		return layout.Config{}, errors.Wrap(errors.ErrCodeInternal, err, "read profile file %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML profile data, inheriting unset keys from the standard
// profile.
func Parse(data []byte) (layout.Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "parse profile")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return layout.Config{}, errors.New(errors.ErrCodeInvalidProfile,
			"unknown profile key: %s", undecoded[0].String())
	}
	return cfg, nil
}
