// Package pipeline provides the core model-generation pipeline for dotforge.
//
// This package implements the complete layout → build → render pipeline that
// turns input text into tactile braille model artifacts. Centralizing this
// logic keeps the CLI thin and the behavior consistent for library users.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: run the braille layout engine over the input text
//  2. Build: materialize the placement plan on the triangle-mesh backend
//  3. Render: serialize into the requested formats (STL, OBJ, SCAD, JSON)
//
// The build stage only runs when a mesh format was requested; plan formats
// (SCAD, JSON) render straight from the placement plan. An empty layout,
// meaning text with no encodable content, short-circuits the pipeline: no
// build, no render, no error.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Text:    "Hello world",
//	    Config:  profile.Default(),
//	    Formats: []string{pipeline.FormatSTL},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stl := result.Artifacts[pipeline.FormatSTL]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/solid/mesh"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultSegments is the default dome tessellation density.
	DefaultSegments = mesh.DefaultSegments

	// DefaultName is the solid/object name embedded in mesh outputs.
	DefaultName = "dotforge"
)

// Format constants for output formats.
const (
	FormatSTL      = "stl"  // binary STL
	FormatSTLASCII = "stla" // ASCII STL
	FormatOBJ      = "obj"  // Wavefront OBJ
	FormatSCAD     = "scad" // OpenSCAD script
	FormatJSON     = "json" // placement plan
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSTL:      true,
	FormatSTLASCII: true,
	FormatOBJ:      true,
	FormatSCAD:     true,
	FormatJSON:     true,
}

// meshFormats is the subset of formats that require the build stage.
var meshFormats = map[string]bool{
	FormatSTL:      true,
	FormatSTLASCII: true,
	FormatOBJ:      true,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for the model-generation pipeline.
type Options struct {
	// Text is the input text. Newlines split lines, spaces split words.
	Text string `json:"text"`

	// Config is the spacing configuration. The zero value is replaced by
	// the standard defaults.
	Config layout.Config `json:"config"`

	// Formats lists the output formats to render (default: stl).
	Formats []string `json:"formats,omitempty"`

	// Segments controls dome tessellation density (default: 32).
	Segments int `json:"segments,omitempty"`

	// Name is the solid/object name in mesh outputs (default: "dotforge").
	Name string `json:"name,omitempty"`

	// Strict validates the configuration (positive dimensions) before
	// layout. The engine itself never requires this.
	Strict bool `json:"strict,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Logger is the runtime logger (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSTL}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if (o.Config == layout.Config{}) {
		o.Config = layout.DefaultConfig()
	}
	if o.Strict {
		if err := o.Config.Validate(); err != nil {
			return err
		}
	}

	if o.Segments == 0 {
		o.Segments = DefaultSegments
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// NeedsMesh reports whether any requested format requires the build stage.
func (o *Options) NeedsMesh() bool {
	for _, f := range o.Formats {
		if meshFormats[f] {
			return true
		}
	}
	return false
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: stl, stla, obj, scad, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
