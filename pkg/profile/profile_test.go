package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
)

func TestGet(t *testing.T) {
	cfg, err := Get(Standard)
	if err != nil {
		t.Fatalf("Get(standard) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, layout.DefaultConfig()) {
		t.Error("standard profile should match the layout defaults")
	}

	for _, name := range Names() {
		cfg, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) error: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("built-in profile %q is invalid: %v", name, err)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("braillezilla")
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidProfile)
	}
}

func TestGetInvalidName(t *testing.T) {
	for _, name := range []string{"", "UPPER", "has space", "dot.dot"} {
		if _, err := Get(name); !errors.Is(err, errors.ErrCodeInvalidProfile) {
			t.Errorf("Get(%q) code = %v, want %v", name, errors.GetCode(err), errors.ErrCodeInvalidProfile)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"compact", "signage", "standard"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("dot_radius = 1.2\nbase_height = 4.0\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.DotRadius != 1.2 || cfg.BaseHeight != 4.0 {
		t.Errorf("overridden keys = (%g, %g), want (1.2, 4.0)", cfg.DotRadius, cfg.BaseHeight)
	}
	// Unset keys inherit from the standard profile.
	if cfg.CellSpacingX != Default().CellSpacingX {
		t.Errorf("CellSpacingX = %g, want inherited %g", cfg.CellSpacingX, Default().CellSpacingX)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("dot_radiu = 1.2\n"))
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidProfile)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("dot_radius = = 1.2"))
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidProfile)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("padding_x = 3.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.PaddingX != 3.5 {
		t.Errorf("PaddingX = %g, want 3.5", cfg.PaddingX)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
