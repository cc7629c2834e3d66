package layout

import (
	"testing"

	"github.com/dotforge/dotforge/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dot radius", func(c *Config) { c.DotRadius = 0 }},
		{"negative dot height", func(c *Config) { c.DotHeight = -0.5 }},
		{"zero cell spacing", func(c *Config) { c.CellSpacingX = 0 }},
		{"negative line spacing", func(c *Config) { c.LineSpacingY = -10 }},
		{"zero base height", func(c *Config) { c.BaseHeight = 0 }},
		{"negative padding", func(c *Config) { c.PaddingX = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLayoutAcceptsInvalidConfig(t *testing.T) {
	// The engine itself never rejects a configuration; validation is opt-in.
	var zero Config
	plan := Layout("abc", zero)
	if len(plan.Cells) != 3 {
		t.Errorf("got %d cells, want 3", len(plan.Cells))
	}
}
