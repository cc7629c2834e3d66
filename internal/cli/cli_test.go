package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/pipeline"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		format  string
		multi   bool
		want    string
		wantErr bool
	}{
		{"default base", "", pipeline.FormatSTL, false, "braille.stl", false},
		{"explicit extension kept", "sign.stl", pipeline.FormatSTL, false, "sign.stl", false},
		{"base without extension", "sign", pipeline.FormatOBJ, false, "sign.obj", false},
		{"ascii stl extension", "", pipeline.FormatSTLASCII, false, "braille.ascii.stl", false},
		{"multi ignores extension", "sign.stl", pipeline.FormatSCAD, true, "sign.scad", false},
		{"multi default base", "", pipeline.FormatJSON, true, "braille.json", false},
		{"traversal rejected", "../escape", pipeline.FormatSTL, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPath(tt.output, tt.format, tt.multi)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); got != nil {
		t.Errorf("parseFormats(\"\") = %v, want nil", got)
	}
	if got := parseFormats("stl"); !reflect.DeepEqual(got, []string{"stl"}) {
		t.Errorf("parseFormats(stl) = %v", got)
	}
	if got := parseFormats("stl,scad,json"); !reflect.DeepEqual(got, []string{"stl", "scad", "json"}) {
		t.Errorf("parseFormats(stl,scad,json) = %v", got)
	}
}

func TestReadText(t *testing.T) {
	t.Run("positional argument", func(t *testing.T) {
		text, err := readText([]string{"hello"}, "")
		if err != nil || text != "hello" {
			t.Errorf("readText = (%q, %v), want (hello, nil)", text, err)
		}
	})

	t.Run("literal newline expansion", func(t *testing.T) {
		text, err := readText([]string{`fire\nexit`}, "")
		if err != nil || text != "fire\nexit" {
			t.Errorf("readText = (%q, %v), want two lines", text, err)
		}
	})

	t.Run("file input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "label.txt")
		if err := os.WriteFile(path, []byte("exit sign\n"), 0644); err != nil {
			t.Fatal(err)
		}
		text, err := readText(nil, path)
		if err != nil || text != "exit sign" {
			t.Errorf("readText = (%q, %v), want trailing newline trimmed", text, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readText(nil, filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("no input", func(t *testing.T) {
		_, err := readText(nil, "")
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	})
}

func TestRootCommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "layout", "encode", "profiles", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
