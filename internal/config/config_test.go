package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	if cfg.Definitions != filepath.Clean(DefaultDefinitions) {
		t.Errorf("Definitions: got %s, want %s", cfg.Definitions, DefaultDefinitions)
	}
	if cfg.SplitDir != DefaultSplitDir {
		t.Errorf("SplitDir: got %s, want %s", cfg.SplitDir, DefaultSplitDir)
	}
	if cfg.Output.String() != DefaultOutput {
		t.Errorf("Output: got %s, want %s", cfg.Output, DefaultOutput)
	}
	if cfg.TilesDir != DefaultTilesDir {
		t.Errorf("TilesDir: got %s, want %s", cfg.TilesDir, DefaultTilesDir)
	}
	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		EnvDefinitions: "defs/blocks.yml",
		EnvSplitDir:    "out/split/",
		EnvOutput:      "build/atlas.png",
		EnvTilesDir:    " dump ",
		EnvLogLevel:    "DEBUG",
	}))

	if cfg.Definitions != filepath.Join("defs", "blocks.yml") {
		t.Errorf("Definitions: got %s", cfg.Definitions)
	}
	if cfg.SplitDir != filepath.Join("out", "split") {
		t.Errorf("SplitDir: got %s", cfg.SplitDir)
	}
	if cfg.Output.Dir != "build" || cfg.Output.Stem != "atlas" || cfg.Output.Ext != ".png" {
		t.Errorf("Output: got %+v", cfg.Output)
	}
	if cfg.TilesDir != "dump" {
		t.Errorf("TilesDir: got %q, want dump", cfg.TilesDir)
	}
	if !cfg.Debug {
		t.Error("Debug should be on for TERRAIN_LOG_LEVEL=DEBUG")
	}
}

func TestFromLookup_EmptyValueUsesDefault(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{EnvSplitDir: "  "}))
	if cfg.SplitDir != DefaultSplitDir {
		t.Errorf("SplitDir: got %q, want %q", cfg.SplitDir, DefaultSplitDir)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in             string
		dir, stem, ext string
	}{
		{"grass.png", ".", "grass", ".png"},
		{"assets/blocks/grass.png", filepath.Join("assets", "blocks"), "grass", ".png"},
		{"layers/base", "layers", "base", ""},
		{"archive.tar.gz", ".", "archive.tar", ".gz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := ParsePath(tt.in)
			if p.Dir != tt.dir || p.Stem != tt.stem || p.Ext != tt.ext {
				t.Errorf("ParsePath(%q): got %+v, want {%s %s %s}", tt.in, p, tt.dir, tt.stem, tt.ext)
			}
		})
	}
}

func TestPath_String(t *testing.T) {
	p := NewPath("out", "stone", ".png")
	if got, want := p.String(), filepath.Join("out", "stone.png"); got != want {
		t.Errorf("String: got %s, want %s", got, want)
	}
	if p.Name() != "stone.png" {
		t.Errorf("Name: got %s, want stone.png", p.Name())
	}
	if got := p.WithStem("dirt").WithExt(".jpg").Name(); got != "dirt.jpg" {
		t.Errorf("WithStem/WithExt: got %s, want dirt.jpg", got)
	}
}

func TestPath_Resolve(t *testing.T) {
	base := ParsePath(filepath.Join("packs", "default", "layers.yml"))

	got := base.Resolve("../shared/grass.png")
	if want := filepath.Join("packs", "shared", "grass.png"); got.String() != want {
		t.Errorf("relative: got %s, want %s", got, want)
	}

	abs := filepath.Join(string(filepath.Separator), "tmp", "grass.png")
	if got := base.Resolve(abs); got.String() != abs {
		t.Errorf("absolute: got %s, want %s", got, abs)
	}
}

func TestPath_Canonical(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "layers.yml")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	viaDotDot := ParsePath(filepath.Join(dir, "sub", "..", "layers.yml"))
	a, err := viaDotDot.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	b, err := ParsePath(file).Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if a != b {
		t.Errorf("canonical paths differ: %s vs %s", a, b)
	}
}
