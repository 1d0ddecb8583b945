package atlas

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFiles creates each file under dir, making parent directories as
// needed, and returns dir.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := ParseRegistry(DefaultGeometry, []byte(sampleDefinitions))
	if err != nil {
		t.Fatalf("ParseRegistry failed: %v", err)
	}
	return reg
}

func pathStrings(l *Layers, name string) []string {
	var out []string
	for _, p := range l.Paths(name) {
		out = append(out, p.String())
	}
	return out
}

func TestLoadLayers(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"pack/layers.yml": "grass: grass.png\nchest:\n  - chest.png\n  - decals/lock.png\n",
	})

	layers, err := LoadLayers(testRegistry(t), filepath.Join(dir, "pack", "layers.yml"))
	if err != nil {
		t.Fatalf("LoadLayers failed: %v", err)
	}

	if want := []string{"chest", "grass"}; !reflect.DeepEqual(layers.Names(), want) {
		t.Errorf("Names: got %v, want %v", layers.Names(), want)
	}

	wantGrass := []string{filepath.Join(dir, "pack", "grass.png")}
	if got := pathStrings(layers, "grass"); !reflect.DeepEqual(got, wantGrass) {
		t.Errorf("grass: got %v, want %v", got, wantGrass)
	}

	wantChest := []string{
		filepath.Join(dir, "pack", "chest.png"),
		filepath.Join(dir, "pack", "decals", "lock.png"),
	}
	if got := pathStrings(layers, "chest"); !reflect.DeepEqual(got, wantChest) {
		t.Errorf("chest: got %v, want %v", got, wantChest)
	}

	if src := layers.Source("grass"); src.Name() != "layers.yml" {
		t.Errorf("Source: got %s, want layers.yml", src)
	}
}

func TestLoadLayers_InheritReplaces(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"base/layers.yml": "grass: grass.png\nchest: [chest.png, chest_shadow.png]\n",
		"hd/layers.yml":   "chest: hd_chest.png\ninherit: ../base/layers.yml\n",
	})

	layers, err := LoadLayers(testRegistry(t), filepath.Join(dir, "hd", "layers.yml"))
	if err != nil {
		t.Fatalf("LoadLayers failed: %v", err)
	}

	// The child entry replaces the inherited one instead of appending to it.
	wantChest := []string{filepath.Join(dir, "hd", "hd_chest.png")}
	if got := pathStrings(layers, "chest"); !reflect.DeepEqual(got, wantChest) {
		t.Errorf("chest: got %v, want %v", got, wantChest)
	}

	// Inherited entries resolve relative to the parent file.
	wantGrass := []string{filepath.Join(dir, "base", "grass.png")}
	if got := pathStrings(layers, "grass"); !reflect.DeepEqual(got, wantGrass) {
		t.Errorf("grass: got %v, want %v", got, wantGrass)
	}
	if src := layers.Source("grass"); src.Dir != filepath.Join(dir, "base") {
		t.Errorf("grass Source: got %s", src)
	}
}

func TestLoadLayers_MultiLevelInherit(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.yml": "grass: a_grass.png\nfurnace: a_furnace.png\n",
		"b.yml": "inherit: a.yml\ngrass: b_grass.png\n",
		"c.yml": "inherit: b.yml\nchest: c_chest.png\n",
	})

	layers, err := LoadLayers(testRegistry(t), filepath.Join(dir, "c.yml"))
	if err != nil {
		t.Fatalf("LoadLayers failed: %v", err)
	}

	if layers.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", layers.Len())
	}
	if got := pathStrings(layers, "grass"); got[0] != filepath.Join(dir, "b_grass.png") {
		t.Errorf("grass: got %v", got)
	}
	if got := pathStrings(layers, "furnace"); got[0] != filepath.Join(dir, "a_furnace.png") {
		t.Errorf("furnace: got %v", got)
	}
}

func TestLoadLayers_Empty(t *testing.T) {
	dir := writeFiles(t, map[string]string{"empty.yml": ""})

	layers, err := LoadLayers(testRegistry(t), filepath.Join(dir, "empty.yml"))
	if err != nil {
		t.Fatalf("LoadLayers failed: %v", err)
	}
	if layers.Len() != 0 {
		t.Errorf("Len: got %d, want 0", layers.Len())
	}
}

func TestLoadLayers_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  error
	}{
		{
			"unknown texture",
			map[string]string{"layers.yml": "grass: grass.png\nmarble: marble.png\n"},
			ErrUnknownTexture,
		},
		{
			"unknown texture in parent",
			map[string]string{
				"parent.yml": "marble: marble.png\n",
				"layers.yml": "inherit: parent.yml\n",
			},
			ErrUnknownTexture,
		},
		{
			"number value",
			map[string]string{"layers.yml": "grass: 5\n"},
			ErrMalformedConfig,
		},
		{
			"mapping value",
			map[string]string{"layers.yml": "grass:\n  file: grass.png\n"},
			ErrMalformedConfig,
		},
		{
			"list with non-string",
			map[string]string{"layers.yml": "grass: [grass.png, [x]]\n"},
			ErrMalformedConfig,
		},
		{
			"top level list",
			map[string]string{"layers.yml": "- grass.png\n"},
			ErrMalformedConfig,
		},
		{
			"inherit list",
			map[string]string{"layers.yml": "inherit: [a.yml, b.yml]\n"},
			ErrMalformedConfig,
		},
		{
			"missing parent",
			map[string]string{"layers.yml": "inherit: nowhere.yml\ngrass: grass.png\n"},
			ErrMalformedConfig,
		},
		{
			"duplicate key",
			map[string]string{"layers.yml": "grass: a.png\ngrass: b.png\n"},
			ErrMalformedConfig,
		},
		{
			"self inherit",
			map[string]string{"layers.yml": "inherit: layers.yml\n"},
			ErrInheritanceCycle,
		},
		{
			"mutual inherit",
			map[string]string{
				"a.yml":      "inherit: sub/../b.yml\n",
				"b.yml":      "inherit: a.yml\n",
				"layers.yml": "inherit: a.yml\n",
			},
			ErrInheritanceCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
				t.Fatalf("failed to create dir: %v", err)
			}

			_, err := LoadLayers(testRegistry(t), filepath.Join(dir, "layers.yml"))
			if err == nil {
				t.Fatal("LoadLayers should fail")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want error wrapping %v", err, tt.want)
			}
		})
	}
}

func TestLoadLayers_NonExistent(t *testing.T) {
	_, err := LoadLayers(testRegistry(t), "/nonexistent/layers.yml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want os.ErrNotExist", err)
	}
}
