package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry maps texture names to their definitions. It is built once from
// the texture-definition file and never modified.
type Registry struct {
	geom      Geometry
	textures  map[string]*Texture
	names     []string
	tileCount int
}

// NewRegistry builds a registry from already validated textures. Duplicate
// names are rejected.
func NewRegistry(g Geometry, textures ...*Texture) (*Registry, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		geom:     g,
		textures: make(map[string]*Texture, len(textures)),
		names:    make([]string, 0, len(textures)),
	}
	for _, t := range textures {
		if _, dup := r.textures[t.Name()]; dup {
			return nil, fmt.Errorf("%w: texture %q defined twice", ErrMalformedConfig, t.Name())
		}
		r.textures[t.Name()] = t
		r.names = append(r.names, t.Name())
		r.tileCount += t.TileCount()
	}
	sort.Strings(r.names)

	return r, nil
}

// textureSpec is the YAML form of one texture definition:
//
//	grass:
//	  size: [1, 1]
//	  tiles:
//	    - [[0, 0], [0, 0]]
type textureSpec struct {
	Size  []int     `yaml:"size"`
	Tiles [][][]int `yaml:"tiles"`
}

// LoadRegistry reads a texture-definition file and builds the registry.
func LoadRegistry(g Geometry, path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture definitions: %w", err)
	}
	reg, err := ParseRegistry(g, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// ParseRegistry builds a registry from texture-definition YAML. The top
// level maps texture names to {size: [rows, cols], tiles: [[[ar, ac], [tr, tc]], ...]}.
//
// Any malformed entry or invalid definition aborts the whole parse; no
// partial registry is returned.
func ParseRegistry(g Geometry, data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var specs map[string]*textureSpec
	if err := dec.Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	textures := make([]*Texture, 0, len(specs))
	for _, name := range names {
		t, err := specs[name].build(g, name)
		if err != nil {
			return nil, err
		}
		textures = append(textures, t)
	}

	return NewRegistry(g, textures...)
}

func (s *textureSpec) build(g Geometry, name string) (*Texture, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: texture %q has no definition", ErrMalformedConfig, name)
	}
	if len(s.Size) != 2 {
		return nil, fmt.Errorf("%w: texture %q: size must be [rows, cols], got %v", ErrMalformedConfig, name, s.Size)
	}

	maps := make([]TileMap, 0, len(s.Tiles))
	for i, pair := range s.Tiles {
		if len(pair) != 2 || len(pair[0]) != 2 || len(pair[1]) != 2 {
			return nil, fmt.Errorf("%w: texture %q tile map %d: want [[atlasRow, atlasCol], [texRow, texCol]], got %v",
				ErrMalformedConfig, name, i, pair)
		}
		maps = append(maps, M(pair[0][0], pair[0][1], pair[1][0], pair[1][1]))
	}

	return NewTexture(g, name, C(s.Size[0], s.Size[1]), maps)
}

// Geometry returns the atlas geometry the registry was validated against.
func (r *Registry) Geometry() Geometry { return r.geom }

// Lookup returns the texture called name.
func (r *Registry) Lookup(name string) (*Texture, bool) {
	t, ok := r.textures[name]
	return t, ok
}

// Has reports whether a texture called name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.textures[name]
	return ok
}

// Names returns all texture names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of textures.
func (r *Registry) Len() int { return len(r.names) }

// TileCount is the total number of tile maps across all textures. It is a
// diagnostic figure only.
func (r *Registry) TileCount() int { return r.tileCount }
