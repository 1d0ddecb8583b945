package atlas

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/terrain-compiler/internal/config"
)

// InheritKey is the layer-configuration key naming a parent file.
const InheritKey = "inherit"

// Layers is a resolved merge configuration: for every texture to merge, the
// image files painted onto its canvas in order (later files on top).
type Layers struct {
	entries map[string]layerEntry
	names   []string
}

type layerEntry struct {
	paths  []config.Path
	source config.Path
}

// Names returns the configured texture names in sorted order.
func (l *Layers) Names() []string {
	return append([]string(nil), l.names...)
}

// Len returns the number of configured textures.
func (l *Layers) Len() int { return len(l.names) }

// Paths returns the layer files for name, bottom layer first.
func (l *Layers) Paths(name string) []config.Path {
	return append([]config.Path(nil), l.entries[name].paths...)
}

// Source returns the configuration file that supplied the entry for name.
func (l *Layers) Source(name string) config.Path {
	return l.entries[name].source
}

// LoadLayers reads a layer configuration, resolving its inherit chain.
//
// A file may name a parent with "inherit: <path>"; the parent is loaded
// first and the child's entries replace parent entries with the same name.
// Layer and parent paths are relative to the directory of the file that
// declares them. Every texture name must exist in reg.
func LoadLayers(reg *Registry, path string) (*Layers, error) {
	ld := &layerLoader{
		reg:     reg,
		onChain: make(map[string]bool),
	}
	entries, err := ld.load(config.ParsePath(path))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Layers{entries: entries, names: names}, nil
}

type layerLoader struct {
	reg     *Registry
	chain   []string
	onChain map[string]bool
}

func (ld *layerLoader) load(p config.Path) (map[string]layerEntry, error) {
	key, err := p.Canonical()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	if ld.onChain[key] {
		return nil, fmt.Errorf("%w: %s", ErrInheritanceCycle, strings.Join(append(ld.chain, p.String()), " -> "))
	}
	ld.onChain[key] = true
	ld.chain = append(ld.chain, p.String())
	defer func() {
		delete(ld.onChain, key)
		ld.chain = ld.chain[:len(ld.chain)-1]
	}()

	data, err := os.ReadFile(p.String())
	if err != nil {
		if len(ld.chain) > 1 {
			return nil, fmt.Errorf("%w: unresolved inherit target: %w", ErrMalformedConfig, err)
		}
		return nil, fmt.Errorf("failed to read layer config: %w", err)
	}

	file, err := parseLayerFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	entries := make(map[string]layerEntry)
	if file.inherit != "" {
		parent := p.Resolve(file.inherit)
		entries, err = ld.load(parent)
		if err != nil {
			return nil, fmt.Errorf("%s inherits %s: %w", p, parent, err)
		}
	}

	for _, e := range file.entries {
		if !ld.reg.Has(e.name) {
			return nil, fmt.Errorf("%w: invalid texture name %q in config file %s (line %d)",
				ErrUnknownTexture, e.name, p, e.line)
		}
		paths := make([]config.Path, len(e.files))
		for i, f := range e.files {
			paths[i] = p.Resolve(f)
		}
		entries[e.name] = layerEntry{paths: paths, source: p}
	}

	return entries, nil
}

type layerFile struct {
	inherit string
	entries []rawLayerEntry
}

type rawLayerEntry struct {
	name  string
	files []string
	line  int
}

// parseLayerFile decodes one layer configuration without following its
// inherit key. Values are either a single path or a list of paths.
func parseLayerFile(data []byte) (*layerFile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	out := &layerFile{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return out, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return out, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping of texture names", ErrMalformedConfig, root.Line)
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: keys must be texture names", ErrMalformedConfig, k.Line)
		}
		if seen[k.Value] {
			return nil, fmt.Errorf("%w: line %d: %q listed twice", ErrMalformedConfig, k.Line, k.Value)
		}
		seen[k.Value] = true

		if k.Value == InheritKey {
			if !isString(v) || v.Value == "" {
				return nil, fmt.Errorf("%w: line %d: %s must be a single path", ErrMalformedConfig, v.Line, InheritKey)
			}
			out.inherit = v.Value
			continue
		}

		files, err := layerFiles(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid texture config %q at line %d: %v", ErrMalformedConfig, k.Value, v.Line, err)
		}
		out.entries = append(out.entries, rawLayerEntry{name: k.Value, files: files, line: k.Line})
	}

	return out, nil
}

func layerFiles(v *yaml.Node) ([]string, error) {
	switch {
	case isString(v):
		if v.Value == "" {
			return nil, fmt.Errorf("empty path")
		}
		return []string{v.Value}, nil
	case v.Kind == yaml.SequenceNode:
		files := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			if !isString(item) || item.Value == "" {
				return nil, fmt.Errorf("line %d: list entries must be paths", item.Line)
			}
			files = append(files, item.Value)
		}
		return files, nil
	default:
		return nil, fmt.Errorf("want a path or a list of paths")
	}
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}
