// Package config holds the runtime settings of terrain-compiler and the
// structured path value passed between components.
//
// Settings come from environment variables so the tool can be driven from
// build scripts without extra flags:
//
//	TERRAIN_DEFINITIONS  texture-definition file (default config/Textures.yml)
//	TERRAIN_SPLIT_DIR    directory split writes textures into (default splitTextures)
//	TERRAIN_OUTPUT       atlas written by merge (default terrain.png)
//	TERRAIN_TILES_DIR    directory the tiles command writes into (default tiles)
//	TERRAIN_LOG_LEVEL    "debug" enables diagnostic logging
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names.
const (
	EnvDefinitions = "TERRAIN_DEFINITIONS"
	EnvSplitDir    = "TERRAIN_SPLIT_DIR"
	EnvOutput      = "TERRAIN_OUTPUT"
	EnvTilesDir    = "TERRAIN_TILES_DIR"
	EnvLogLevel    = "TERRAIN_LOG_LEVEL"
)

// Defaults used when the matching environment variable is unset or empty.
const (
	DefaultDefinitions = "config/Textures.yml"
	DefaultSplitDir    = "splitTextures"
	DefaultOutput      = "terrain.png"
	DefaultTilesDir    = "tiles"

	// ImageExt is the extension of every image the tool writes on its own
	// initiative (split textures, dumped tiles).
	ImageExt = ".png"
)

// Config contains the resolved settings for one invocation.
type Config struct {
	// Definitions is the YAML file the texture registry is built from.
	Definitions string

	// SplitDir receives one image per texture in split mode.
	SplitDir string

	// Output is the atlas image written in merge mode.
	Output Path

	// TilesDir receives one image per atlas cell from the tiles command.
	TilesDir string

	// Debug enables diagnostic logging.
	Debug bool
}

// Load reads the configuration from the process environment.
func Load() *Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to resolve variables. It exists so
// tests can supply an environment without touching the process one.
func FromLookup(lookup func(string) (string, bool)) *Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	level, _ := lookup(EnvLogLevel)

	return &Config{
		Definitions: filepath.Clean(get(EnvDefinitions, DefaultDefinitions)),
		SplitDir:    filepath.Clean(get(EnvSplitDir, DefaultSplitDir)),
		Output:      ParsePath(get(EnvOutput, DefaultOutput)),
		TilesDir:    filepath.Clean(get(EnvTilesDir, DefaultTilesDir)),
		Debug:       strings.EqualFold(strings.TrimSpace(level), "debug"),
	}
}
