package config

import (
	"path/filepath"
	"strings"
)

// Path is a file path split into its directory, stem and extension.
//
// For "assets/blocks/grass.png" the parts are Dir "assets/blocks",
// Stem "grass" and Ext ".png". A path with no directory component has
// Dir ".".
type Path struct {
	Dir  string
	Stem string
	Ext  string
}

// ParsePath splits p into a Path. The input is cleaned first.
func ParsePath(p string) Path {
	p = filepath.Clean(p)
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	return Path{
		Dir:  filepath.Dir(p),
		Stem: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}

// NewPath builds a Path for a file named stem+ext inside dir.
func NewPath(dir, stem, ext string) Path {
	return Path{Dir: filepath.Clean(dir), Stem: stem, Ext: ext}
}

// String joins the parts back into a file path.
func (p Path) String() string {
	return filepath.Join(p.Dir, p.Stem+p.Ext)
}

// Name returns the file name without its directory.
func (p Path) Name() string {
	return p.Stem + p.Ext
}

// WithStem returns a copy of p with a different stem.
func (p Path) WithStem(stem string) Path {
	p.Stem = stem
	return p
}

// WithExt returns a copy of p with a different extension.
func (p Path) WithExt(ext string) Path {
	p.Ext = ext
	return p
}

// Resolve interprets rel relative to the directory of p. Absolute paths are
// returned unchanged apart from cleaning.
func (p Path) Resolve(rel string) Path {
	if filepath.IsAbs(rel) {
		return ParsePath(rel)
	}
	return ParsePath(filepath.Join(p.Dir, rel))
}

// Canonical returns an absolute, symlink-free form of the path suitable for
// identity comparisons. If the file does not exist the absolute path is
// returned.
func (p Path) Canonical() (string, error) {
	abs, err := filepath.Abs(p.String())
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
