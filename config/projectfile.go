// .localekit.yaml project file support.
//
// A project file is the CLI's way to declare sources once instead of
// repeating flags. All paths in the file are relative to the file's
// directory.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project file name looked up in the project root.
const FileName = ".localekit.yaml"

// File is the top-level .localekit.yaml structure.
type File struct {
	// Sources maps language tags to catalog file paths.
	Sources map[string]string `yaml:"sources"`
	// Fallback is the fallback language tag. Required.
	Fallback string `yaml:"fallback"`
	// Name overrides the generated type name.
	Name string `yaml:"name,omitempty"`
	// Package overrides the generated package name.
	Package string `yaml:"package,omitempty"`
	// Output overrides the output file path.
	Output string `yaml:"output,omitempty"`
}

// LoadFile loads .localekit.yaml from the given directory. It returns
// nil without error when no project file exists.
func LoadFile(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Builder converts the file into a Builder, resolving relative paths
// against root. Validation happens in Build, as with any builder.
func (f *File) Builder(root string) *Builder {
	b := New().
		Fallback(f.Fallback).
		Name(f.Name).
		Package(f.Package)

	for lang, path := range f.Sources {
		b.Source(lang, resolve(root, path))
	}
	if f.Output != "" {
		b.Output(resolve(root, f.Output))
	}
	return b
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
