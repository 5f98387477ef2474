// Package config validates generation settings and drives a generation
// run: read the fallback catalog, merge every other language, generate
// the Go artifact, write it out.
//
// Settings come in through a Builder (programmatic use) or through a
// .localekit.yaml project file (CLI use); both funnel into the same
// validating Build step, so a Config can only exist in a consistent
// state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/localekit/localekit/catalog"
	"github.com/localekit/localekit/gen"
	"github.com/localekit/localekit/langid"
)

// Defaults applied by Build when the corresponding option is unset.
const (
	DefaultName    = "Lang"
	DefaultPackage = "locale"
	DefaultOutput  = "locale_gen.go"
)

// Configuration errors, reported by Build before any file is read.
var (
	// ErrMissingSource: no translation source was registered.
	ErrMissingSource = errors.New("at least one translations source file is required")
	// ErrMissingFallback: no fallback language was selected.
	ErrMissingFallback = errors.New("a fallback language must be provided")
	// ErrInvalidFallback: the fallback language matches no source.
	ErrInvalidFallback = errors.New("no source corresponding to the fallback language was found")
)

// ---------------------------------------------------------------------------
// Builder
// ---------------------------------------------------------------------------

// Builder collects generation settings. The zero value is ready to use;
// all methods return the builder for chaining. Nothing is validated
// until Build.
type Builder struct {
	sources  []source
	fallback string
	name     string
	pkg      string
	output   string
}

type source struct {
	lang string
	path string
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Source registers a translation source file for a language. A second
// registration for the same language replaces the first.
func (b *Builder) Source(lang, path string) *Builder {
	b.sources = append(b.sources, source{lang: lang, path: path})
	return b
}

// Fallback selects the fallback language. It must match one of the
// registered sources.
func (b *Builder) Fallback(lang string) *Builder {
	b.fallback = lang
	return b
}

// Name overrides the generated type name (default Lang).
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Package overrides the generated file's package name (default locale).
func (b *Builder) Package(pkg string) *Builder {
	b.pkg = pkg
	return b
}

// Output overrides the output file path (default locale_gen.go in the
// working directory).
func (b *Builder) Output(path string) *Builder {
	b.output = path
	return b
}

// Build validates the collected settings. Every source language must
// parse as an ISO 639-1 identifier, at least one source and a fallback
// selection are required, and the fallback must match a source.
func (b *Builder) Build() (*Config, error) {
	files := make(map[langid.ID]string, len(b.sources))
	for _, src := range b.sources {
		lang, err := langid.Parse(src.lang)
		if err != nil {
			return nil, err
		}
		files[lang] = src.path
	}

	if len(files) == 0 {
		return nil, ErrMissingSource
	}
	if b.fallback == "" {
		return nil, ErrMissingFallback
	}

	fallback, err := langid.Parse(b.fallback)
	if err != nil {
		return nil, err
	}
	fallbackPath, ok := files[fallback]
	if !ok {
		return nil, ErrInvalidFallback
	}
	delete(files, fallback)

	cfg := &Config{
		Fallback:     fallback,
		FallbackPath: fallbackPath,
		Others:       files,
		Name:         b.name,
		Package:      b.pkg,
		Output:       b.output,
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// Generate is shorthand for Build followed by Config.Generate.
func (b *Builder) Generate() (*Result, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, &BuildError{Stage: StageConfig, Err: err}
	}
	return cfg.Generate()
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

// Config is a validated generation configuration.
type Config struct {
	Fallback     langid.ID
	FallbackPath string
	Others       map[langid.ID]string
	Name         string
	Package      string
	Output       string
}

// Languages returns every registered language, fallback first and the
// rest sorted. This is the variant order of the generated enumeration.
func (c *Config) Languages() []langid.ID {
	langs := make([]langid.ID, 0, len(c.Others)+1)
	for lang := range c.Others {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return append([]langid.ID{c.Fallback}, langs...)
}

// Result is the outcome of a successful generation run.
type Result struct {
	// Output is the path the artifact was written to.
	Output string
	// Diagnostics lists the non-fatal findings collected while merging,
	// ordered by language then key.
	Diagnostics []catalog.Diagnostic
	// Languages is the number of generated variants, Keys the number of
	// generated accessors.
	Languages int
	Keys      int
}

// Generate runs the whole pipeline. It fails fast: the first error of
// any stage aborts the run and no artifact is written.
func (c *Config) Generate() (*Result, error) {
	cat, diags, err := c.load()
	if err != nil {
		return nil, err
	}

	model, err := gen.Build(cat, c.Languages(), c.Name)
	if err != nil {
		return nil, &BuildError{Stage: StageGenerate, Err: err}
	}
	src, err := model.Render(c.Package)
	if err != nil {
		return nil, &BuildError{Stage: StageFormat, Err: err}
	}

	if dir := filepath.Dir(c.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &BuildError{Stage: StageWrite, Path: c.Output, Err: err}
		}
	}
	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return nil, &BuildError{Stage: StageWrite, Path: c.Output, Err: err}
	}

	return &Result{
		Output:      c.Output,
		Diagnostics: diags,
		Languages:   len(c.Languages()),
		Keys:        cat.Len(),
	}, nil
}

// Check runs parsing and validation only: same pipeline as Generate,
// but nothing is generated or written.
func (c *Config) Check() (*catalog.Catalog, []catalog.Diagnostic, error) {
	return c.load()
}

func (c *Config) load() (*catalog.Catalog, []catalog.Diagnostic, error) {
	pf, err := loadCatalogFile(c.FallbackPath)
	if err != nil {
		return nil, nil, err
	}
	cat := catalog.FromFallback(pf)

	var diags []catalog.Diagnostic
	for _, lang := range c.Languages()[1:] {
		path := c.Others[lang]
		pf, err := loadCatalogFile(path)
		if err != nil {
			return nil, nil, err
		}
		langDiags, err := cat.Merge(lang, pf)
		diags = append(diags, langDiags...)
		if err != nil {
			return nil, nil, &BuildError{Stage: StageParse, Path: path, Err: err}
		}
	}
	return cat, diags, nil
}

// loadCatalogFile reads one source file and parses it by extension:
// .yaml/.yml as YAML, everything else as JSON.
func loadCatalogFile(path string) (*catalog.ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BuildError{Stage: StageRead, Path: path, Err: err}
	}

	var pf *catalog.ParsedFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		pf, err = catalog.ParseYAMLDocument(data)
	default:
		pf, err = catalog.ParseDocument(data)
	}
	if err != nil {
		return nil, &BuildError{Stage: StageParse, Path: path, Err: err}
	}
	return pf, nil
}

// ---------------------------------------------------------------------------
// Build errors
// ---------------------------------------------------------------------------

// Stages a generation run can fail in.
const (
	StageConfig   = "config"
	StageRead     = "read"
	StageParse    = "parse"
	StageGenerate = "generate"
	StageFormat   = "format"
	StageWrite    = "write"
)

// BuildError wraps the first failure of a generation run with the stage
// it occurred in and, where applicable, the file involved. The
// originating cause is reachable through errors.Is/As.
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
