// Package gen turns a validated translation catalog into Go source.
//
// Generation is split in two stages. Build produces a Model: a pure,
// deterministic description of the artifact (one variant per language,
// one accessor per key with its per-language texts and fallback arm).
// Render turns a Model into formatted Go source. Identical inputs
// always produce byte-identical output.
package gen

import (
	"fmt"
	"sort"

	"github.com/localekit/localekit/catalog"
	"github.com/localekit/localekit/langid"
)

// Variant is one language of the generated enumeration.
type Variant struct {
	// Tag is the language identifier the variant stands for.
	Tag langid.ID
	// Name is the exported identifier suffix, e.g. "Fr".
	Name string
}

// Arm is one explicit language → text pair of an accessor.
type Arm struct {
	// Variant is the Name of the variant the arm selects on.
	Variant string
	// Text is the override text for that language.
	Text string
}

// Accessor describes one generated method: the localized lookup for a
// single translation key. Every accessor is total over the variants:
// languages without an explicit Arm fall through to Fallback.
type Accessor struct {
	// Key is the raw catalog key name.
	Key string
	// Method is the exported method name derived from Key.
	Method string
	// Params holds the parameter names of a formatted key, sorted.
	// Empty for plain keys.
	Params []string
	// Arms holds the explicit overrides, ordered by language tag.
	Arms []Arm
	// Fallback is the fallback language's text.
	Fallback string
}

// Model is the complete generated-artifact description.
type Model struct {
	// TypeName is the name of the generated enumeration.
	TypeName string
	// Variants lists the languages, fallback first. The fallback being
	// first makes it the enumeration's zero value.
	Variants []Variant
	// Accessors lists the per-key methods, sorted by key name.
	Accessors []Accessor
}

// reservedMethods are emitted on every generated type and can never be
// used as accessor names.
var reservedMethods = map[string]bool{
	"String":        true,
	"LanguageID":    true,
	"MarshalText":   true,
	"UnmarshalText": true,
}

// Build derives the artifact model from a merged catalog. langs is the
// full ordered language list with the fallback first; typeName names the
// generated enumeration.
//
// Build fails when two keys map to the same method name, when a key
// cannot be turned into an exported identifier at all, or when a key
// collides with one of the methods every generated type carries.
func Build(c *catalog.Catalog, langs []langid.ID, typeName string) (*Model, error) {
	m := &Model{TypeName: typeName}

	for _, lang := range langs {
		m.Variants = append(m.Variants, Variant{Tag: lang, Name: exportedIdent(lang.Value())})
	}

	methods := make(map[string]string, c.Len())
	for _, name := range c.Keys() {
		key, _ := c.Key(name)

		method := exportedIdent(name)
		if method == "" {
			return nil, fmt.Errorf("key %q cannot be mapped to a Go method name", name)
		}
		if reservedMethods[method] {
			return nil, fmt.Errorf("key %q maps to the reserved method name %s", name, method)
		}
		if prev, ok := methods[method]; ok {
			return nil, fmt.Errorf("keys %q and %q both map to method %s", prev, name, method)
		}
		methods[method] = name

		acc := Accessor{
			Key:      name,
			Method:   method,
			Params:   key.Params(),
			Fallback: key.Fallback(),
		}
		for _, lang := range key.OverrideLanguages() {
			text, _ := key.Override(lang)
			acc.Arms = append(acc.Arms, Arm{Variant: exportedIdent(lang.Value()), Text: text})
		}
		m.Accessors = append(m.Accessors, acc)
	}
	sort.Slice(m.Accessors, func(i, j int) bool { return m.Accessors[i].Key < m.Accessors[j].Key })

	return m, nil
}
