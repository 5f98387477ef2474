package catalog

import (
	"fmt"
	"sort"

	"github.com/localekit/localekit/langid"
)

// ---------------------------------------------------------------------------
// Canonical keys
// ---------------------------------------------------------------------------

// Key is one translation key with its canonical shape, the fallback
// text, and the per-language overrides collected so far. The shape and,
// for formatted keys, the parameter set are fixed when the fallback
// catalog is parsed and never change afterwards.
type Key struct {
	fallback  string
	overrides map[langid.ID]string
	// params is nil for plain keys and a sorted, non-empty slice for
	// formatted keys.
	params []string
}

// Formatted reports whether the key carries placeholders.
func (k *Key) Formatted() bool { return k.params != nil }

// Fallback returns the fallback language's text.
func (k *Key) Fallback() string { return k.fallback }

// Params returns the canonical parameter names, sorted. Nil for plain
// keys.
func (k *Key) Params() []string { return k.params }

// Override returns the text a language overrides this key with.
func (k *Key) Override(lang langid.ID) (string, bool) {
	text, ok := k.overrides[lang]
	return text, ok
}

// OverrideLanguages returns the languages overriding this key, sorted.
func (k *Key) OverrideLanguages() []langid.ID {
	langs := make([]langid.ID, 0, len(k.overrides))
	for lang := range k.overrides {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// Catalog is the merged, validated collection of translation keys for
// one generation run. It is seeded from the fallback language with
// FromFallback and grown with one Merge call per additional language.
// A Catalog is not safe for concurrent use; a generation run is
// single-threaded and run-to-completion.
type Catalog struct {
	keys map[string]*Key
}

// FromFallback seeds a catalog from the fallback language's parsed
// file. Every entry becomes a canonical key: plain values become plain
// keys, parameterized values become formatted keys with their parameter
// set fixed. This cannot fail once the file itself parsed.
func FromFallback(pf *ParsedFile) *Catalog {
	keys := make(map[string]*Key, pf.Len())
	for name, parsed := range pf.keys {
		keys[name] = &Key{
			fallback:  parsed.Text,
			overrides: make(map[langid.ID]string),
			params:    parsed.Params,
		}
	}
	return &Catalog{keys: keys}
}

// Diagnostic is a non-fatal finding produced while merging a language.
// It is returned alongside the successful result instead of being
// logged globally, so callers can print, collect, or test it.
type Diagnostic struct {
	// Key exists in Language's catalog but not in the fallback one.
	Key      string
	Language langid.ID
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("key `%s` exists in %s but not in fallback language", d.Key, d.Language)
}

// Merge validates one language's parsed file against the canonical
// shapes and records its texts as overrides. Keys absent from the
// fallback are skipped and reported as diagnostics. The first
// validation failure aborts the call; keys merged by earlier Merge
// calls stay valid.
//
// Merging is commutative across languages: each language is only ever
// checked against the fallback-derived shapes, never against another
// language.
func (c *Catalog) Merge(lang langid.ID, pf *ParsedFile) ([]Diagnostic, error) {
	var diags []Diagnostic

	for _, name := range pf.Keys() {
		parsed := pf.keys[name]

		key, ok := c.keys[name]
		if !ok {
			diags = append(diags, Diagnostic{Key: name, Language: lang})
			continue
		}

		if !key.Formatted() {
			if parsed.Parameterized() {
				return diags, &TypeError{Key: name, Expected: "plain string"}
			}
			key.overrides[lang] = parsed.Text
			continue
		}

		// Formatted key: the parameter sets must be equal. A plain
		// incoming value is a parameter mismatch with an empty
		// incoming set, not a type error.
		missing := diffSorted(key.params, parsed.Params)
		unknown := diffSorted(parsed.Params, key.params)
		if len(missing) > 0 || len(unknown) > 0 {
			return diags, &ParamError{Key: name, Missing: missing, Unknown: unknown}
		}
		key.overrides[lang] = parsed.Text
	}

	return diags, nil
}

// Len returns the number of keys in the catalog.
func (c *Catalog) Len() int { return len(c.keys) }

// Keys returns the key names, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.keys))
	for name := range c.keys {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Key returns the canonical key for a name.
func (c *Catalog) Key(name string) (*Key, bool) {
	k, ok := c.keys[name]
	return k, ok
}

// diffSorted returns the elements of a absent from b. Both inputs are
// sorted; the result is too.
func diffSorted(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	var out []string
	for _, s := range a {
		if !set[s] {
			out = append(out, s)
		}
	}
	return out
}
