// Package catalog implements parsing and validation of per-language
// translation catalogs.
//
// A catalog source is one document per language: a flat mapping of
// translation-key names to string values. Values may contain named
// placeholders written as {identifier} (lower-case letters and
// underscores); a value with at least one placeholder is a formatted
// key, everything else is a plain key.
//
// The fallback language is parsed first and fixes, for every key, its
// shape (plain or formatted) and its parameter set. Every other
// language is then merged against those canonical shapes: a plain key
// must stay plain, a formatted key must use exactly the same parameter
// set. Keys that only exist outside the fallback produce a diagnostic
// and are skipped.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Placeholder classification
// ---------------------------------------------------------------------------

// placeholderPattern matches {identifier} placeholders. Any other brace
// content is not a placeholder and passes through untouched.
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// ParsedKey is one raw catalog value, classified by shape.
type ParsedKey struct {
	// Text is the raw value, placeholders included.
	Text string
	// Params holds the deduplicated placeholder names found in Text,
	// sorted. Empty for plain values.
	Params []string
}

// Parameterized reports whether the value contains placeholders.
func (k ParsedKey) Parameterized() bool { return len(k.Params) > 0 }

// Classify scans text for {identifier} placeholders and returns the
// classified value. It is a pure function: identical input always
// yields an identical result.
func Classify(text string) ParsedKey {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ParsedKey{Text: text}
	}

	seen := make(map[string]bool, len(matches))
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			params = append(params, m[1])
		}
	}
	sort.Strings(params)

	return ParsedKey{Text: text, Params: params}
}

// ---------------------------------------------------------------------------
// File parsing
// ---------------------------------------------------------------------------

// ParsedFile is one language's catalog: raw key names mapped to
// classified values.
type ParsedFile struct {
	keys map[string]ParsedKey
}

// ParseDocument parses a JSON catalog document. The root must be an
// object and every value a string; duplicate keys follow JSON object
// semantics (last one wins). Malformed JSON is reported as a plain
// decode error, distinct from the structural errors above.
func ParseDocument(data []byte) (*ParsedFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrInvalidRoot
	}

	keys := make(map[string]ParsedKey)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding key: expected string, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding value of %q: %w", key, err)
		}

		// Unmarshal of "null" into a string is a silent no-op, so the
		// token must be checked for the string shape explicitly.
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '"' {
			return nil, &ValueError{Key: key}
		}
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, &ValueError{Key: key}
		}
		keys[key] = Classify(value)
	}

	return &ParsedFile{keys: keys}, nil
}

// FromValue builds a ParsedFile from an already decoded generic JSON
// value (the result of unmarshalling into any). The same structural
// rules as ParseDocument apply.
func FromValue(v any) (*ParsedFile, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, ErrInvalidRoot
	}

	keys := make(map[string]ParsedKey, len(root))
	for key, value := range root {
		text, ok := value.(string)
		if !ok {
			return nil, &ValueError{Key: key}
		}
		keys[key] = Classify(text)
	}

	return &ParsedFile{keys: keys}, nil
}

// ParseYAMLDocument parses a YAML catalog document. The structural
// rules match ParseDocument: a flat mapping with string values only.
func ParseYAMLDocument(data []byte) (*ParsedFile, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrInvalidRoot
	}

	keys := make(map[string]ParsedKey, len(root))
	for key, value := range root {
		text, ok := value.(string)
		if !ok {
			return nil, &ValueError{Key: key}
		}
		keys[key] = Classify(text)
	}

	return &ParsedFile{keys: keys}, nil
}

// Len returns the number of keys in the file.
func (f *ParsedFile) Len() int { return len(f.keys) }

// Keys returns the key names, sorted.
func (f *ParsedFile) Keys() []string {
	keys := make([]string, 0, len(f.keys))
	for key := range f.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the classified value for a key name.
func (f *ParsedFile) Get(key string) (ParsedKey, bool) {
	k, ok := f.keys[key]
	return k, ok
}
