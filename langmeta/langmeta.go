// Package langmeta provides a small registry of language display
// metadata (native names) for CLI output.
package langmeta

import "github.com/localekit/localekit/langid"

// Meta describes language display metadata.
type Meta struct {
	Name string
}

// registry contains metadata for common ISO 639-1 languages. It is a
// UI nicety, not a validation source: unlisted identifiers are still
// perfectly valid languages.
var registry = map[langid.ID]Meta{
	"ar": {Name: "العربية"},
	"cs": {Name: "Čeština"},
	"da": {Name: "Dansk"},
	"de": {Name: "Deutsch"},
	"el": {Name: "Ελληνικά"},
	"en": {Name: "English"},
	"es": {Name: "Español"},
	"fi": {Name: "Suomi"},
	"fr": {Name: "Français"},
	"he": {Name: "עברית"},
	"hi": {Name: "हिन्दी"},
	"hu": {Name: "Magyar"},
	"id": {Name: "Bahasa Indonesia"},
	"it": {Name: "Italiano"},
	"ja": {Name: "日本語"},
	"ko": {Name: "한국어"},
	"nl": {Name: "Nederlands"},
	"no": {Name: "Norsk"},
	"pl": {Name: "Polski"},
	"pt": {Name: "Português"},
	"ro": {Name: "Română"},
	"ru": {Name: "Русский"},
	"sv": {Name: "Svenska"},
	"th": {Name: "ไทย"},
	"tr": {Name: "Türkçe"},
	"uk": {Name: "Українська"},
	"vi": {Name: "Tiếng Việt"},
	"zh": {Name: "中文"},
}

// Resolve returns display metadata for a language identifier.
func Resolve(id langid.ID) (Meta, bool) {
	m, ok := registry[id]
	return m, ok
}

// Name returns the native display name, or the identifier itself when
// the language is not in the registry.
func Name(id langid.ID) string {
	if m, ok := registry[id]; ok {
		return m.Name
	}
	return id.Value()
}
