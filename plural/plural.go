// Package plural provides plural-rule providers for generated language
// types.
//
// A provider answers exactly one question: which CLDR plural category a
// count selects in a given language. The package ships a single default
// implementation covering a handful of common latin languages; it is
// deliberately not exhaustive. Projects needing other languages
// implement the Provider interface themselves, preferably from CLDR
// plural-rule data.
package plural

import "github.com/localekit/localekit/langid"

// Category is a CLDR plural category.
type Category int

const (
	// Zero is used in Arabic, Latvian, and others.
	Zero Category = iota
	// One is the singular form in many languages.
	One
	// Two is used in Arabic, Hebrew, Slovenian, and others.
	Two
	// Few is used in Romanian, Polish, Russian, and others.
	Few
	// Many is used in Polish, Russian, Ukrainian, and others.
	Many
	// Other is the catch-all; the only category in languages such as
	// Japanese, Chinese, Korean, and Thai.
	Other
)

func (c Category) String() string {
	switch c {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Two:
		return "two"
	case Few:
		return "few"
	case Many:
		return "many"
	default:
		return "other"
	}
}

// Provider selects plural categories for one language.
type Provider interface {
	// Categorize returns the category a count selects.
	Categorize(n uint64) Category
}

// Default is the built-in provider. It covers English, Spanish, French,
// German, and Italian; any other identifier behaves like English.
type Default struct {
	id langid.ID
}

// ForID returns the default provider for a language identifier. It
// deliberately cannot fail: unknown identifiers get English behaviour.
func ForID(id langid.ID) Default {
	return Default{id: id}
}

// Categorize implements Provider. French treats 0 as singular; the
// other covered languages do not.
func (d Default) Categorize(n uint64) Category {
	if d.id == "fr" {
		if n == 0 || n == 1 {
			return One
		}
		return Other
	}
	if n == 1 {
		return One
	}
	return Other
}
