// Package langid implements ISO 639-1 language identifiers.
//
// An identifier is a two-letter ASCII code such as "en" or "fr", always
// stored lower-cased. Parse validates untrusted input; invalid input is
// rejected, never truncated or coerced. The package also declares the
// Language interface implemented by every enumeration emitted by the
// generator, so code that only needs the identifier can accept any
// generated language type.
package langid

import "fmt"

// ID is a validated ISO 639-1 language identifier.
//
// The zero value is not a valid identifier; obtain an ID through Parse
// or MustParse. IDs compare with == and are usable as map keys.
type ID string

// Parse validates s as an ISO 639-1 identifier and returns its
// lower-cased form. It succeeds iff s is exactly two ASCII letters;
// anything else returns an *InvalidError.
//
// Only the shape is checked: "zz" parses even though ISO 639-1 does not
// assign it. Region subtags ("en-US") are not accepted.
func Parse(s string) (ID, error) {
	if len(s) != 2 || !isASCIILetter(s[0]) || !isASCIILetter(s[1]) {
		return "", &InvalidError{Value: s}
	}
	b := [2]byte{lower(s[0]), lower(s[1])}
	return ID(b[:]), nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// identifiers known at compile time.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the identifier as a plain string.
func (id ID) Value() string { return string(id) }

func (id ID) String() string { return string(id) }

// MarshalText implements encoding.TextMarshaler so an ID can be embedded
// in JSON or YAML documents.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The incoming text
// is validated with Parse.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Language is implemented by generated language enumerations.
//
// Generated types additionally provide a Parse<Name> function for the
// reverse conversion and use their zero value as the fallback language.
type Language interface {
	// LanguageID returns the ISO 639-1 identifier of the language.
	LanguageID() ID
}

// InvalidError reports a string that is not a two-letter ASCII code.
type InvalidError struct {
	// Value is the rejected input, verbatim.
	Value string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%q is not a valid ISO 639-1 language identifier", e.Value)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
