package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoot is returned when a catalog document's root is not a
// key/value object.
var ErrInvalidRoot = errors.New("file root must be an object")

// ValueError reports a catalog entry whose value is not a string.
type ValueError struct {
	Key string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("`%s` has an invalid type", e.Key)
}

// TypeError reports a key whose shape does not match the shape fixed by
// the fallback language.
type TypeError struct {
	Key      string
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("`%s` doesn't match the fallback key (expected %s)", e.Key, e.Expected)
}

// ParamError reports a formatted key whose parameter set differs from
// the canonical set fixed by the fallback language. Missing holds the
// canonical names absent from the incoming value, Unknown the incoming
// names absent from the canonical set; both are sorted.
type ParamError struct {
	Key     string
	Missing []string
	Unknown []string
}

func (e *ParamError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("invalid parameters supplied to `%s` (%s)", e.Key, strings.Join(parts, "; "))
}
