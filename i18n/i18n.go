// Package i18n localizes localekit's own user-facing strings.
//
// It wraps the gotext library: translations are embedded in the binary
// via //go:embed and selected at startup by Init. A codegen tool for
// translations that shipped untranslated messages would be a poor
// advertisement.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the translation files, one PO file per language under
// locales/{lang}/LC_MESSAGES/localekit.po.
//
//go:embed all:locales
var locales embed.FS

const domain = "localekit"

var locale *gotext.Locale

// Init initializes translations for the CLI. An empty lang auto-detects
// from LANGUAGE, LC_ALL, LC_MESSAGES, and LANG, in that order.
//
// Call once at startup, before any T call.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates a message, formatting any printf-style arguments. An
// untranslated message is returned unchanged (gettext passthrough).
func T(msgid string, args ...any) string {
	if locale == nil {
		if len(args) == 0 {
			return msgid
		}
		return fmt.Sprintf(msgid, args...)
	}
	return locale.Get(msgid, args...)
}

// detectLanguage reads the usual gettext environment variables.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE may be a colon-separated list; take the first entry.
		if i := strings.IndexByte(val, ':'); i >= 0 {
			val = val[:i]
		}
		// Strip the encoding suffix ("fr_FR.UTF-8" -> "fr_FR").
		if i := strings.IndexByte(val, '.'); i >= 0 {
			val = val[:i]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
