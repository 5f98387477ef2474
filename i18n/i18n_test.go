package i18n

import "testing"

func TestT_PassthroughWithoutInit(t *testing.T) {
	locale = nil
	if got := T("Fallback language: %s", "en"); got != "Fallback language: en" {
		t.Errorf("T() = %q", got)
	}
}

func TestT_French(t *testing.T) {
	Init("fr")
	defer func() { locale = nil }()

	if got := T("Fallback language: %s", "en"); got != "Langue de repli : en" {
		t.Errorf("T() = %q", got)
	}
	// Untranslated messages pass through unchanged.
	if got := T("no such msgid"); got != "no such msgid" {
		t.Errorf("T() = %q", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(env, "")
	}

	if got := detectLanguage(); got != "en" {
		t.Errorf("empty environment: detectLanguage() = %q", got)
	}

	t.Setenv("LANG", "de_DE.UTF-8")
	if got := detectLanguage(); got != "de_DE" {
		t.Errorf("LANG: detectLanguage() = %q", got)
	}

	t.Setenv("LANGUAGE", "fr:en")
	if got := detectLanguage(); got != "fr" {
		t.Errorf("LANGUAGE list: detectLanguage() = %q", got)
	}

	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "")
	if got := detectLanguage(); got != "en" {
		t.Errorf("C locale: detectLanguage() = %q", got)
	}
}
