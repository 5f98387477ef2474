package config

import (
	"errors"
	"testing"

	"github.com/localekit/localekit/langid"
)

func TestBuild_Simple(t *testing.T) {
	cfg, err := New().
		Source("en", "translations/en.json").
		Source("fr", "translations/fr.json").
		Fallback("en").
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Fallback != "en" || cfg.FallbackPath != "translations/en.json" {
		t.Errorf("fallback = %s %s", cfg.Fallback, cfg.FallbackPath)
	}
	if len(cfg.Others) != 1 || cfg.Others["fr"] != "translations/fr.json" {
		t.Errorf("others = %v", cfg.Others)
	}
	if cfg.Name != DefaultName || cfg.Package != DefaultPackage || cfg.Output != DefaultOutput {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestBuild_MissingSource(t *testing.T) {
	_, err := New().Build()
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("error = %v, want ErrMissingSource", err)
	}
}

func TestBuild_MissingFallback(t *testing.T) {
	_, err := New().
		Source("en", "translations/en.json").
		Source("fr", "translations/fr.json").
		Build()
	if !errors.Is(err, ErrMissingFallback) {
		t.Errorf("error = %v, want ErrMissingFallback", err)
	}
}

func TestBuild_InvalidFallback(t *testing.T) {
	_, err := New().
		Source("en", "translations/en.json").
		Source("fr", "translations/fr.json").
		Fallback("de").
		Build()
	if !errors.Is(err, ErrInvalidFallback) {
		t.Errorf("error = %v, want ErrInvalidFallback", err)
	}
}

func TestBuild_InvalidLanguage(t *testing.T) {
	_, err := New().
		Source("en", "translations/en.json").
		Source("invalid", "translations/fr.json").
		Fallback("en").
		Build()

	var invalid *langid.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *langid.InvalidError", err)
	}
	if invalid.Value != "invalid" {
		t.Errorf("reported value = %q", invalid.Value)
	}
}

func TestBuild_DuplicateSourceLastWins(t *testing.T) {
	cfg, err := New().
		Source("en", "first.json").
		Source("en", "second.json").
		Fallback("en").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FallbackPath != "second.json" {
		t.Errorf("fallback path = %q", cfg.FallbackPath)
	}
}

func TestLanguages_FallbackFirstRestSorted(t *testing.T) {
	cfg, err := New().
		Source("it", "it.json").
		Source("en", "en.json").
		Source("de", "de.json").
		Source("fr", "fr.json").
		Fallback("en").
		Build()
	if err != nil {
		t.Fatal(err)
	}

	got := cfg.Languages()
	want := []langid.ID{"en", "de", "fr", "it"}
	if len(got) != len(want) {
		t.Fatalf("languages = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("languages = %v, want %v", got, want)
		}
	}
}
