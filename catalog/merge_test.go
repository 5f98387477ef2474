package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, data string) *ParsedFile {
	t.Helper()
	pf, err := ParseDocument([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return pf
}

func TestFromFallback(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello world!", "greet": "Hi {name}!"}`))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	hello, ok := c.Key("hello")
	if !ok || hello.Formatted() {
		t.Fatalf("hello = %+v, want plain key", hello)
	}
	if hello.Fallback() != "Hello world!" {
		t.Errorf("hello fallback = %q", hello.Fallback())
	}
	if len(hello.OverrideLanguages()) != 0 {
		t.Errorf("fresh key has overrides: %v", hello.OverrideLanguages())
	}

	greet, ok := c.Key("greet")
	if !ok || !greet.Formatted() {
		t.Fatalf("greet = %+v, want formatted key", greet)
	}
	if !reflect.DeepEqual(greet.Params(), []string{"name"}) {
		t.Errorf("greet params = %v", greet.Params())
	}
}

func TestMerge_PlainOverride(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello world!"}`))

	diags, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour le monde !"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}

	hello, _ := c.Key("hello")
	if got, ok := hello.Override("fr"); !ok || got != "Bonjour le monde !" {
		t.Errorf("fr override = %q, %v", got, ok)
	}
	if hello.Fallback() != "Hello world!" {
		t.Errorf("fallback changed: %q", hello.Fallback())
	}
}

func TestMerge_UnknownKeyIsDiagnostic(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello world!"}`))

	diags, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour", "extra": "Sans équivalent"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want one", diags)
	}
	if diags[0].Key != "extra" || diags[0].Language != "fr" {
		t.Errorf("diagnostic = %+v", diags[0])
	}
	if _, ok := c.Key("extra"); ok {
		t.Error("unknown key entered the catalog")
	}
	if diags[0].String() != "key `extra` exists in fr but not in fallback language" {
		t.Errorf("diagnostic text = %q", diags[0].String())
	}
}

func TestMerge_ParameterizedWherePlain(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello world!"}`))

	_, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour {name} !"}`))
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *TypeError", err)
	}
	if typeErr.Key != "hello" || typeErr.Expected != "plain string" {
		t.Errorf("TypeError = %+v", typeErr)
	}
}

func TestMerge_ParameterMismatch(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello {name}!"}`))

	_, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour {surname} !"}`))
	var paramErr *ParamError
	if !errors.As(err, &paramErr) {
		t.Fatalf("error = %v, want *ParamError", err)
	}
	if paramErr.Key != "hello" {
		t.Errorf("key = %q", paramErr.Key)
	}
	if !reflect.DeepEqual(paramErr.Missing, []string{"name"}) {
		t.Errorf("missing = %v, want [name]", paramErr.Missing)
	}
	if !reflect.DeepEqual(paramErr.Unknown, []string{"surname"}) {
		t.Errorf("unknown = %v, want [surname]", paramErr.Unknown)
	}
}

func TestMerge_PlainWhereFormattedIsParamError(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello {name}!"}`))

	_, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour !"}`))
	var paramErr *ParamError
	if !errors.As(err, &paramErr) {
		t.Fatalf("error = %v, want *ParamError", err)
	}
	if !reflect.DeepEqual(paramErr.Missing, []string{"name"}) || paramErr.Unknown != nil {
		t.Errorf("ParamError = %+v", paramErr)
	}
}

func TestMerge_FormattedOverride(t *testing.T) {
	c := FromFallback(mustParse(t, `{"greet": "Hi {first} {last}!"}`))

	// Placeholder order may differ between languages; only the set matters.
	diags, err := c.Merge("de", mustParse(t, `{"greet": "Hallo {last}, {first}!"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v", diags)
	}

	greet, _ := c.Key("greet")
	if got, _ := greet.Override("de"); got != "Hallo {last}, {first}!" {
		t.Errorf("de override = %q", got)
	}
}

func TestMerge_LanguagesAreIndependent(t *testing.T) {
	fallback := `{"hello": "Hello!", "greet": "Hi {name}!"}`
	fr := `{"hello": "Bonjour !"}`
	de := `{"greet": "Hallo {name}!"}`

	// Apply in both orders; the final catalogs must agree.
	first := FromFallback(mustParse(t, fallback))
	if _, err := first.Merge("fr", mustParse(t, fr)); err != nil {
		t.Fatal(err)
	}
	if _, err := first.Merge("de", mustParse(t, de)); err != nil {
		t.Fatal(err)
	}

	second := FromFallback(mustParse(t, fallback))
	if _, err := second.Merge("de", mustParse(t, de)); err != nil {
		t.Fatal(err)
	}
	if _, err := second.Merge("fr", mustParse(t, fr)); err != nil {
		t.Fatal(err)
	}

	for _, name := range first.Keys() {
		a, _ := first.Key(name)
		b, _ := second.Key(name)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("key %q differs between merge orders", name)
		}
	}
}

func TestMerge_EarlierLanguagesSurviveFailure(t *testing.T) {
	c := FromFallback(mustParse(t, `{"hello": "Hello!"}`))

	if _, err := c.Merge("fr", mustParse(t, `{"hello": "Bonjour !"}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Merge("de", mustParse(t, `{"hello": "Hallo {wer}!"}`)); err == nil {
		t.Fatal("mismatching merge succeeded")
	}

	hello, _ := c.Key("hello")
	if got, ok := hello.Override("fr"); !ok || got != "Bonjour !" {
		t.Errorf("fr override lost after failed de merge: %q, %v", got, ok)
	}
}
