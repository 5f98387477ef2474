package langmeta

import "testing"

func TestResolve(t *testing.T) {
	m, ok := Resolve("fr")
	if !ok || m.Name != "Français" {
		t.Errorf("Resolve(fr) = %+v, %v", m, ok)
	}
	if _, ok := Resolve("zz"); ok {
		t.Error("Resolve(zz) found metadata for an unassigned code")
	}
}

func TestName_FallsBackToID(t *testing.T) {
	if got := Name("zz"); got != "zz" {
		t.Errorf("Name(zz) = %q", got)
	}
	if got := Name("de"); got != "Deutsch" {
		t.Errorf("Name(de) = %q", got)
	}
}
