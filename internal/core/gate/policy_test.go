package gate

import (
	"reflect"
	"testing"
)

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"a.yaml":              "yaml",
		"dir/config.YML":      "yml",
		"archive.tar.gz":      "gz",
		"Makefile":            "",
		"dir.d/README":        "",
		"trailing.":           "",
		".yaml":               "yaml",
		"win\\path\\file.Yml": "yml",
		"":                    "",
	}
	for in, want := range cases {
		if got := Extension(in); got != want {
			t.Errorf("Extension(%q) = %q want %q", in, got, want)
		}
	}
}

func TestPolicy_Eligible(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		c    Change
		want bool
	}{
		{Change{"a.yaml", KindAdded}, true},
		{Change{"a.yml", KindModified}, true},
		{Change{"config.YML", KindModified}, true},
		{Change{"a.yaml", KindRemoved}, false},
		{Change{"a.yaml", KindRenamed}, false},
		{Change{"a.yaml", KindOther}, false},
		{Change{"notes.txt", KindAdded}, false},
		{Change{"yaml", KindAdded}, false},
		{Change{"a.json", KindAdded}, false},
	}
	for _, tc := range cases {
		if got := p.Eligible(tc.c); got != tc.want {
			t.Errorf("Eligible(%v) = %v want %v", tc.c, got, tc.want)
		}
	}
}

func TestPolicy_SkipReasons(t *testing.T) {
	p := DefaultPolicy()
	if _, r := p.check(Change{"a.yaml", KindRemoved}); r != "kind" {
		t.Fatalf("reason = %q", r)
	}
	if _, r := p.check(Change{"LICENSE", KindAdded}); r != "no extension" {
		t.Fatalf("reason = %q", r)
	}
	if _, r := p.check(Change{"a.md", KindAdded}); r != "extension" {
		t.Fatalf("reason = %q", r)
	}
}

func TestNewPolicy(t *testing.T) {
	p := NewPolicy([]string{".JSON", " toml ", ""}, KindAdded)
	if got := p.Extensions(); !reflect.DeepEqual(got, []string{"json", "toml"}) {
		t.Fatalf("extensions = %v", got)
	}
	if p.Eligible(Change{"a.json", KindModified}) {
		t.Fatalf("modified excluded by explicit kinds")
	}
	if !p.Eligible(Change{"a.json", KindAdded}) {
		t.Fatalf("added json should pass")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]ChangeKind{
		"added":    KindAdded,
		"ADD":      KindAdded,
		"modified": KindModified,
		"changed":  KindModified,
		"removed":  KindRemoved,
		"renamed":  KindRenamed,
		"copied":   KindOther,
		"":         KindOther,
	}
	for in, want := range cases {
		if got := ParseKind(in); got != want {
			t.Errorf("ParseKind(%q) = %v want %v", in, got, want)
		}
	}
}

func TestRevision_IsZero(t *testing.T) {
	for _, r := range []Revision{"", "0000000000000000000000000000000000000000", "0"} {
		if !r.IsZero() {
			t.Errorf("%q should be zero", r)
		}
	}
	if Revision("a1b2c3").IsZero() {
		t.Errorf("real id reported zero")
	}
}
