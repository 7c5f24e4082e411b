package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %s", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := map[string]Format{
		"a.pyvoc":  PyvocFormat,
		"a.json":   JSONFormat,
		"a.yaml":   YAMLFormat,
		"a.yml":    YAMLFormat,
		"noext":    PyvocFormat,
		"dir/b.js": PyvocFormat,
	}
	for name, want := range tests {
		if got := FromSuffix(name); got != want {
			t.Errorf("FromSuffix(%q) = %s, want %s", name, got, want)
		}
	}
}
