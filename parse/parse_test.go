package parse

import (
	"errors"
	"testing"

	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"

	"github.com/google/go-cmp/cmp"
)

func TestParseWorkOffice(t *testing.T) {
	in := "<zone=Work>\n  <category=Office>\n    <John=chef>\n  </category>\n</zone>\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := doc.Lookup("Work", "Office", "John")
	if !ok || v != "chef" {
		t.Errorf("got %q, %v", v, ok)
	}
}

type entry struct {
	Path  string
	Value string
}

func entries(doc *ir.Doc) []entry {
	var res []entry
	for _, e := range doc.Entries() {
		res = append(res, entry{Path: e.Path.String(), Value: e.Value})
	}
	return res
}

func TestParsePermissive(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		zones    []string
		entries  []entry
		warnings []error
	}{
		{
			name:    "no closing markers",
			in:      "<zone=a><category=b><k=v><zone=c><category=d><x=y>",
			zones:   []string{"a", "c"},
			entries: []entry{{"a/b/k", "v"}, {"c/d/x", "y"}},
		},
		{
			name:     "node before any zone",
			in:       "<k=v>",
			zones:    []string{""},
			entries:  []entry{{"//k", "v"}},
			warnings: []error{ErrNoCategory},
		},
		{
			name:     "category before any zone",
			in:       "<category=c><k=v>",
			zones:    []string{""},
			entries:  []entry{{"/c/k", "v"}},
			warnings: []error{ErrNoZone},
		},
		{
			// the category name carries over into the next zone
			name:     "category persists across zones",
			in:       "<zone=a><category=c><k=v></category></zone><zone=b><x=y>",
			zones:    []string{"a", "b"},
			entries:  []entry{{"a/c/k", "v"}, {"b/c/x", "y"}},
			warnings: []error{ErrNoCategory},
		},
		{
			name:     "redeclared zone resets",
			in:       "<zone=a><category=c><k=v><zone=b><zone=a><category=d><x=y>",
			zones:    []string{"a", "b"},
			entries:  []entry{{"a/d/x", "y"}},
			warnings: []error{ErrRedeclared},
		},
		{
			name:     "redeclared category resets",
			in:       "<zone=a><category=c><k=v><category=c><x=y>",
			zones:    []string{"a"},
			entries:  []entry{{"a/c/x", "y"}},
			warnings: []error{ErrRedeclared},
		},
		{
			name:     "duplicate key keeps the last value",
			in:       "<zone=a><category=c><k=1><k=2>",
			zones:    []string{"a"},
			entries:  []entry{{"a/c/k", "2"}},
			warnings: []error{ErrDuplicateKey},
		},
		{
			name:     "unterminated tail",
			in:       "<zone=a><category=c><k=v><dangling=1",
			zones:    []string{"a"},
			entries:  []entry{{"a/c/k", "v"}},
			warnings: []error{token.ErrUnterminated},
		},
		{
			name:    "whitespace and text outside tokens",
			in:      "junk <zone = a >\n text <category= c><k = v w >",
			zones:   []string{"a"},
			entries: []entry{{"a/c/k", "v w"}},
		},
		{
			name:  "empty input",
			in:    "",
			zones: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ws []*Warning
			doc, err := Parse([]byte(tc.in), ParseWarnings(&ws))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.zones, doc.ZoneNames()); diff != "" {
				t.Errorf("zones (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.entries, entries(doc)); diff != "" {
				t.Errorf("entries (-want +got):\n%s", diff)
			}
			if len(ws) != len(tc.warnings) {
				t.Fatalf("got %d warnings %v, want %d", len(ws), ws, len(tc.warnings))
			}
			for i, w := range ws {
				if !errors.Is(w, tc.warnings[i]) {
					t.Errorf("warning %d: got %v, want %v", i, w, tc.warnings[i])
				}
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	in := "<zone=a>\n\t<category=c>\n\t\t<k=v>\n"
	pos := map[ir.Path]*token.Pos{}
	if _, err := Parse([]byte(in), ParsePositions(pos)); err != nil {
		t.Fatal(err)
	}
	want := map[string][2]int{
		"a":     {0, 0},
		"a/c":   {1, 1},
		"a/c/k": {2, 2},
	}
	if len(pos) != len(want) {
		t.Fatalf("got %d positions, want %d", len(pos), len(want))
	}
	for p, at := range pos {
		l, c := at.LineCol()
		w, ok := want[p.String()]
		if !ok {
			t.Errorf("unexpected position for %s", p)
			continue
		}
		if l != w[0] || c != w[1] {
			t.Errorf("%s at %d:%d, want %d:%d", p, l, c, w[0], w[1])
		}
	}
}

func TestParseStructured(t *testing.T) {
	in := `{"Work": {"Office": {"John": "chef", "Age": 42}, "Empty": {}}, "Home": {}}`
	doc, err := Parse([]byte(in), ParseFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Work", "Home"}, doc.ZoneNames()); diff != "" {
		t.Errorf("zones (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Office", "Empty"}, doc.Zone("Work").CategoryNames()); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
	if v, _ := doc.Lookup("Work", "Office", "Age"); v != "42" {
		t.Errorf("Age = %q", v)
	}
}

func TestParseStructuredErrors(t *testing.T) {
	tests := []string{
		`[1, 2]`,
		`{"Work": "flat"}`,
		`{"Work": {"Office": ["a"]}}`,
		`{"Work": {"Office": {"John": {"deep": "x"}}}}`,
		`{"Work": `,
	}
	for _, in := range tests {
		_, err := Parse([]byte(in), ParseYAML())
		if !errors.Is(err, ErrParse) {
			t.Errorf("%s: got %v, want ErrParse", in, err)
		}
	}
}

func TestPaths(t *testing.T) {
	toks := token.Tokenize(nil, []byte("<k=v><zone=a><category=c><x=1></category><zone=b><y=2>"))
	var got []string
	for _, p := range Paths(toks) {
		got = append(got, p.Level.String()+" "+p.String())
	}
	want := []string{
		"Key //k",
		"Zone a",
		"Category a/c",
		"Key a/c/x",
		"Zone b",
		"Key b/c/y",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
