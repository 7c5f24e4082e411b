package libdiff

import (
	"errors"
	"testing"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Doc {
	t.Helper()
	doc, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func summary(changes []Change) []string {
	res := []string{}
	for i := range changes {
		res = append(res, changes[i].String())
	}
	return res
}

type diffTest struct {
	name     string
	from, to string
	want     []string
}

func TestDiff(t *testing.T) {
	tests := []diffTest{
		{
			name: "equal",
			from: "<zone=a><category=c><k=v>",
			to:   "<zone=a><category=c><k=v>",
			want: []string{},
		},
		{
			name: "key changes",
			from: "<zone=a><category=c><k=v><gone=1>",
			to:   "<zone=a><category=c><k=w><new=2>",
			want: []string{
				`~ a/c/k: [-v-]{+w+}`,
				`- a/c/gone = "1"`,
				`+ a/c/new = "2"`,
			},
		},
		{
			name: "removed zone is listed bottom up",
			from: "<zone=a><category=c><k=v><zone=b>",
			to:   "<zone=b>",
			want: []string{
				`- a/c/k = "v"`,
				`- Category "a/c"`,
				`- Zone "a"`,
			},
		},
		{
			name: "added category is listed top down",
			from: "<zone=a>",
			to:   "<zone=a><category=c><k=v><zone=b>",
			want: []string{
				`+ Category "a/c"`,
				`+ a/c/k = "v"`,
				`+ Zone "b"`,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := mustParse(t, tc.from), mustParse(t, tc.to)
			changes := Diff(from, to)
			if diff := cmp.Diff(tc.want, summary(changes)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
			got, err := Apply(from, changes)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(to) {
				t.Errorf("applying the diff does not give the target")
			}
			back, err := Apply(got, Reverse(changes))
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(from) {
				t.Errorf("applying the reverse does not give the source")
			}
		})
	}
}

func TestApplyConflict(t *testing.T) {
	from := mustParse(t, "<zone=a><category=c><k=v>")
	to := mustParse(t, "<zone=a><category=c><k=w>")
	changes := Diff(from, to)
	if _, err := Apply(to, changes); !errors.Is(err, ErrConflict) {
		t.Errorf("got %v, want ErrConflict", err)
	}
	orphan := []Change{{Op: Insert, Path: ir.KeyPath("x", "y", "z"), To: "1"}}
	if _, err := Apply(from, orphan); !errors.Is(err, ErrConflict) {
		t.Errorf("got %v, want ErrConflict", err)
	}
	if v, _ := from.Lookup("a", "c", "k"); v != "v" {
		t.Errorf("Apply modified its input")
	}
}

func TestDiffString(t *testing.T) {
	tests := [][3]string{
		{"chef", "chief", "ch{+i+}ef"},
		{"same", "same", "same"},
		{"", "new", "{+new+}"},
		{"manager", "", "[-manager-]"},
	}
	for _, tc := range tests {
		if got := DiffString(tc[0], tc[1]); got != tc[2] {
			t.Errorf("DiffString(%q, %q) = %q, want %q", tc[0], tc[1], got, tc[2])
		}
	}
}
