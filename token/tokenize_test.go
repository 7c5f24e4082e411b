package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokenizeTest struct {
	in  string
	out []string
}

func summarize(toks []Token) []string {
	res := make([]string, len(toks))
	for i := range toks {
		res[i] = toks[i].String()
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []tokenizeTest{
		{
			in: "<zone=Work>\n  <category=Office>\n    <John=chef>\n  </category>\n</zone>\n",
			out: []string{
				`TZone "zone"="Work"`,
				`TCategory "category"="Office"`,
				`TNode "John"="chef"`,
			},
		},
		{
			in:  "<zone = Work >",
			out: []string{`TZone "zone"="Work"`},
		},
		{
			// keywords are case sensitive
			in:  "<Zone=Work>",
			out: []string{`TNode "Zone"="Work"`},
		},
		{
			in:  "<flag>",
			out: []string{`TNode "flag"=""`},
		},
		{
			// split on the first '=' only
			in:  "<expr=a=b>",
			out: []string{`TNode "expr"="a=b"`},
		},
		{
			// '/' closes the token
			in:  "<url=http://example.com>",
			out: []string{`TNode "url"="http:"`},
		},
		{
			// a second '<' keeps capturing into the same buffer
			in:  "<a<b=c>",
			out: []string{`TNode "ab"="c"`},
		},
		{
			in:  "text outside > markers / is ignored",
			out: []string{},
		},
		{
			in:  "<=orphan>",
			out: []string{`TNode ""="orphan"`},
		},
		{
			in:  "<zone=A><dangling=1",
			out: []string{`TZone "zone"="A"`, `TUnterminated "dangling"="1"`},
		},
	}
	for _, tc := range tests {
		got := summarize(Tokenize(nil, []byte(tc.in)))
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	in := "<zone=Work>\n\t<category=Office>\n\t\t<John=chef>\n"
	toks := Tokenize(nil, []byte(in))
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	for i, tok := range toks {
		l, c := tok.Pos.LineCol()
		if l != want[i][0] || c != want[i][1] {
			t.Errorf("token %d at %d:%d, want %d:%d", i, l, c, want[i][0], want[i][1])
		}
		if in[tok.Pos.I] != '<' {
			t.Errorf("token %d does not start at '<'", i)
		}
		if in[tok.End.I] != '>' {
			t.Errorf("token %d does not end at '>'", i)
		}
	}
}

func TestPosDocOffset(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncde\n\nf"))
	for off := 0; off <= 9; off++ {
		l, c := d.LineCol(off)
		if got := d.Offset(l, c); got != off {
			t.Errorf("Offset(LineCol(%d)) = %d", off, got)
		}
	}
	if got := d.Offset(0, 99); got != 2 {
		t.Errorf("clamped offset = %d, want 2", got)
	}
	if got := d.Offset(99, 0); got != 9 {
		t.Errorf("past the end offset = %d, want 9", got)
	}
}
