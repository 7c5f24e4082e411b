package pyvoc

import (
	"testing"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"

	"github.com/google/go-cmp/cmp"
)

const sample = `
<zone=Work>
	<category=Office>
		<John=chef>
		<Bob=colleague>
	</category>
</zone>
<zone=Home>
	<category=Family>
		<Ann=sister>
	</category>
</zone>
`

func sampleDoc(t *testing.T) *ir.Doc {
	t.Helper()
	doc, err := parse.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func paths(es []ir.Entry) []string {
	res := []string{}
	for _, e := range es {
		res = append(res, e.Path.String())
	}
	return res
}

func TestMatch(t *testing.T) {
	doc := sampleDoc(t)
	tests := []struct {
		expr string
		want []string
	}{
		{`zone == "Work"`, []string{"Work/Office/John", "Work/Office/Bob"}},
		{`value startsWith "c"`, []string{"Work/Office/John", "Work/Office/Bob"}},
		{`key in ["Ann", "John"]`, []string{"Work/Office/John", "Home/Family/Ann"}},
		{`category == "Nope"`, []string{}},
		{`true`, []string{"Work/Office/John", "Work/Office/Bob", "Home/Family/Ann"}},
	}
	for _, tc := range tests {
		got, err := Match(doc, tc.expr)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		if diff := cmp.Diff(tc.want, paths(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.expr, diff)
		}
	}
}

func TestMatchErrors(t *testing.T) {
	doc := sampleDoc(t)
	for _, src := range []string{`zone +`, `value`, `nosuchvar == 1`} {
		if _, err := Match(doc, src); err == nil {
			t.Errorf("%s: expected an error", src)
		}
	}
}

func TestQuery(t *testing.T) {
	doc := sampleDoc(t)
	got, err := Query(doc, "$.Work.Office.John")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"chef"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = Query(doc, "$..Ann")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"sister"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := Query(doc, "$.Work["); err == nil {
		t.Error("expected a parse error")
	}
}

func TestPatch(t *testing.T) {
	doc := sampleDoc(t)
	out, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/Work/Office/John", "value": "manager"},
		{"op": "remove", "path": "/Work/Office/Bob"},
		{"op": "add", "path": "/Home/Garden", "value": {"Rose": "red"}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.New()
	want.Set("Work", "Office", "John", "manager")
	want.Set("Home", "Family", "Ann", "sister")
	want.Set("Home", "Garden", "Rose", "red")
	if !want.Equal(out) {
		t.Errorf("unexpected patch result: %v", out.ToMap())
	}
	if v, _ := doc.Lookup("Work", "Office", "John"); v != "chef" {
		t.Errorf("input document modified")
	}
}

func TestMergePatch(t *testing.T) {
	doc := sampleDoc(t)
	out, err := MergePatch(doc, []byte(`{"Work": {"Office": {"Bob": null, "Eve": "intern"}}, "Home": null}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.New()
	want.Set("Work", "Office", "John", "chef")
	want.Set("Work", "Office", "Eve", "intern")
	if !want.Equal(out) {
		t.Errorf("unexpected merge result: %v", out.ToMap())
	}
	if _, err := MergePatch(doc, []byte(`{"Work": {"Office": {"John": {"too": "deep"}}}}`)); err == nil {
		t.Error("expected a parse error for a four level result")
	}
}

func TestPatchKeepsOrder(t *testing.T) {
	doc := sampleDoc(t)
	out, err := Patch(doc, []byte(`[{"op": "replace", "path": "/Work/Office/John", "value": "manager"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Work", "Home"}, out.ZoneNames()); diff != "" {
		t.Errorf("zone order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"John", "Bob"}, out.Category("Work", "Office").Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}

	out, err = MergePatch(doc, []byte(`{"Work": {"Office": {"Al": "new"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Work", "Home"}, out.ZoneNames()); diff != "" {
		t.Errorf("zone order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"John", "Bob", "Al"}, out.Category("Work", "Office").Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}
