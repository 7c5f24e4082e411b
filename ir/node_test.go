package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *Doc {
	d := New()
	d.Set("Work", "Office", "John", "chef")
	d.Set("Work", "Office", "Bob", "colleague")
	d.Set("Work", "Remote", "Steve", "friend")
	d.PutZone("Home")
	return d
}

func TestDepthOf(t *testing.T) {
	d := testDoc()
	tests := []struct {
		z, c, k string
		depth   int
	}{
		{"NoZone", "NoCategory", "NoKey", 0},
		{"Home", "Kitchen", "", 1},
		{"Work", "Office", "Alice", 2},
		{"Work", "Office", "John", 3},
		{"Work", "Remote", "John", 2},
	}
	for _, tc := range tests {
		got := d.DepthOf(tc.z, tc.c, tc.k)
		if got != tc.depth {
			t.Errorf("DepthOf(%q, %q, %q) = %d, want %d", tc.z, tc.c, tc.k, got, tc.depth)
		}
		if d.Resolves(tc.z, tc.c, tc.k) != (tc.depth == 3) {
			t.Errorf("Resolves(%q, %q, %q) disagrees with depth %d", tc.z, tc.c, tc.k, tc.depth)
		}
	}
}

func TestHas(t *testing.T) {
	d := testDoc()
	if !d.Has(ZonePath("Home")) {
		t.Error("expected zone Home")
	}
	if !d.Has(CategoryPath("Work", "Remote")) {
		t.Error("expected category Work/Remote")
	}
	if d.Has(CategoryPath("Home", "Remote")) {
		t.Error("unexpected category Home/Remote")
	}
	if d.Has(KeyPath("Work", "Remote", "Bob")) {
		t.Error("unexpected key Work/Remote/Bob")
	}
}

func TestSetKeepsPosition(t *testing.T) {
	d := testDoc()
	d.Set("Work", "Office", "John", "manager")
	cat := d.Category("Work", "Office")
	if diff := cmp.Diff([]string{"John", "Bob"}, cat.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	v, _ := cat.Get("John")
	if v != "manager" {
		t.Errorf("got %q, want manager", v)
	}
}

func TestPutResets(t *testing.T) {
	d := testDoc()
	d.PutZone("Work")
	if len(d.Zone("Work").Categories) != 0 {
		t.Error("PutZone should empty an existing zone")
	}
	if diff := cmp.Diff([]string{"Work", "Home"}, d.ZoneNames()); diff != "" {
		t.Errorf("zone order (-want +got):\n%s", diff)
	}
}

func TestDeleteTargetsOneLevel(t *testing.T) {
	d := testDoc()
	if !d.Delete(CategoryPath("Work", "Office")) {
		t.Fatal("delete Work/Office failed")
	}
	if d.Zone("Work") == nil || d.Category("Work", "Remote") == nil {
		t.Fatal("delete removed more than the category")
	}
	if d.Delete(KeyPath("Work", "Office", "John")) {
		t.Error("deleting under a removed category should fail")
	}
	if !d.Delete(ZonePath("Home")) {
		t.Error("delete Home failed")
	}
	if diff := cmp.Diff([]string{"Work"}, d.ZoneNames()); diff != "" {
		t.Errorf("zones (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := testDoc()
	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone differs")
	}
	c.Set("Work", "Office", "John", "intern")
	if v, _ := d.Lookup("Work", "Office", "John"); v != "chef" {
		t.Errorf("original changed through clone: %q", v)
	}
	if d.Equal(c) {
		t.Error("Equal missed a value change")
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := New()
	a.Set("z", "c", "k1", "1")
	a.Set("z", "c", "k2", "2")
	b := New()
	b.Set("z", "c", "k2", "2")
	b.Set("z", "c", "k1", "1")
	if !a.Equal(b) {
		t.Error("order should not matter")
	}
}

func TestEntriesAndMap(t *testing.T) {
	d := testDoc()
	want := []Entry{
		{Path: KeyPath("Work", "Office", "John"), Value: "chef"},
		{Path: KeyPath("Work", "Office", "Bob"), Value: "colleague"},
		{Path: KeyPath("Work", "Remote", "Steve"), Value: "friend"},
	}
	if diff := cmp.Diff(want, d.Entries()); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
	m := d.ToMap()
	wantMap := map[string]any{
		"Work": map[string]any{
			"Office": map[string]any{"John": "chef", "Bob": "colleague"},
			"Remote": map[string]any{"Steve": "friend"},
		},
		"Home": map[string]any{},
	}
	if diff := cmp.Diff(wantMap, m); diff != "" {
		t.Errorf("map (-want +got):\n%s", diff)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
		err  bool
	}{
		{in: "Work", want: ZonePath("Work")},
		{in: "Work/Office", want: CategoryPath("Work", "Office")},
		{in: "Work/Office/John", want: KeyPath("Work", "Office", "John")},
		{in: "", want: ZonePath("")},
		{in: "a/b/c/d", err: true},
	}
	for _, tc := range tests {
		got, err := ParsePath(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParsePath(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePath(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func TestLevelText(t *testing.T) {
	for _, l := range Levels() {
		d, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Level
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != l {
			t.Errorf("%s: got %s", l, back)
		}
	}
	var l Level
	if err := l.UnmarshalText([]byte("Bucket")); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOrderLike(t *testing.T) {
	ref := testDoc()
	d := New()
	d.Set("Home", "Garden", "Rose", "red")
	d.Set("Work", "Remote", "Steve", "friend")
	d.Set("Work", "Office", "Bob", "colleague")
	d.Set("Work", "Office", "Zed", "new")
	d.Set("Work", "Office", "John", "chef")
	d.OrderLike(ref)
	if diff := cmp.Diff([]string{"Work", "Home"}, d.ZoneNames()); diff != "" {
		t.Errorf("zones (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Office", "Remote"}, d.Zone("Work").CategoryNames()); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"John", "Bob", "Zed"}, d.Category("Work", "Office").Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}
