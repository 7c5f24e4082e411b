package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/libdiff"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestEditArgs(t *testing.T) {
	file, p, v, err := editArgs("add", []string{"a.pyvoc", "Work/Office/John", "head", "chef"})
	if err != nil {
		t.Fatal(err)
	}
	if file != "a.pyvoc" || p != ir.KeyPath("Work", "Office", "John") || v != "head chef" {
		t.Errorf("got %q %v %q", file, p, v)
	}
	if _, _, _, err := editArgs("add", []string{"a.pyvoc"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
	if _, _, _, err := editArgs("add", []string{"a.pyvoc", "a/b/c/d"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
}

func TestFormatSelection(t *testing.T) {
	cfg := &MainConfig{}
	if got := cfg.outFormat(); got != format.PyvocFormat {
		t.Errorf("default output format %s", got)
	}
	cfg.Y = true
	if got := cfg.outFormat(); got != format.YAMLFormat {
		t.Errorf("-y output format %s", got)
	}
	j := format.JSONFormat
	cfg.OutFormat = &j
	if got := cfg.outFormat(); got != format.JSONFormat {
		t.Errorf("-O json output format %s", got)
	}
}

func TestWriteChanges(t *testing.T) {
	changes := []libdiff.Change{
		{Op: libdiff.Insert, Path: ir.ZonePath("Home")},
		{Op: libdiff.Replace, Path: ir.KeyPath("Work", "Office", "John"), From: "chef", To: "chief"},
	}
	buf := bytes.NewBuffer(nil)
	if err := writeChanges(buf, changes, false); err != nil {
		t.Fatal(err)
	}
	want := "+ Zone \"Home\"\n~ Work/Office/John: ch{+i+}ef\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func runPyvoc(t *testing.T, args ...string) string {
	t.Helper()
	out := nopCloser{bytes.NewBuffer(nil)}
	cc := &cli.Context{Out: out, Err: nopCloser{bytes.NewBuffer(nil)}, Go: context.Background()}
	if err := MainCommand().Run(cc, args); err != nil {
		t.Fatalf("pyvoc %v: %v", args, err)
	}
	return out.String()
}

func TestPathCommandsTakeFileFirst(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.pyvoc")
	if err := os.WriteFile(file, []byte("<zone=Work><category=Office><John=chef></category></zone>"), 0o644); err != nil {
		t.Fatal(err)
	}
	runPyvoc(t, "add", file, "Work/Office/Bob", "colleague")
	runPyvoc(t, "set", file, "Work/Office/John", "manager")
	if got := runPyvoc(t, "get", file, "Work/Office/John"); got != "manager\n" {
		t.Errorf("get John: %q", got)
	}
	runPyvoc(t, "delete", file, "Work/Office/John")
	if got := runPyvoc(t, "get", file, "Work/Office/Bob"); got != "colleague\n" {
		t.Errorf("get Bob: %q", got)
	}
}
