package pyvoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/pyvoc/debug"
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	// DefaultName is the name of a document opened without WithName.
	DefaultName = "PyVoc"
	// NewName and NewPath are what Create uses for empty arguments.
	NewName = "New_PyVoc"
	NewPath = "New_PyVoc.pyvoc"
)

// Document is a pyvoc model together with the file backing it.
type Document struct {
	Name string

	path    string
	doc     *ir.Doc
	fs      billy.Filesystem
	resolve func(string) (string, error)
	log     *slog.Logger
}

// New returns an empty document bound to no file.
func New(opts ...Option) *Document {
	d := &Document{
		Name:    DefaultName,
		doc:     ir.New(),
		fs:      osfs.New("/"),
		resolve: filepath.Abs,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open loads the file at path. An empty path gives an unbound document
// like [New]; a path which does not exist gives a FileNotFound error.
func Open(path string, opts ...Option) (*Document, error) {
	d := New(opts...)
	if path == "" {
		return d, nil
	}
	abs, err := d.resolve(path)
	if err != nil {
		return nil, &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	if _, err := d.fs.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: FileNotFound, Name: path}
		}
		return nil, &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	d.path = abs
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the absolute path of the backing file, or "" when the
// document is unbound.
func (d *Document) Path() string {
	return d.path
}

func (d *Document) Bound() bool {
	return d.path != ""
}

// Doc returns a copy of the model.
func (d *Document) Doc() *ir.Doc {
	return d.doc.Clone()
}

// Reload replaces the model with the current contents of the backing
// file.
func (d *Document) Reload() error {
	if !d.Bound() {
		return &Error{Kind: FileNotAssigned}
	}
	f, err := d.fs.Open(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Kind: FileNotFound, Name: d.path}
		}
		return &Error{Kind: InvalidPath, Name: d.path, Err: err}
	}
	defer f.Close()
	var warnings []*parse.Warning
	doc, err := parse.ParseReader(f, parse.ParseWarnings(&warnings))
	if err != nil {
		return &Error{Kind: InvalidPath, Name: d.path, Err: err}
	}
	for _, w := range warnings {
		d.log.Debug("parse warning", "path", d.path, "warning", w)
	}
	d.doc = doc
	d.log.Debug("loaded", "path", d.path, "zones", doc.Len())
	return nil
}

// Save writes the model to path, or to the backing file when path is
// empty. An unbound document saves to [NewPath] in the current
// directory. Save does not rebind the document.
func (d *Document) Save(path string) error {
	target := d.path
	switch {
	case path != "":
		target = path
	case target == "":
		target = NewPath
	}
	abs, err := d.resolve(target)
	if err != nil {
		return &Error{Kind: InvalidPath, Name: target, Err: err}
	}
	return d.write(d.doc, abs)
}

// Create makes an empty file at path and rebinds the document to it with
// the given name. Empty arguments default to [NewPath] and [NewName]. It
// fails with FileExists when path is already present.
func (d *Document) Create(path, name string) error {
	if path == "" {
		path = NewPath
	}
	if name == "" {
		name = NewName
	}
	abs, err := d.resolve(path)
	if err != nil {
		return &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	if _, err := d.fs.Stat(abs); err == nil {
		return &Error{Kind: FileExists, Name: path}
	}
	f, err := d.fs.OpenFile(abs, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &Error{Kind: FileExists, Name: path}
		}
		return &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	d.path = abs
	d.Name = name
	d.doc = ir.New()
	d.log.Debug("created", "path", abs, "name", name)
	return nil
}

// Update applies fn to a copy of the model, rewrites the backing file
// and then adopts the copy. When fn or the write fails the model is left
// as it was.
func (d *Document) Update(fn func(*ir.Doc) error) error {
	if !d.Bound() {
		return &Error{Kind: NotInitialized}
	}
	next := d.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := d.write(next, d.path); err != nil {
		return err
	}
	d.doc = next
	return nil
}

// write replaces the contents of path with the encoding of doc.
func (d *Document) write(doc *ir.Doc, path string) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if debug.Write() {
		debug.Logf("writing %d bytes to %s:\n%s", buf.Len(), path, buf.String())
	}
	f, err := d.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	_, err = f.Write(buf.Bytes())
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return &Error{Kind: InvalidPath, Name: path, Err: err}
	}
	d.log.Debug("wrote", "path", path, "zones", doc.Len(), "bytes", buf.Len())
	return nil
}

const rule = "--------------------------------------------------------------------------------"

// Dump writes a listing of the document headed by its name and path.
func (d *Document) Dump(w io.Writer) error {
	if !d.Bound() {
		return &Error{Kind: FileNotAssigned}
	}
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "%s\nDocument name: %s\nos_path: %s\n", rule, d.Name, d.path)
	for _, z := range d.doc.Zones {
		fmt.Fprintf(buf, "%s\nZone: %s\n", rule, z.Name)
		for _, c := range z.Categories {
			fmt.Fprintf(buf, "\tCategory: %s\n", c.Name)
			for _, n := range c.Nodes {
				fmt.Fprintf(buf, "\t\t%s %s\n", n.Key, n.Value)
			}
		}
	}
	buf.WriteString(rule + "\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func (d *Document) String() string {
	b := &strings.Builder{}
	if err := d.Dump(b); err != nil {
		return err.Error()
	}
	return b.String()
}
