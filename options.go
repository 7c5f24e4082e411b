package pyvoc

import (
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

type Option func(*Document)

// WithName sets the display name of the document. The default is
// [DefaultName].
func WithName(name string) Option {
	return func(d *Document) { d.Name = name }
}

// WithFS makes the document read and write its file through fs instead
// of the operating system. Paths are then used as given, relative to the
// root of fs.
func WithFS(fs billy.Filesystem) Option {
	return func(d *Document) {
		d.fs = fs
		d.resolve = func(p string) (string, error) { return filepath.Clean(p), nil }
	}
}

// WithLogger sets the logger receiving load, write and create events at
// debug level. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.log = l }
}
