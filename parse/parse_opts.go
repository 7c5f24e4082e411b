package parse

import (
	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
)

type parseOpts struct {
	format    format.Format
	positions map[ir.Path]*token.Pos
	warnings  *[]*Warning
}

type ParseOption func(*parseOpts)

func ParsePyvoc() ParseOption {
	return ParseFormat(format.PyvocFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records in m where each zone, category and key was last
// declared. Only pyvoc input has positions.
func ParsePositions(m map[ir.Path]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseWarnings appends a [Warning] to *w for each token that lands
// outside its scope, redeclares a zone or category, or repeats a key.
func ParseWarnings(w *[]*Warning) ParseOption {
	return func(o *parseOpts) {
		o.warnings = w
	}
}
