package pyvoc

import (
	"fmt"

	"github.com/signadot/pyvoc/ir"

	"github.com/expr-lang/expr"
)

// matchEnv is what a match expression sees for each node.
type matchEnv struct {
	Zone     string `expr:"zone"`
	Category string `expr:"category"`
	Key      string `expr:"key"`
	Value    string `expr:"value"`
}

// Match returns the entries of doc, in document order, for which the
// boolean expression src holds. src may refer to zone, category, key and
// value, for example
//
//	zone == "Work" && value startsWith "ch"
func Match(doc *ir.Doc, src string) ([]ir.Entry, error) {
	prg, err := expr.Compile(src, expr.Env(matchEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling match %q: %w", src, err)
	}
	var res []ir.Entry
	for _, e := range doc.Entries() {
		out, err := expr.Run(prg, matchEnv{
			Zone:     e.Zone,
			Category: e.Category,
			Key:      e.Key,
			Value:    e.Value,
		})
		if err != nil {
			return nil, fmt.Errorf("error matching %s: %w", e.Path, err)
		}
		if out.(bool) {
			res = append(res, e)
		}
	}
	return res, nil
}
