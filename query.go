package pyvoc

import (
	"fmt"

	"github.com/signadot/pyvoc/ir"

	"github.com/ohler55/ojg/jp"
)

// Query evaluates the JSONPath expression path against the nested map
// form of doc, as in $.Work.Office.John or $..John.
func Query(doc *ir.Doc, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", path, err)
	}
	return x.Get(doc.ToMap()), nil
}
