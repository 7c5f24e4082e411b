package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/pyvoc/ir"
)

var ErrConflict = errors.New("change does not apply")

// Apply returns a copy of doc with changes made in order. It fails,
// leaving doc untouched, when a change finds the document in a state
// other than the one it was computed against.
func Apply(doc *ir.Doc, changes []Change) (*ir.Doc, error) {
	res := doc.Clone()
	for i := range changes {
		if err := apply(res, &changes[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func apply(doc *ir.Doc, c *Change) error {
	p := c.Path
	switch c.Op {
	case Insert:
		if doc.Has(p) {
			return fmt.Errorf("%w: %s %q already exists", ErrConflict, p.Level, p)
		}
		if p.Level != ir.ZoneLevel && !doc.Has(p.Parent()) {
			return fmt.Errorf("%w: parent of %s %q is missing", ErrConflict, p.Level, p)
		}
		switch p.Level {
		case ir.ZoneLevel:
			doc.PutZone(p.Zone)
		case ir.CategoryLevel:
			doc.Zone(p.Zone).PutCategory(p.Category)
		case ir.KeyLevel:
			doc.Category(p.Zone, p.Category).Set(p.Key, c.To)
		}
	case Delete, Replace:
		if !doc.Has(p) {
			return fmt.Errorf("%w: %s %q does not exist", ErrConflict, p.Level, p)
		}
		if p.Level == ir.KeyLevel {
			if v, _ := doc.Lookup(p.Zone, p.Category, p.Key); v != c.From {
				return fmt.Errorf("%w: %q is %q, expected %q", ErrConflict, p, v, c.From)
			}
		}
		if c.Op == Delete {
			doc.Delete(p)
			break
		}
		if p.Level != ir.KeyLevel {
			return fmt.Errorf("%w: %s applies to keys only", ErrConflict, ReplaceTag)
		}
		doc.Category(p.Zone, p.Category).Set(p.Key, c.To)
	default:
		return fmt.Errorf("%w: unknown op %s", ErrConflict, c.Op)
	}
	return nil
}

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		res[i] = c.Invert()
	}
	slices.Reverse(res)
	return res
}
