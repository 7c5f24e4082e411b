package pyvoc

import (
	"fmt"
	"strings"

	"github.com/signadot/pyvoc/debug"
	"github.com/signadot/pyvoc/ir"
)

// Get returns the value of key k in category c of zone z. The error names
// the first level that does not resolve.
func (d *Document) Get(z, c, k string) (string, error) {
	z, c, k = trim(z), trim(c), trim(k)
	if !d.Bound() {
		return "", &Error{Kind: FileNotAssigned}
	}
	if n := d.check(z, c, k); n < 3 {
		return "", notFoundAt(n, z, c, k)
	}
	v, _ := d.doc.Lookup(z, c, k)
	return v, nil
}

// GetCategory returns the key/value pairs of category c in zone z.
func (d *Document) GetCategory(z, c string) (map[string]string, error) {
	z, c = trim(z), trim(c)
	if !d.Bound() {
		return nil, &Error{Kind: FileNotAssigned}
	}
	if n := d.check(z, c, ""); n < 2 {
		return nil, notFoundAt(n, z, c, "")
	}
	return d.doc.Category(z, c).Map(), nil
}

// Lookup is Get when a key is given and GetCategory otherwise.
func (d *Document) Lookup(z, c string, k ...string) (any, error) {
	switch len(k) {
	case 0:
		return d.GetCategory(z, c)
	case 1:
		return d.Get(z, c, k[0])
	default:
		return nil, fmt.Errorf("%w: %d keys given", ir.ErrBadPath, len(k))
	}
}

// trim strips the whitespace the parser would drop, keeping the model
// equal to what a reload of the written file gives.
func trim(s string) string {
	return strings.TrimSpace(s)
}

func (d *Document) check(z, c, k string) int {
	n := d.doc.DepthOf(z, c, k)
	if debug.Check() {
		debug.Logf("check %q/%q/%q resolved %d levels\n", z, c, k, n)
	}
	return n
}

// AddZone appends an empty zone.
func (d *Document) AddZone(z string) error {
	z = trim(z)
	return d.Update(func(doc *ir.Doc) error {
		if doc.Zone(z) != nil {
			return &Error{Kind: AlreadyExists, Level: ir.ZoneLevel, Name: z}
		}
		doc.PutZone(z)
		return nil
	})
}

// AddCategory appends an empty category to an existing zone.
func (d *Document) AddCategory(z, c string) error {
	z, c = trim(z), trim(c)
	return d.Update(func(doc *ir.Doc) error {
		zone := doc.Zone(z)
		if zone == nil {
			return notFoundAt(0, z, c, "")
		}
		if zone.Category(c) != nil {
			return &Error{Kind: AlreadyExists, Level: ir.CategoryLevel, Name: c}
		}
		zone.PutCategory(c)
		return nil
	})
}

// AddKey appends a node to an existing category.
func (d *Document) AddKey(z, c, k, v string) error {
	z, c, k, v = trim(z), trim(c), trim(k), trim(v)
	return d.Update(func(doc *ir.Doc) error {
		switch n := doc.DepthOf(z, c, k); n {
		case 0, 1:
			return notFoundAt(n, z, c, k)
		case 3:
			return &Error{Kind: AlreadyExists, Level: ir.KeyLevel, Name: k}
		}
		doc.Category(z, c).Set(k, v)
		return nil
	})
}

// Add adds whichever of z, c and k are missing, one persisted step at a
// time. Existing zones and categories are kept; an existing key is an
// AlreadyExists error, after the earlier steps have been written.
func (d *Document) Add(z, c, k, v string) error {
	z, c, k, v = trim(z), trim(c), trim(k), trim(v)
	if !d.Bound() {
		return &Error{Kind: NotInitialized}
	}
	if d.doc.Zone(z) == nil {
		if err := d.AddZone(z); err != nil {
			return err
		}
	}
	if d.doc.Category(z, c) == nil {
		if err := d.AddCategory(z, c); err != nil {
			return err
		}
	}
	return d.AddKey(z, c, k, v)
}

// Set overwrites the value of an existing key.
func (d *Document) Set(z, c, k, v string) error {
	z, c, k, v = trim(z), trim(c), trim(k), trim(v)
	if !d.Bound() {
		return &Error{Kind: FileNotAssigned}
	}
	return d.Update(func(doc *ir.Doc) error {
		if n := doc.DepthOf(z, c, k); n < 3 {
			return notFoundAt(n, z, c, k)
		}
		doc.Category(z, c).Set(k, v)
		return nil
	})
}

// Delete removes the deepest level named: the key when both a category
// and a key follow z, the category when only a category does, otherwise
// the whole zone.
func (d *Document) Delete(z string, sub ...string) error {
	var p ir.Path
	switch len(sub) {
	case 0:
		p = ir.ZonePath(z)
	case 1:
		p = ir.CategoryPath(z, sub[0])
	case 2:
		p = ir.KeyPath(z, sub[0], sub[1])
	default:
		return fmt.Errorf("%w: %d components", ir.ErrBadPath, len(sub)+1)
	}
	return d.DeletePath(p)
}

// DeletePath removes the element p addresses and everything under it.
func (d *Document) DeletePath(p ir.Path) error {
	p.Zone, p.Category, p.Key = trim(p.Zone), trim(p.Category), trim(p.Key)
	return d.Update(func(doc *ir.Doc) error {
		if !doc.Has(p) {
			return &Error{Kind: NotExists, Level: p.Level, Name: p.Name()}
		}
		doc.Delete(p)
		return nil
	})
}
