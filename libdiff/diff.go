package libdiff

import (
	"github.com/signadot/pyvoc/ir"
)

// Diff returns the changes turning from into to. Changes are ordered by
// position in from, followed by what only to has, in its order.
func Diff(from, to *ir.Doc) []Change {
	var res []Change
	for _, fz := range from.Zones {
		tz := to.Zone(fz.Name)
		if tz == nil {
			res = deleteZone(res, fz)
			continue
		}
		for _, fc := range fz.Categories {
			tc := tz.Category(fc.Name)
			if tc == nil {
				res = deleteCategory(res, fz.Name, fc)
				continue
			}
			res = diffCategory(res, fz.Name, fc, tc)
		}
		for _, tc := range tz.Categories {
			if fz.Category(tc.Name) == nil {
				res = insertCategory(res, fz.Name, tc)
			}
		}
	}
	for _, tz := range to.Zones {
		if from.Zone(tz.Name) == nil {
			res = insertZone(res, tz)
		}
	}
	return res
}

func diffCategory(res []Change, z string, from, to *ir.Category) []Change {
	for _, n := range from.Nodes {
		p := ir.KeyPath(z, from.Name, n.Key)
		v, ok := to.Get(n.Key)
		switch {
		case !ok:
			res = append(res, Change{Op: Delete, Path: p, From: n.Value})
		case v != n.Value:
			res = append(res, Change{Op: Replace, Path: p, From: n.Value, To: v})
		}
	}
	for _, n := range to.Nodes {
		if _, ok := from.Get(n.Key); !ok {
			res = append(res, Change{Op: Insert, Path: ir.KeyPath(z, to.Name, n.Key), To: n.Value})
		}
	}
	return res
}

func deleteZone(res []Change, z *ir.Zone) []Change {
	for _, c := range z.Categories {
		res = deleteCategory(res, z.Name, c)
	}
	return append(res, Change{Op: Delete, Path: ir.ZonePath(z.Name)})
}

func deleteCategory(res []Change, z string, c *ir.Category) []Change {
	for _, n := range c.Nodes {
		res = append(res, Change{Op: Delete, Path: ir.KeyPath(z, c.Name, n.Key), From: n.Value})
	}
	return append(res, Change{Op: Delete, Path: ir.CategoryPath(z, c.Name)})
}

func insertZone(res []Change, z *ir.Zone) []Change {
	res = append(res, Change{Op: Insert, Path: ir.ZonePath(z.Name)})
	for _, c := range z.Categories {
		res = insertCategory(res, z.Name, c)
	}
	return res
}

func insertCategory(res []Change, z string, c *ir.Category) []Change {
	res = append(res, Change{Op: Insert, Path: ir.CategoryPath(z, c.Name)})
	for _, n := range c.Nodes {
		res = append(res, Change{Op: Insert, Path: ir.KeyPath(z, c.Name, n.Key), To: n.Value})
	}
	return res
}
