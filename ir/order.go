package ir

import "slices"

// OrderLike reorders d in place so that zones, categories and keys also
// present in ref come first, in ref's order. Entries ref does not have
// follow in their current order.
func (d *Doc) OrderLike(ref *Doc) {
	slices.SortStableFunc(d.Zones, byRank(ref.ZoneNames(), func(z *Zone) string { return z.Name }))
	for _, z := range d.Zones {
		rz := ref.Zone(z.Name)
		if rz == nil {
			continue
		}
		slices.SortStableFunc(z.Categories, byRank(rz.CategoryNames(), func(c *Category) string { return c.Name }))
		for _, c := range z.Categories {
			rc := rz.Category(c.Name)
			if rc == nil {
				continue
			}
			slices.SortStableFunc(c.Nodes, byRank(rc.Keys(), func(n *Node) string { return n.Key }))
		}
	}
}

func byRank[T any](names []string, name func(T) string) func(a, b T) int {
	rank := make(map[string]int, len(names))
	for i, n := range names {
		rank[n] = i
	}
	at := func(v T) int {
		if i, ok := rank[name(v)]; ok {
			return i
		}
		return len(names)
	}
	return func(a, b T) int { return at(a) - at(b) }
}
