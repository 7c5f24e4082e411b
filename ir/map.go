package ir

// Entry is one key/value pair together with its address.
type Entry struct {
	Path
	Value string
}

// Entries lists every node of d in document order. Empty zones and
// categories contribute nothing.
func (d *Doc) Entries() []Entry {
	var res []Entry
	for _, z := range d.Zones {
		for _, c := range z.Categories {
			for _, n := range c.Nodes {
				res = append(res, Entry{
					Path:  KeyPath(z.Name, c.Name, n.Key),
					Value: n.Value,
				})
			}
		}
	}
	return res
}

// ToMap converts d to nested map[string]any values, the shape JSON
// tooling expects.
func (d *Doc) ToMap() map[string]any {
	res := make(map[string]any, len(d.Zones))
	for _, z := range d.Zones {
		zm := make(map[string]any, len(z.Categories))
		for _, c := range z.Categories {
			cm := make(map[string]any, len(c.Nodes))
			for _, n := range c.Nodes {
				cm[n.Key] = n.Value
			}
			zm[c.Name] = cm
		}
		res[z.Name] = zm
	}
	return res
}
