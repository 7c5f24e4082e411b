package ir

import (
	"slices"
)

type Doc struct {
	Zones []*Zone
}

type Zone struct {
	Name       string
	Categories []*Category
}

type Category struct {
	Name  string
	Nodes []*Node
}

type Node struct {
	Key   string
	Value string
}

func New() *Doc {
	return &Doc{}
}

func (d *Doc) Len() int {
	return len(d.Zones)
}

func (d *Doc) Zone(name string) *Zone {
	i := d.zoneIndex(name)
	if i == -1 {
		return nil
	}
	return d.Zones[i]
}

// PutZone makes name an empty zone, replacing the contents of an existing
// zone of that name in place.
func (d *Doc) PutZone(name string) *Zone {
	if z := d.Zone(name); z != nil {
		z.Categories = nil
		return z
	}
	z := &Zone{Name: name}
	d.Zones = append(d.Zones, z)
	return z
}

// EnsureZone returns the zone called name, appending it if absent.
func (d *Doc) EnsureZone(name string) *Zone {
	if z := d.Zone(name); z != nil {
		return z
	}
	return d.PutZone(name)
}

func (d *Doc) DeleteZone(name string) bool {
	i := d.zoneIndex(name)
	if i == -1 {
		return false
	}
	d.Zones = slices.Delete(d.Zones, i, i+1)
	return true
}

func (d *Doc) ZoneNames() []string {
	res := make([]string, len(d.Zones))
	for i, z := range d.Zones {
		res[i] = z.Name
	}
	return res
}

func (d *Doc) zoneIndex(name string) int {
	return slices.IndexFunc(d.Zones, func(z *Zone) bool { return z.Name == name })
}

func (z *Zone) Category(name string) *Category {
	i := z.categoryIndex(name)
	if i == -1 {
		return nil
	}
	return z.Categories[i]
}

// PutCategory makes name an empty category of z, replacing the contents of
// an existing category of that name in place.
func (z *Zone) PutCategory(name string) *Category {
	if c := z.Category(name); c != nil {
		c.Nodes = nil
		return c
	}
	c := &Category{Name: name}
	z.Categories = append(z.Categories, c)
	return c
}

func (z *Zone) EnsureCategory(name string) *Category {
	if c := z.Category(name); c != nil {
		return c
	}
	return z.PutCategory(name)
}

func (z *Zone) DeleteCategory(name string) bool {
	i := z.categoryIndex(name)
	if i == -1 {
		return false
	}
	z.Categories = slices.Delete(z.Categories, i, i+1)
	return true
}

func (z *Zone) CategoryNames() []string {
	res := make([]string, len(z.Categories))
	for i, c := range z.Categories {
		res[i] = c.Name
	}
	return res
}

func (z *Zone) categoryIndex(name string) int {
	return slices.IndexFunc(z.Categories, func(c *Category) bool { return c.Name == name })
}

func (c *Category) Get(key string) (string, bool) {
	i := c.nodeIndex(key)
	if i == -1 {
		return "", false
	}
	return c.Nodes[i].Value, true
}

// Set overwrites the value of key in place or appends a new node.
func (c *Category) Set(key, value string) {
	if i := c.nodeIndex(key); i != -1 {
		c.Nodes[i].Value = value
		return
	}
	c.Nodes = append(c.Nodes, &Node{Key: key, Value: value})
}

func (c *Category) Delete(key string) bool {
	i := c.nodeIndex(key)
	if i == -1 {
		return false
	}
	c.Nodes = slices.Delete(c.Nodes, i, i+1)
	return true
}

func (c *Category) Keys() []string {
	res := make([]string, len(c.Nodes))
	for i, n := range c.Nodes {
		res[i] = n.Key
	}
	return res
}

// Map returns the key/value pairs of c.
func (c *Category) Map() map[string]string {
	res := make(map[string]string, len(c.Nodes))
	for _, n := range c.Nodes {
		res[n.Key] = n.Value
	}
	return res
}

func (c *Category) nodeIndex(key string) int {
	return slices.IndexFunc(c.Nodes, func(n *Node) bool { return n.Key == key })
}

func (d *Doc) Category(z, c string) *Category {
	zone := d.Zone(z)
	if zone == nil {
		return nil
	}
	return zone.Category(c)
}

func (d *Doc) Lookup(z, c, k string) (string, bool) {
	cat := d.Category(z, c)
	if cat == nil {
		return "", false
	}
	return cat.Get(k)
}

// Set stores value under z/c/k, creating the zone and category if needed.
func (d *Doc) Set(z, c, k, value string) {
	d.EnsureZone(z).EnsureCategory(c).Set(k, value)
}

// DepthOf returns how many of zone, category and key resolve by nested
// lookup: 0 when the zone is missing, 3 when the key is present.
func (d *Doc) DepthOf(z, c, k string) int {
	zone := d.Zone(z)
	if zone == nil {
		return 0
	}
	cat := zone.Category(c)
	if cat == nil {
		return 1
	}
	if _, ok := cat.Get(k); !ok {
		return 2
	}
	return 3
}

func (d *Doc) Resolves(z, c, k string) bool {
	return d.DepthOf(z, c, k) == 3
}

// Has reports whether every level of p resolves.
func (d *Doc) Has(p Path) bool {
	return d.DepthOf(p.Zone, p.Category, p.Key) >= int(p.Level)
}

// Delete removes the deepest level addressed by p.
func (d *Doc) Delete(p Path) bool {
	switch p.Level {
	case KeyLevel:
		cat := d.Category(p.Zone, p.Category)
		if cat == nil {
			return false
		}
		return cat.Delete(p.Key)
	case CategoryLevel:
		zone := d.Zone(p.Zone)
		if zone == nil {
			return false
		}
		return zone.DeleteCategory(p.Category)
	case ZoneLevel:
		return d.DeleteZone(p.Zone)
	}
	return false
}

func (d *Doc) Clone() *Doc {
	res := &Doc{Zones: make([]*Zone, len(d.Zones))}
	for i, z := range d.Zones {
		dz := &Zone{Name: z.Name, Categories: make([]*Category, len(z.Categories))}
		for j, c := range z.Categories {
			dc := &Category{Name: c.Name, Nodes: make([]*Node, len(c.Nodes))}
			for k, n := range c.Nodes {
				dc.Nodes[k] = &Node{Key: n.Key, Value: n.Value}
			}
			dz.Categories[j] = dc
		}
		res.Zones[i] = dz
	}
	return res
}

// Equal reports whether d and o hold the same zones, categories and
// key/value pairs. Order is not significant.
func (d *Doc) Equal(o *Doc) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Zones) != len(o.Zones) {
		return false
	}
	for _, z := range d.Zones {
		oz := o.Zone(z.Name)
		if oz == nil || len(oz.Categories) != len(z.Categories) {
			return false
		}
		for _, c := range z.Categories {
			oc := oz.Category(c.Name)
			if oc == nil || len(oc.Nodes) != len(c.Nodes) {
				return false
			}
			for _, n := range c.Nodes {
				v, ok := oc.Get(n.Key)
				if !ok || v != n.Value {
					return false
				}
			}
		}
	}
	return true
}
