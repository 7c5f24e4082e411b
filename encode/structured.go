package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/pyvoc/ir"

	"github.com/goccy/go-yaml"
)

// MapSlice converts doc to nested ordered maps.
func MapSlice(doc *ir.Doc) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(doc.Zones))
	for _, z := range doc.Zones {
		zm := make(yaml.MapSlice, 0, len(z.Categories))
		for _, c := range z.Categories {
			cm := make(yaml.MapSlice, 0, len(c.Nodes))
			for _, n := range c.Nodes {
				cm = append(cm, yaml.MapItem{Key: n.Key, Value: n.Value})
			}
			zm = append(zm, yaml.MapItem{Key: c.Name, Value: cm})
		}
		res = append(res, yaml.MapItem{Key: z.Name, Value: zm})
	}
	return res
}

func encodeStructured(doc *ir.Doc, w io.Writer, es *EncState) error {
	yOpts := []yaml.EncodeOption{yaml.Indent(2)}
	if es.format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(MapSlice(doc), yOpts...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	if !bytes.HasSuffix(d, []byte{'\n'}) {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
