package parse

import (
	"fmt"

	"github.com/signadot/pyvoc/ir"

	"github.com/goccy/go-yaml"
)

// parseStructured reads the JSON or YAML rendering of a document: an
// object of zones, each an object of categories, each an object of
// scalar values. JSON is read as YAML.
func parseStructured(d []byte) (*ir.Doc, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	doc := ir.New()
	if v == nil {
		return doc, nil
	}
	zones, err := object(v, "document")
	if err != nil {
		return nil, err
	}
	for _, zi := range zones {
		zName := scalar(zi.Key)
		z := doc.PutZone(zName)
		cats, err := object(zi.Value, "zone "+zName)
		if err != nil {
			return nil, err
		}
		for _, ci := range cats {
			cName := scalar(ci.Key)
			c := z.PutCategory(cName)
			nodes, err := object(ci.Value, "category "+zName+"/"+cName)
			if err != nil {
				return nil, err
			}
			for _, ni := range nodes {
				switch ni.Value.(type) {
				case yaml.MapSlice, []any:
					return nil, fmt.Errorf("%w: value of %s/%s/%v must be a scalar", ErrParse, zName, cName, ni.Key)
				}
				c.Set(scalar(ni.Key), scalar(ni.Value))
			}
		}
	}
	return doc, nil
}

func object(v any, what string) (yaml.MapSlice, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an object, got %T", ErrParse, what, v)
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
