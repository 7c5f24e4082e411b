package pyvoc

import (
	"bytes"

	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of doc. Paths
// look like /zone/category/key.
func Patch(doc *ir.Doc, patch []byte) (*ir.Doc, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return fromJSON(doc, out)
}

// MergePatch applies an RFC 7386 merge patch to the JSON form of doc. A
// null member removes the zone, category or key it names.
func MergePatch(doc *ir.Doc, patch []byte) (*ir.Doc, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return fromJSON(doc, out)
}

// fromJSON parses a patched rendering of doc. Patching goes through Go
// maps, so the order of doc is restored afterwards.
func fromJSON(doc *ir.Doc, d []byte) (*ir.Doc, error) {
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	res.OrderLike(doc)
	return res, nil
}

func toJSON(doc *ir.Doc) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
