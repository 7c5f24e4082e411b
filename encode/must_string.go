package encode

import (
	"bytes"

	"github.com/signadot/pyvoc/ir"
)

func MustString(doc *ir.Doc, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
