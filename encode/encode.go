package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
)

type EncState struct {
	indent string
	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes doc to w in a single Write call.
func Encode(doc *ir.Doc, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return encodeStructured(doc, w, es)
	}
	buf := bytes.NewBuffer(nil)
	for _, z := range doc.Zones {
		es.open(buf, 0, token.ZoneKeyword, z.Name, ZoneColor)
		for _, c := range z.Categories {
			es.open(buf, 1, token.CategoryKeyword, c.Name, CategoryColor)
			for _, n := range c.Nodes {
				es.node(buf, 2, n)
			}
			es.close(buf, 1, token.CategoryKeyword)
		}
		es.close(buf, 0, token.ZoneKeyword)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (es *EncState) open(buf *bytes.Buffer, depth int, keyword, name string, nameAttr ColorAttr) {
	buf.WriteString(strings.Repeat(es.indent, depth))
	buf.WriteString(es.color(MarkerColor, "<"))
	buf.WriteString(es.color(KeywordColor, keyword))
	buf.WriteString(es.color(SepColor, "="))
	buf.WriteString(es.color(nameAttr, name))
	buf.WriteString(es.color(MarkerColor, ">"))
	buf.WriteByte('\n')
}

func (es *EncState) close(buf *bytes.Buffer, depth int, keyword string) {
	buf.WriteString(strings.Repeat(es.indent, depth))
	buf.WriteString(es.color(MarkerColor, "</"))
	buf.WriteString(es.color(KeywordColor, keyword))
	buf.WriteString(es.color(MarkerColor, ">"))
	buf.WriteByte('\n')
}

func (es *EncState) node(buf *bytes.Buffer, depth int, n *ir.Node) {
	buf.WriteString(strings.Repeat(es.indent, depth))
	buf.WriteString(es.color(MarkerColor, "<"))
	buf.WriteString(es.color(KeyColor, n.Key))
	buf.WriteString(es.color(SepColor, "="))
	buf.WriteString(es.color(ValueColor, n.Value))
	buf.WriteString(es.color(MarkerColor, ">"))
	buf.WriteByte('\n')
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(a, s)
}
