package main

import (
	"context"
	"fmt"

	"github.com/signadot/pyvoc/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text := hoverText(doc, int(params.Position.Line), int(params.Position.Character))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// tokenAt returns the index of the token spanning line and col, or -1.
func tokenAt(doc *document, line, col int) int {
	off := doc.posDoc.Offset(line, col)
	for i := range doc.toks {
		t := &doc.toks[i]
		if t.Pos.I <= off && off <= t.End.I {
			return i
		}
	}
	return -1
}

func hoverText(doc *document, line, col int) string {
	i := tokenAt(doc, line, col)
	if i == -1 {
		return ""
	}
	p := doc.paths[i]
	switch p.Level {
	case ir.ZoneLevel:
		z := doc.doc.Zone(p.Zone)
		if z == nil {
			return ""
		}
		return fmt.Sprintf("**Zone** `%s`\n\n%d categories", p.Zone, len(z.Categories))
	case ir.CategoryLevel:
		c := doc.doc.Category(p.Zone, p.Category)
		if c == nil {
			return ""
		}
		return fmt.Sprintf("**Category** `%s`\n\n%d keys", p, len(c.Nodes))
	default:
		v, ok := doc.doc.Lookup(p.Zone, p.Category, p.Key)
		if !ok {
			return ""
		}
		return fmt.Sprintf("**Key** `%s`\n\nvalue: `%s`", p, v)
	}
}
