package main

import (
	"context"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	syms := symbols(doc)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols lists zones, with their categories and keys as children, at
// the place each was last declared.
func symbols(doc *document) []protocol.DocumentSymbol {
	res := []protocol.DocumentSymbol{}
	for _, z := range doc.doc.Zones {
		zs := doc.symbol(ir.ZonePath(z.Name), protocol.SymbolKindNamespace, "")
		for _, c := range z.Categories {
			cs := doc.symbol(ir.CategoryPath(z.Name, c.Name), protocol.SymbolKindModule, "")
			for _, n := range c.Nodes {
				cs.Children = append(cs.Children, doc.symbol(ir.KeyPath(z.Name, c.Name, n.Key), protocol.SymbolKindField, n.Value))
			}
			zs.Children = append(zs.Children, cs)
		}
		res = append(res, zs)
	}
	return res
}

func (doc *document) symbol(p ir.Path, kind protocol.SymbolKind, detail string) protocol.DocumentSymbol {
	r := protocol.Range{}
	if pos := doc.positions[p]; pos != nil {
		r = posRange(pos)
	}
	return protocol.DocumentSymbol{
		Name:           p.Name(),
		Detail:         detail,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
}

func posRange(pos *token.Pos) protocol.Range {
	l, c := pos.LineCol()
	p := protocol.Position{Line: uint32(l), Character: uint32(c)}
	return protocol.Range{Start: p, End: p}
}
