package main

import (
	"context"
	"slices"
	"strings"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	items := completions(doc, int(params.Position.Line), int(params.Position.Character))
	if items == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: items}, nil
}

// completions offers the zone= and category= markers and, inside a
// category, the keys its sibling categories use that it lacks. It only
// applies while typing the name part of a '<' token.
func completions(doc *document, line, col int) []protocol.CompletionItem {
	off := doc.posDoc.Offset(line, col)
	before := doc.content[:off]
	lt := strings.LastIndexByte(before, '<')
	if lt == -1 {
		return nil
	}
	prefix := before[lt+1:]
	if strings.ContainsAny(prefix, ">/=") {
		return nil
	}
	prefix = strings.TrimSpace(prefix)
	var res []protocol.CompletionItem
	for _, kw := range []string{token.ZoneKeyword, token.CategoryKeyword} {
		if strings.HasPrefix(kw, prefix) {
			res = append(res, protocol.CompletionItem{
				Label:      kw + "=",
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: kw + "=",
			})
		}
	}
	scope, ok := scopeAt(doc, lt)
	if !ok {
		return res
	}
	for _, k := range siblingKeys(doc.doc, scope) {
		if strings.HasPrefix(k, prefix) {
			res = append(res, protocol.CompletionItem{
				Label:      k,
				Kind:       protocol.CompletionItemKindField,
				Detail:     "key used in " + scope.Zone,
				InsertText: k + "=",
			})
		}
	}
	return res
}

// scopeAt returns the category in scope at byte offset off.
func scopeAt(doc *document, off int) (ir.Path, bool) {
	var res ir.Path
	found := false
	for i := range doc.toks {
		if doc.toks[i].Pos.I >= off {
			break
		}
		p := doc.paths[i]
		switch p.Level {
		case ir.ZoneLevel:
			found = false
		case ir.CategoryLevel, ir.KeyLevel:
			res = ir.CategoryPath(p.Zone, p.Category)
			found = true
		}
	}
	return res, found
}

func siblingKeys(doc *ir.Doc, cat ir.Path) []string {
	z := doc.Zone(cat.Zone)
	if z == nil {
		return nil
	}
	cur := z.Category(cat.Category)
	var res []string
	for _, c := range z.Categories {
		if c.Name == cat.Category {
			continue
		}
		for _, k := range c.Keys() {
			if cur != nil {
				if _, ok := cur.Get(k); ok {
					continue
				}
			}
			if !slices.Contains(res, k) {
				res = append(res, k)
			}
		}
	}
	return res
}
