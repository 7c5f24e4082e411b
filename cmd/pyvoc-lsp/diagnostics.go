package main

import (
	"context"
	"sync"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"
	"github.com/signadot/pyvoc/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document with everything derived from it.
// paths[i] is where toks[i] is stored.
type document struct {
	uri       string
	content   string
	version   int32
	posDoc    *token.PosDoc
	toks      []token.Token
	paths     []ir.Path
	doc       *ir.Doc
	positions map[ir.Path]*token.Pos
	warnings  []*parse.Warning
}

func newDocument(uri, content string, version int32) *document {
	d := []byte(content)
	res := &document{
		uri:       uri,
		content:   content,
		version:   version,
		posDoc:    token.NewPosDoc(d),
		toks:      token.Tokenize(nil, d),
		positions: make(map[ir.Path]*token.Pos),
	}
	res.paths = parse.Paths(res.toks)
	// pyvoc input always parses
	res.doc, _ = parse.Parse(d, parse.ParsePositions(res.positions), parse.ParseWarnings(&res.warnings))
	return res
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics(doc),
		})
	}
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	for _, w := range doc.warnings {
		res = append(res, protocol.Diagnostic{
			Range:    tokenRange(w.Token),
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  w.Error(),
			Source:   "pyvoc",
		})
	}
	return res
}

func tokenRange(t *token.Token) protocol.Range {
	sl, sc := t.Pos.LineCol()
	el, ec := t.End.LineCol()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec + 1)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change; a zero range replaces the
// whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	pd := token.NewPosDoc([]byte(content))
	start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
	end := pd.Offset(int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
