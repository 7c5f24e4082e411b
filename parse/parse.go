package parse

import (
	"fmt"
	"io"

	"github.com/signadot/pyvoc/debug"
	"github.com/signadot/pyvoc/format"
	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Doc, error) {
	pOpts := &parseOpts{format: format.PyvocFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat, format.YAMLFormat:
		return parseStructured(d)
	}
	toks := token.Tokenize(nil, d)
	if debug.Tokens() {
		token.PrintTokens(toks, "parse")
	}
	doc := parseTokens(toks, pOpts)
	if debug.Parse() {
		debug.Logf("parsed %d tokens into %d zones:\n%v", len(toks), doc.Len(), doc)
	}
	return doc, nil
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Doc, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Parse(d, opts...)
}

// Paths returns, index for index, the path under which each token is
// stored: the zone and category in scope when it is reached.
func Paths(toks []token.Token) []ir.Path {
	var sc scope
	res := make([]ir.Path, len(toks))
	for i := range toks {
		res[i] = sc.next(&toks[i])
	}
	return res
}

// scope is the current zone and category. A node is stored under them
// whether or not they were declared.
type scope struct {
	zone, category string
}

func (s *scope) next(t *token.Token) ir.Path {
	switch t.Type {
	case token.TZone:
		s.zone = t.Right
		return ir.ZonePath(s.zone)
	case token.TCategory:
		s.category = t.Right
		return ir.CategoryPath(s.zone, s.category)
	default:
		return ir.KeyPath(s.zone, s.category, t.Left)
	}
}

func parseTokens(toks []token.Token, opts *parseOpts) *ir.Doc {
	var (
		doc                = ir.New()
		sc                 scope
		inZone, inCategory bool
	)
	for i := range toks {
		t := &toks[i]
		p := sc.next(t)
		switch t.Type {
		case token.TZone:
			if doc.Zone(p.Zone) != nil {
				opts.warn(ErrRedeclared, p, t)
			}
			doc.PutZone(p.Zone)
			inZone, inCategory = true, false
			opts.track(p, t)
		case token.TCategory:
			if !inZone {
				opts.warn(ErrNoZone, p, t)
			}
			z := doc.EnsureZone(p.Zone)
			if z.Category(p.Category) != nil {
				opts.warn(ErrRedeclared, p, t)
			}
			z.PutCategory(p.Category)
			inCategory = true
			opts.track(p, t)
		case token.TNode:
			if !inCategory {
				opts.warn(ErrNoCategory, p, t)
			}
			if doc.Resolves(p.Zone, p.Category, p.Key) {
				opts.warn(ErrDuplicateKey, p, t)
			}
			doc.Set(p.Zone, p.Category, p.Key, t.Right)
			opts.track(p, t)
		case token.TUnterminated:
			opts.warn(token.ErrUnterminated, p, t)
		}
	}
	return doc
}

func (o *parseOpts) warn(err error, p ir.Path, t *token.Token) {
	if o.warnings == nil {
		return
	}
	*o.warnings = append(*o.warnings, &Warning{Err: err, Path: p, Token: t})
}

func (o *parseOpts) track(p ir.Path, t *token.Token) {
	if o.positions != nil {
		o.positions[p] = t.Pos
	}
}
