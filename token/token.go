package token

import (
	"bytes"
	"fmt"
)

type TokenType int

const (
	TNode TokenType = iota
	TZone
	TCategory
	// TUnterminated holds text captured after the last '<' when the input
	// ends before a closing '>' or '/'.
	TUnterminated
)

const (
	ZoneKeyword     = "zone"
	CategoryKeyword = "category"
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNode:         "TNode",
		TZone:         "TZone",
		TCategory:     "TCategory",
		TUnterminated: "TUnterminated",
	}[t]
}

type Token struct {
	Type TokenType
	// Pos is the '<' which started the capture, End the closing '>' or
	// '/' (or the end of input).
	Pos, End *Pos
	Bytes    []byte

	// Left and Right are the whitespace stripped sides of the first '='.
	// Without '=', Left is the whole token and Right is empty.
	Left, Right string
	Assign      bool
}

// Name is the declared zone or category name, or the node key.
func (t *Token) Name() string {
	switch t.Type {
	case TZone, TCategory:
		return t.Right
	default:
		return t.Left
	}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q=%q", t.Type, t.Left, t.Right)
}

func newToken(buf []byte, start, end *Pos) Token {
	t := Token{
		Pos:   start,
		End:   end,
		Bytes: bytes.Clone(buf),
	}
	left, right, ok := bytes.Cut(buf, []byte{'='})
	t.Left = string(bytes.TrimSpace(left))
	t.Right = string(bytes.TrimSpace(right))
	t.Assign = ok
	switch t.Left {
	case ZoneKeyword:
		t.Type = TZone
	case CategoryKeyword:
		t.Type = TCategory
	default:
		t.Type = TNode
	}
	return t
}
