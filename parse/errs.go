package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrNoZone       = errors.New("category outside of a zone")
	ErrNoCategory   = errors.New("node outside of a category")
	ErrRedeclared   = errors.New("redeclared, previous contents dropped")
	ErrDuplicateKey = errors.New("duplicate key, previous value overwritten")
)

// Warning reports input that parses but probably does not mean what its
// author intended.
type Warning struct {
	Err   error
	Path  ir.Path
	Token *token.Token
}

func (w *Warning) Unwrap() error {
	return w.Err
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s %q: %s at %s", w.Path.Level, w.Path.String(), w.Err, w.Token.Pos)
}
