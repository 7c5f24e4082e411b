package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
)

// UnterminatedErr describes a capture still open at the end of input.
func UnterminatedErr(t *Token) error {
	return fmt.Errorf("%w token %q at %s", ErrUnterminated, t.Bytes, t.Pos)
}
