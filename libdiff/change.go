package libdiff

import (
	"fmt"

	"github.com/signadot/pyvoc/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return InsertTag
	case Delete:
		return DeleteTag
	case Replace:
		return ReplaceTag
	default:
		return fmt.Sprintf("!op(%d)", int(op))
	}
}

func (op Op) Symbol() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference between two documents. From and To are only
// meaningful for keys: From is the old value (Delete, Replace), To the
// new one (Insert, Replace).
type Change struct {
	Op   Op
	Path ir.Path
	From string
	To   string
}

func (c *Change) String() string {
	switch {
	case c.Path.Level != ir.KeyLevel:
		return fmt.Sprintf("%s %s %q", c.Op.Symbol(), c.Path.Level, c.Path.String())
	case c.Op == Insert:
		return fmt.Sprintf("+ %s = %q", c.Path, c.To)
	case c.Op == Delete:
		return fmt.Sprintf("- %s = %q", c.Path, c.From)
	default:
		return fmt.Sprintf("~ %s: %s", c.Path, c.Text())
	}
}

// Invert returns the change undoing c.
func (c Change) Invert() Change {
	switch c.Op {
	case Insert:
		c.Op = Delete
	case Delete:
		c.Op = Insert
	}
	c.From, c.To = c.To, c.From
	return c
}
