package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders the character level difference between From and To with
// deletions as [-x-] and insertions as {+y+}.
func (c *Change) Text() string {
	return DiffString(c.From, c.To)
}

func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	b := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
