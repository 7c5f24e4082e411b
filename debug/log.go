package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"
)

// Logf writes to stderr. Documents are rendered in pyvoc syntax and
// maps or slices as indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *ir.Doc:
			args[i] = docString(x)
		case map[string]any, map[string]string, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func docString(doc *ir.Doc) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Doc] %v", doc)
	}
	return buf.String()
}
