package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/ir"

	"github.com/davecgh/go-spew/spew"
)

// Logf writes a message to stderr. *ir.Node arguments are rendered as
// ASCCONV text and maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

var dumper = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

// Dump writes a deep representation of v to stderr.
func Dump(label string, v any) {
	fmt.Fprintf(os.Stderr, "%s:\n%s", label, dumper.Sdump(v))
}
