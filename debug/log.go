package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/deuxsucres/xserializer/encode"
	"github.com/deuxsucres/xserializer/ir"
)

// XML wraps a node so that it prints as indented XML.
type XML struct{ *ir.Node }

func (x XML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x.Node, buf, encode.EncodeIndent(2)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x.Node)
	}
	return buf.String()
}

// Logf prints to stderr, rendering nodes as XML and maps or slices as
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Marshaler:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = XML{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
