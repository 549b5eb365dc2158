package encode

import (
	"bytes"
	"strings"

	"github.com/deuxsucres/xserializer/ir"
)

// MustString encodes node on one line and panics on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
