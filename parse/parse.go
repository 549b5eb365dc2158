package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/deuxsucres/xserializer/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader reads one XML document from r and returns its root element.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	dec := xml.NewDecoder(r)

	var stack []*ir.Node
	var root *ir.Node
	rootClosed := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("%w: element %s", ErrOutsideRoot, t.Name.Local)
			}
			node := ir.New(t.Name.Local)
			for _, a := range t.Attr {
				if !po.keepNamespaces && isNamespaceDecl(a.Name) {
					continue
				}
				node.SetAttr(a.Name.Local, a.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			finish(stack[len(stack)-1], po)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isBlank(string(t)) {
					return nil, ErrOutsideRoot
				}
				continue
			}
			top := stack[len(stack)-1]
			top.Text += string(t)
			top.HasText = true
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// finish drops layout whitespace from elements with children.
func finish(node *ir.Node, po *parseOpts) {
	if po.keepWhitespace || node.IsLeaf() || !isBlank(node.Text) {
		return
	}
	node.Text = ""
	node.HasText = false
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || n.Space == "" && n.Local == "xmlns"
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\uFEFF' || unicode.IsSpace(r)
	}) == ""
}
