package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deuxsucres/xserializer/ir"
)

var ErrEncoding = errors.New("encoding error")

const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	depth, indent int
	decl          bool

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.decl {
		if err := writeString(w, es.paint(DeclColor, Declaration)); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if !validName(node.Name) {
		return fmt.Errorf("%w: invalid element name %q at %s", ErrEncoding, node.Name, node.Path())
	}
	if err := writeStartTag(node, w, es); err != nil {
		return err
	}
	if node.IsLeaf() && !node.HasText {
		return writeString(w, es.paint(SepColor, "/>"))
	}
	if err := writeString(w, es.paint(SepColor, ">")); err != nil {
		return err
	}
	if node.HasText {
		if err := writeString(w, es.paint(TextColor, escapeText(node.Text))); err != nil {
			return err
		}
	}
	if !node.IsLeaf() {
		// text next to child elements must not gain indentation
		inner := es
		if node.HasText {
			flat := *es
			flat.indent = 0
			inner = &flat
		}
		inner.depth++
		for _, child := range node.Children {
			if err := writeNL(w, inner); err != nil {
				return err
			}
			if err := encode(child, w, inner); err != nil {
				return err
			}
		}
		inner.depth--
		if err := writeNL(w, inner); err != nil {
			return err
		}
	}
	return writeEndTag(node, w, es)
}

func writeStartTag(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.paint(SepColor, "<")+es.paint(TagColor, node.Name)); err != nil {
		return err
	}
	for _, a := range node.Attrs {
		if !validName(a.Name) {
			return fmt.Errorf("%w: invalid attribute name %q at %s", ErrEncoding, a.Name, node.Path())
		}
		s := " " + es.paint(AttrNameColor, a.Name) + es.paint(SepColor, "=\"") +
			es.paint(AttrValueColor, escapeAttr(a.Value)) + es.paint(SepColor, "\"")
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeEndTag(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, es.paint(SepColor, "</")+es.paint(TagColor, node.Name)+es.paint(SepColor, ">"))
}

func (es *EncState) paint(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
