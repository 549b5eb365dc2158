package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/deuxsucres/xserializer/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `<a/>`},
		{in: `<a></a>`},
		{in: `<a>text</a>`},
		{in: `<?xml version="1.0"?><a x="1"/>`},
		{in: `<a><b>1</b><b>2</b></a>`},
		{in: "\n<a>\n  <b/>\n</a>\n"},
		{in: `<a xmlns="urn:x" xmlns:p="urn:p"><p:b p:c="1"/></a>`},
		{in: `<a><![CDATA[<raw>]]></a>`},
		{in: `<!-- lead --><a/>`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			_, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrNoRoot},
		{in: `   `, e: ErrNoRoot},
		{in: `<a>`, e: ErrParse},
		{in: `<a></b>`, e: ErrParse},
		{in: `<a/><b/>`, e: ErrOutsideRoot},
		{in: `<a/>junk`, e: ErrOutsideRoot},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			_, err := Parse([]byte(pt.in))
			if !errors.Is(err, pt.e) {
				t.Fatalf("got %v, want %v", err, pt.e)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v does not wrap ErrParse", err)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	in := `<Order id="7" xmlns="urn:orders">
  <Lines>
    <Line><Sku>A-1</Sku><Qty>2</Qty></Line>
    <Line><Sku>B &amp; C</Sku></Line>
  </Lines>
  <Note/>
</Order>`
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "Order" || root.Parent != nil {
		t.Fatalf("root %q parent %v", root.Name, root.Parent)
	}
	if len(root.Attrs) != 1 || root.Attrs[0] != (ir.Attr{Name: "id", Value: "7"}) {
		t.Errorf("attrs %v", root.Attrs)
	}
	if root.HasText {
		t.Errorf("layout whitespace kept: %q", root.Text)
	}
	lines := ir.Get(root, "Lines")
	if lines == nil || len(lines.Children) != 2 {
		t.Fatalf("lines %v", lines)
	}
	sku := ir.Get(lines.Children[1], "Sku")
	if sku.Text != "B & C" {
		t.Errorf("sku %q", sku.Text)
	}
	if got := sku.Path(); got != "/Order/Lines/Line[1]/Sku" {
		t.Errorf("path %q", got)
	}
	note := ir.Get(root, "Note")
	if note == nil || note.HasText || !note.IsLeaf() {
		t.Errorf("note %+v", note)
	}
}

func TestKeepWhitespace(t *testing.T) {
	in := "<a>\n  <b/>\n</a>"
	root, err := Parse([]byte(in), KeepWhitespace(true))
	if err != nil {
		t.Fatal(err)
	}
	if !root.HasText || strings.TrimSpace(root.Text) != "" || root.Text == "" {
		t.Errorf("text %q", root.Text)
	}
}

func TestKeepNamespaces(t *testing.T) {
	in := `<a xmlns="urn:x" xmlns:p="urn:p"/>`
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Attrs) != 0 {
		t.Errorf("attrs %v", root.Attrs)
	}
	root, err = ParseReader(strings.NewReader(in), KeepNamespaces(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Attrs) != 2 {
		t.Errorf("attrs %v", root.Attrs)
	}
}

func TestLeafWhitespaceKept(t *testing.T) {
	root, err := Parse([]byte(`<a>  </a>`))
	if err != nil {
		t.Fatal(err)
	}
	if !root.HasText || root.Text != "  " {
		t.Errorf("text %q", root.Text)
	}
}
