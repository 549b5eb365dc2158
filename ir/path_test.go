package ir

import (
	"errors"
	"testing"
)

type pathTest struct {
	Path  string
	Res   string
	Err   error
	NoRev bool
}

func pathDoc() *Node {
	root := New("Order")
	lines := root.AddChild("Lines")
	for _, sku := range []string{"A", "B", "C"} {
		lines.AddChild("Line").AddChild("Sku").SetText(sku)
	}
	root.AddChild("Note").SetText("n")
	return root
}

var pathTests = []pathTest{
	{Path: "/Order", Res: ""},
	{Path: "/Order/Note", Res: "n"},
	{Path: "/Order/Lines/Line[0]/Sku", Res: "A"},
	{Path: "/Order/Lines/Line[2]/Sku", Res: "C"},
	{Path: "/Order/Lines/Line/Sku", Res: "A", NoRev: true},
	{Path: "Lines/Line[1]/Sku", Res: "B", NoRev: true},
	{Path: "/Order/Lines/Line[3]", Err: ErrNotFound},
	{Path: "/Other", Err: ErrNotFound},
	{Path: "/Order/Missing", Err: ErrNotFound},
	{Path: "/Order//Note", Err: ErrBadPath},
	{Path: "/Order/Lines/Line[x]", Err: ErrBadPath},
	{Path: "/Order/Lines/[1]", Err: ErrBadPath},
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			n, err := doc.GetPath(pt.Path)
			if pt.Err != nil {
				if !errors.Is(err, pt.Err) {
					t.Fatalf("got %v, want %v", err, pt.Err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if n.Text != pt.Res {
				t.Errorf("got %q, want %q", n.Text, pt.Res)
			}
			if pt.NoRev {
				return
			}
			if got := n.Path(); got != pt.Path {
				t.Errorf("path round trip: got %q", got)
			}
		})
	}
}

func TestGetPathFromChild(t *testing.T) {
	doc := pathDoc()
	lines := Get(doc, "Lines")
	n, err := lines.GetPath("/Order/Note")
	if err != nil || n.Text != "n" {
		t.Errorf("got %v, %v", n, err)
	}
	n, err = lines.GetPath("")
	if err != nil || n != lines {
		t.Errorf("empty path: got %v, %v", n, err)
	}
}
