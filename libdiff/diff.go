package libdiff

import (
	"strconv"

	"github.com/deuxsucres/xserializer/ir"
)

type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns the changes turning from into to, or nil if there are
// none.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil || from.Name != to.Name:
		return MakeDiff(from, to)
	}
	res := ir.New(from.Name)
	if attrs := DiffAttrs(from, to); attrs != nil {
		res.Append(attrs)
	}
	if text := DiffText(from, to); text != nil {
		res.Append(text)
	}
	DiffChildren(res, from, to, Diff)
	if res.IsLeaf() {
		return nil
	}
	return res
}

func at(node *ir.Node, i int) *ir.Node {
	return node.SetAttr(AtAttr, strconv.Itoa(i))
}
