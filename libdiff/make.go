package libdiff

import "github.com/deuxsucres/xserializer/ir"

// MakeDiff records from being replaced by to. A nil from is an insertion
// and a nil to is a deletion.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return mark(to.Clone(), Insert)
	case to == nil:
		return mark(from.Clone(), Delete)
	default:
		res := mark(ir.New(from.Name), Replace)
		res.AddChild(FromTag).Append(from.Clone())
		res.AddChild(ToTag).Append(to.Clone())
		return res
	}
}

func mark(node *ir.Node, op string) *ir.Node {
	node.Attrs = append([]ir.Attr{{Name: OpAttr, Value: op}}, removeAttr(node.Attrs, OpAttr)...)
	return node
}

func removeAttr(attrs []ir.Attr, name string) []ir.Attr {
	res := make([]ir.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name != name {
			res = append(res, a)
		}
	}
	return res
}

// Op returns the operation a diff element is marked with, or "" when it
// only holds nested changes.
func Op(node *ir.Node) string {
	op, _ := node.Attr(OpAttr)
	return op
}
