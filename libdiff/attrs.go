package libdiff

import "github.com/deuxsucres/xserializer/ir"

// DiffAttrs returns a diff.attrs element with one child per changed
// attribute, holding from and to attributes, or nil.
func DiffAttrs(from, to *ir.Node) *ir.Node {
	res := ir.New(AttrsTag)
	for _, a := range from.Attrs {
		tv, ok := to.Attr(a.Name)
		switch {
		case !ok:
			res.AddChild(a.Name).SetAttr(OpAttr, Delete).SetAttr(FromTag, a.Value)
		case tv != a.Value:
			res.AddChild(a.Name).SetAttr(OpAttr, Replace).SetAttr(FromTag, a.Value).SetAttr(ToTag, tv)
		}
	}
	for _, a := range to.Attrs {
		if _, ok := from.Attr(a.Name); !ok {
			res.AddChild(a.Name).SetAttr(OpAttr, Insert).SetAttr(ToTag, a.Value)
		}
	}
	if res.IsLeaf() {
		return nil
	}
	return res
}
