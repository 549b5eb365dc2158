package ir

import "strconv"

// Path returns the location of y from its root, as slash separated element
// names. Elements that share their name with a sibling carry their
// position among those siblings, e.g. "/Order/Lines/Line[2]/Sku".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "/" + y.Name
	}
	prefix := y.Parent.Path() + "/" + y.Name
	same, pos := 0, 0
	for i, c := range y.Parent.Children {
		if c.Name != y.Name {
			continue
		}
		if i == y.ParentIndex {
			pos = same
		}
		same++
	}
	if same < 2 {
		return prefix
	}
	return prefix + "[" + strconv.Itoa(pos) + "]"
}
