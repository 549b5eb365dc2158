package ir

import "strings"

// Attr is a single attribute of a Node.
type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Name        string
	Parent      *Node
	ParentIndex int

	Attrs    []Attr
	Children []*Node

	Text    string
	HasText bool
}

func New(name string) *Node {
	return &Node{Name: name}
}

// FromText creates a leaf node carrying text.
func FromText(name, text string) *Node {
	return New(name).SetText(text)
}

func (y *Node) SetText(text string) *Node {
	y.Text = text
	y.HasText = true
	return y
}

// SetAttr sets the attribute name to value, replacing any existing
// attribute of the same name in place.
func (y *Node) SetAttr(name, value string) *Node {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			y.Attrs[i].Value = value
			return y
		}
	}
	y.Attrs = append(y.Attrs, Attr{Name: name, Value: value})
	return y
}

func (y *Node) Attr(name string) (string, bool) {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			return y.Attrs[i].Value, true
		}
	}
	return "", false
}

func (y *Node) RemoveAttr(name string) bool {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			y.Attrs = append(y.Attrs[:i], y.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// AddChild appends a new child element named name and returns it.
func (y *Node) AddChild(name string) *Node {
	return y.Append(New(name))
}

// Append adds child as the last child element of y, detaching it from any
// previous parent.
func (y *Node) Append(child *Node) *Node {
	if child.Parent != nil && child.Parent != y {
		child.Parent.remove(child)
	}
	child.Parent = y
	child.ParentIndex = len(y.Children)
	y.Children = append(y.Children, child)
	return child
}

func (y *Node) remove(child *Node) {
	i := child.ParentIndex
	if i < 0 || i >= len(y.Children) || y.Children[i] != child {
		return
	}
	y.Children = append(y.Children[:i], y.Children[i+1:]...)
	for j := i; j < len(y.Children); j++ {
		y.Children[j].ParentIndex = j
	}
	child.Parent = nil
	child.ParentIndex = 0
}

// IsLeaf reports whether y has no child elements.
func (y *Node) IsLeaf() bool {
	return len(y.Children) == 0
}

// Clear removes children, attributes and text, keeping the name.
func (y *Node) Clear() {
	for _, c := range y.Children {
		c.Parent = nil
	}
	y.Children = nil
	y.Attrs = nil
	y.Text = ""
	y.HasText = false
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Name = y.Name
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Text = y.Text
	dst.HasText = y.HasText
	dst.Attrs = nil
	if len(y.Attrs) != 0 {
		dst.Attrs = make([]Attr, len(y.Attrs))
		copy(dst.Attrs, y.Attrs)
	}
	dst.Children = nil
	if len(y.Children) != 0 {
		dst.Children = make([]*Node, len(y.Children))
	}
	for i, yc := range y.Children {
		dstI := &Node{}
		yc.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Children[i] = dstI
	}
	return dst
}

// Get returns the first child named name, or nil.
func Get(y *Node, name string) *Node {
	for _, c := range y.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetFold is Get with case-insensitive name matching.
func GetFold(y *Node, name string) *Node {
	for _, c := range y.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// All returns every child named name in document order.
func All(y *Node, name string) []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
