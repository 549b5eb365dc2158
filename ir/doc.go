// Package ir provides the markup tree that values are serialized to and read from.
//
// # Overview
//
// A Node is an element: a name, an ordered set of attributes with unique
// names, an ordered sequence of child elements and optional direct text.
// The tree carries no namespaces, comments or position information; it is
// the purely semantic shape that the gomap package writes and reads.
//
// Serialization only ever writes text or children for a given value, never
// both, but parsed documents may carry both; readers decide which to use.
//
// # Creating Nodes
//
//	root := ir.New("Person")
//	root.SetAttr("id", "42")
//	root.AddChild("Name").SetText("Ada")
//	items := root.AddChild("Tags")
//	items.AddChild("Tag").SetText("math")
//
// # Navigation
//
// Every child records its Parent and ParentIndex, so Path and Root can be
// computed from any node:
//
//	tag := ir.Get(items, "Tag")
//	tag.Path() // "/Person/Tags/Tag"
package ir
