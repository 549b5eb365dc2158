// Package gomap converts Go values to and from ir markup trees without
// schemas, code generation or struct tags.
//
// # Usage
//
//	type Item struct {
//	    Name  string
//	    Price decimal.Decimal
//	}
//	s := gomap.New()
//
//	// Encode a Go value to a tree; the root is named after the type
//	node, err := s.Serialize([]Item{{Name: "pen"}})  // <Items><Item>...
//
//	// Populate an existing value
//	var items []Item
//	err = s.Populate(node, &items)
//
//	// Construct a new value, or infer one with no type at all
//	v, err := gomap.DeserializeAs[[]Item](s, node)
//	any := s.DeserializeAny(node)  // *ordered.Map, int64, decimal.Decimal, ...
//
// # Shapes
//
// Values are handled according to their describe.Kind:
//
//   - scalars become element text, formatted by the Serializer's locale
//   - maps and records get one child element per key or member
//   - collections get one child per non-nil element, named with the
//     singular of the collection element's own name
//   - untyped targets (any) are inferred from the tree: elements with
//     children become *ordered.Map, leaves become scalars
//
// Records only accept children and attributes that match a member name,
// case-insensitively; others are ignored. Maps accept every name.
//
// # Errors
//
// Errors wrap ErrInvalidArgument or ErrNotSupported and carry the path of
// the element or field being processed. In the default lenient mode,
// unparsable scalar text is not an error; with Strict it is, and the
// error wraps scalar.ErrParse.
package gomap
