// Package naming derives element tag names from type names and container
// names.
//
// Pluralize and Singularize are suffix heuristics, not linguistic rules:
// Singularize("Glass") is "Glas". Collections are written with the
// singular of their container's name and read back by position, so the
// heuristic only has to be deterministic.
package naming

import (
	"strings"
	"unicode"
)

// Marker is the suffix added by Pluralize and removed by Singularize.
const Marker = "s"

// UntypedItems is the tag name of a collection whose elements are untyped.
const UntypedItems = "Items"

func Pluralize(name string) string {
	if strings.TrimSpace(name) == "" {
		return name
	}
	if strings.HasSuffix(name, Marker) {
		return name
	}
	return name + Marker
}

func Singularize(name string) string {
	if strings.TrimSpace(name) == "" {
		return name
	}
	return strings.TrimSuffix(name, Marker)
}

// CleanName removes every rune that cannot appear in a tag name, keeping
// letters, digits, marks, underscores and hyphens.
func CleanName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '_' || r == '-':
			return r
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			return r
		}
		return -1
	}, name)
}

// Shape is the view of a type needed to name a collection of it.
type Shape interface {
	TypeName() string
	// ElemShape is the element shape of a collection, nil otherwise.
	ElemShape() Shape
	// Untyped reports whether the shape is the "any" placeholder.
	Untyped() bool
}

// CollectionTagName returns the tag name of a collection whose elements
// have shape elem.
func CollectionTagName(elem Shape) string {
	if elem == nil || elem.Untyped() {
		return UntypedItems
	}
	if inner := elem.ElemShape(); inner != nil {
		return Pluralize(CollectionTagName(inner))
	}
	return Pluralize(CleanName(elem.TypeName()))
}
