package describe

import (
	"reflect"
	"strings"

	"github.com/deuxsucres/xserializer/naming"
	"github.com/deuxsucres/xserializer/ordered"
	"github.com/deuxsucres/xserializer/scalar"
)

type Kind int

const (
	Unsupported Kind = iota
	Scalar
	Map
	OrderedMap
	Collection
	Array
	Record
	Any
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Unsupported: "Unsupported",
		Scalar:      "Scalar",
		Map:         "Map",
		OrderedMap:  "OrderedMap",
		Collection:  "Collection",
		Array:       "Array",
		Record:      "Record",
		Any:         "Any",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsMap reports whether k is one of the string-keyed map kinds.
func (k Kind) IsMap() bool { return k == Map || k == OrderedMap }

// IsSequence reports whether k is a collection or a fixed array.
func (k Kind) IsSequence() bool { return k == Collection || k == Array }

var orderedMapType = reflect.TypeFor[ordered.Map]()

// Descriptor is the structural description of a type. For every kind but
// Scalar, Type has no pointer indirection: descriptors of *T and T are the
// same.
type Descriptor struct {
	Type reflect.Type
	Kind Kind
	// Name is the bare type name, or a fallback for unnamed maps and
	// records.
	Name string
	// Elem describes the elements of sequences and the values of maps.
	Elem *Descriptor
	// Members lists record members in declaration order.
	Members []*Member

	index map[string]*Member
}

// Lookup returns the member whose name matches name case-insensitively.
// When several members differ only by case, the first declared wins.
func (d *Descriptor) Lookup(name string) *Member {
	return d.index[strings.ToLower(name)]
}

func (d *Descriptor) TypeName() string { return d.Name }

func (d *Descriptor) ElemShape() naming.Shape {
	if !d.Kind.IsSequence() || d.Elem == nil {
		return nil
	}
	return d.Elem
}

func (d *Descriptor) Untyped() bool { return d.Kind == Any }

// TagName is the element name used for a value of this type when no name
// is given: the collection name for sequences, the cleaned type name
// otherwise.
func (d *Descriptor) TagName() string {
	if d.Kind.IsSequence() {
		return naming.CollectionTagName(d.Elem)
	}
	return naming.CleanName(d.Name)
}

func (d *Descriptor) String() string {
	return d.Kind.String() + "(" + d.Type.String() + ")"
}

// Indirect strips pointers from t unless t is a nullable scalar.
func Indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer && !scalar.IsScalar(t) {
		t = t.Elem()
	}
	return t
}

func kindOf(t reflect.Type) Kind {
	switch {
	case scalar.IsScalar(t):
		return Scalar
	case t == orderedMapType:
		return OrderedMap
	}
	switch t.Kind() {
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return Map
		}
	case reflect.Slice:
		return Collection
	case reflect.Array:
		return Array
	case reflect.Struct:
		return Record
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Any
		}
	}
	return Unsupported
}

func fallbackName(t reflect.Type, k Kind) string {
	if n := t.Name(); n != "" {
		return n
	}
	switch k {
	case Map, OrderedMap:
		return "Map"
	case Record:
		return "Record"
	case Any:
		return "Object"
	}
	return ""
}
