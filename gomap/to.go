package gomap

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/deuxsucres/xserializer/describe"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/naming"
	"github.com/deuxsucres/xserializer/ordered"
)

// Serialize writes v into a new node named after v's type: the type name
// for maps and records, the derived collection name for sequences.
func (s *Serializer) Serialize(v any) (*ir.Node, error) {
	rv, d, err := s.topLevel(v)
	if err != nil {
		return nil, err
	}
	name := d.TagName()
	if name == "" {
		return nil, marshalErr("", ErrInvalidArgument, "cannot derive an element name for %s", d.Type)
	}
	node := ir.New(name)
	if err := s.writeValue(node, rv, name, visits{}); err != nil {
		return node, err
	}
	return node, nil
}

// SerializeNamed writes v into a new node named name.
func (s *Serializer) SerializeNamed(v any, name string) (*ir.Node, error) {
	if name == "" {
		return nil, marshalErr("", ErrInvalidArgument, "empty element name")
	}
	rv, _, err := s.topLevel(v)
	if err != nil {
		return nil, err
	}
	node := ir.New(name)
	if err := s.writeValue(node, rv, name, visits{}); err != nil {
		return node, err
	}
	return node, nil
}

// SerializeInto writes v into node, appending to whatever node already
// holds. Collection elements are named with the singular of node's name.
func (s *Serializer) SerializeInto(v any, node *ir.Node) error {
	if node == nil {
		return marshalErr("", ErrInvalidArgument, "nil node")
	}
	if node.Name == "" {
		return marshalErr("", ErrInvalidArgument, "empty element name")
	}
	rv, _, err := s.topLevel(v)
	if err != nil {
		return err
	}
	return s.writeValue(node, rv, node.Name, visits{})
}

// topLevel checks that v may be serialized as a document: only records,
// maps and sequences have a natural container.
func (s *Serializer) topLevel(v any) (reflect.Value, *describe.Descriptor, error) {
	if v == nil {
		return reflect.Value{}, nil, marshalErr("", ErrInvalidArgument, "nil value")
	}
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return reflect.Value{}, nil, marshalErr("", ErrInvalidArgument, "nil %s", rv.Type())
	}
	d, err := s.describe(rv.Type())
	if err != nil {
		return reflect.Value{}, nil, marshalErr("", ErrNotSupported, "%v", err)
	}
	switch d.Kind {
	case describe.Scalar:
		return reflect.Value{}, nil, marshalErr("", ErrInvalidArgument, "cannot serialize bare scalar %s", rv.Type())
	case describe.Unsupported, describe.Any:
		return reflect.Value{}, nil, marshalErr("", ErrNotSupported, "cannot serialize %s", rv.Type())
	}
	return rv, d, nil
}

// writeValue writes rv into node. Nil values write nothing.
func (s *Serializer) writeValue(node *ir.Node, rv reflect.Value, path string, seen visits) error {
	rv, ok := s.resolve(rv)
	if !ok {
		return nil
	}
	if key, ok := refOf(rv); ok {
		if at, dup := seen[key]; dup {
			return marshalErr(path, ErrInvalidArgument, "circular reference to %s at %s", rv.Type(), at)
		}
		seen[key] = path
		defer delete(seen, key)
	}
	d, err := s.describe(rv.Type())
	if err != nil {
		return marshalErr(path, ErrNotSupported, "%v", err)
	}
	switch d.Kind {
	case describe.Scalar:
		text, _, err := s.table.Format(rv)
		if err != nil {
			return marshalErr(path, err, "cannot format %s: %v", rv.Type(), err)
		}
		node.SetText(text)
		return nil
	case describe.Map:
		return s.writeMap(node, rv, path, seen)
	case describe.OrderedMap:
		return s.writeOrderedMap(node, addressable(rv).Addr().Interface().(*ordered.Map), path, seen)
	case describe.Collection, describe.Array:
		return s.writeSequence(node, rv, path, seen)
	case describe.Record:
		return s.writeRecord(node, rv, d, path, seen)
	default:
		return marshalErr(path, ErrNotSupported, "unsupported type %s", rv.Type())
	}
}

// resolve strips interfaces and pointers other than nullable scalars.
// ok is false when the value is nil.
func (s *Serializer) resolve(rv reflect.Value) (reflect.Value, bool) {
	for {
		if !rv.IsValid() || isNil(rv) {
			return rv, false
		}
		switch rv.Kind() {
		case reflect.Interface:
			rv = rv.Elem()
			continue
		case reflect.Pointer:
			if describe.Indirect(rv.Type()) != rv.Type() {
				rv = rv.Elem()
				continue
			}
		}
		return rv, true
	}
}

func (s *Serializer) writeMap(node *ir.Node, rv reflect.Value, path string, seen visits) error {
	keys := make([]reflect.Value, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, k := range keys {
		if err := s.writeEntry(node, k.String(), rv.MapIndex(k), path, seen); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) writeOrderedMap(node *ir.Node, m *ordered.Map, path string, seen visits) error {
	for k, v := range m.All() {
		if err := s.writeEntry(node, k, reflect.ValueOf(v), path, seen); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) writeEntry(node *ir.Node, key string, v reflect.Value, path string, seen visits) error {
	keyPath := fmt.Sprintf("%s.%s", path, key)
	if key == "" {
		return marshalErr(keyPath, ErrInvalidArgument, "empty map key cannot name an element")
	}
	return s.writeValue(node.AddChild(key), v, keyPath, seen)
}

func (s *Serializer) writeSequence(node *ir.Node, rv reflect.Value, path string, seen visits) error {
	name := naming.Singularize(node.Name)
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if _, ok := s.resolve(elem); !ok {
			continue
		}
		if err := s.writeValue(node.AddChild(name), elem, fmt.Sprintf("%s[%d]", path, i), seen); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) writeRecord(node *ir.Node, rv reflect.Value, d *describe.Descriptor, path string, seen visits) error {
	for _, m := range d.Members {
		if s.cfg.skipReadOnly && !m.Writable() {
			s.writeLog.Debug("skipping read-only member", "path", path, "member", m.Name)
			continue
		}
		v, ok := m.Get(rv)
		if !ok {
			continue
		}
		if _, ok := s.resolve(v); !ok {
			continue
		}
		if err := s.writeValue(node.AddChild(m.Name), v, path+"."+m.Name, seen); err != nil {
			return err
		}
	}
	return nil
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// addressable returns rv or an addressable copy of it.
func addressable(rv reflect.Value) reflect.Value {
	if rv.CanAddr() {
		return rv
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Elem()
}

// visits maps the containers on the current write path to where they were
// entered.
type visits map[ref]string

type ref struct {
	p uintptr
	t reflect.Type
}

// refOf identifies containers that a value graph can reach again.
func refOf(rv reflect.Value) (ref, bool) {
	switch rv.Kind() {
	case reflect.Map:
		return ref{rv.Pointer(), rv.Type()}, true
	case reflect.Slice:
		if rv.Len() > 0 {
			return ref{rv.Pointer(), rv.Type()}, true
		}
	case reflect.Struct:
		if rv.CanAddr() {
			return ref{rv.Addr().Pointer(), rv.Type()}, true
		}
	}
	return ref{}, false
}
