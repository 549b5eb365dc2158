package gomap

import (
	"reflect"

	"github.com/deuxsucres/xserializer/describe"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/ordered"
)

// Populate reads node into target, mutating it in place. target must be a
// non-nil pointer to a map, sequence or record, a non-nil map, or a
// *ordered.Map. A slice passed by value is filled slot by slot without
// growing; a pointer to a slice is appended to.
func (s *Serializer) Populate(node *ir.Node, target any) error {
	if node == nil {
		return unmarshalErr("", ErrInvalidArgument, "nil node")
	}
	if target == nil {
		return unmarshalErr(node.Path(), ErrInvalidArgument, "nil target")
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return unmarshalErr(node.Path(), ErrInvalidArgument, "nil map target")
		}
	case reflect.Slice:
		if rv.IsNil() {
			return unmarshalErr(node.Path(), ErrInvalidArgument, "nil slice target")
		}
		d, err := s.describe(rv.Type())
		if err != nil {
			return unmarshalErr(node.Path(), ErrNotSupported, "%v", err)
		}
		return s.populateFixed(node, rv, d)
	case reflect.Pointer:
		if rv.IsNil() {
			return unmarshalErr(node.Path(), ErrInvalidArgument, "nil %s target", rv.Type())
		}
		for rv.Kind() == reflect.Pointer && describe.Indirect(rv.Type()) != rv.Type() {
			if rv.IsNil() {
				rv.Set(reflect.New(rv.Type().Elem()))
			}
			rv = rv.Elem()
		}
	default:
		return unmarshalErr(node.Path(), ErrInvalidArgument, "target %s must be a pointer", rv.Type())
	}
	d, err := s.describe(rv.Type())
	if err != nil {
		return unmarshalErr(node.Path(), ErrNotSupported, "%v", err)
	}
	switch d.Kind {
	case describe.Scalar:
		return unmarshalErr(node.Path(), ErrInvalidArgument, "cannot populate bare scalar %s", rv.Type())
	case describe.Unsupported, describe.Any:
		return unmarshalErr(node.Path(), ErrInvalidArgument, "cannot populate %s", rv.Type())
	}
	return s.populate(node, rv, d)
}

// populate dispatches on the target shape. rv is addressable except for
// maps, which are mutated through their reference.
func (s *Serializer) populate(node *ir.Node, rv reflect.Value, d *describe.Descriptor) error {
	switch d.Kind {
	case describe.Map:
		return s.populateMap(node, rv, d)
	case describe.OrderedMap:
		return s.populateOrdered(node, rv.Addr().Interface().(*ordered.Map))
	case describe.Array:
		return s.populateFixed(node, rv, d)
	case describe.Collection:
		return s.populateGrowable(node, rv, d)
	case describe.Record:
		return s.populateRecord(node, rv, d)
	}
	return unmarshalErr(node.Path(), ErrNotSupported, "cannot populate %s", d.Type)
}

// populateMap inserts attributes and then child elements, keyed by name.
// Later entries overwrite earlier ones with the same name.
func (s *Serializer) populateMap(node *ir.Node, rv reflect.Value, d *describe.Descriptor) error {
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(d.Type))
	}
	elemType := d.Type.Elem()
	for _, attr := range node.Attrs {
		v, err := s.attrValue(node, attr, elemType)
		if err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(attr.Name).Convert(d.Type.Key()), v)
	}
	for _, child := range node.Children {
		v, err := s.deserialize(child, elemType)
		if err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(child.Name).Convert(d.Type.Key()), v)
	}
	return nil
}

func (s *Serializer) populateOrdered(node *ir.Node, m *ordered.Map) error {
	for _, attr := range node.Attrs {
		m.Set(attr.Name, s.table.Infer(attr.Value))
	}
	for _, child := range node.Children {
		m.Set(child.Name, s.untyped(child))
	}
	return nil
}

// populateFixed assigns children to successive slots until either runs
// out. Slots without a child keep their value.
func (s *Serializer) populateFixed(node *ir.Node, rv reflect.Value, d *describe.Descriptor) error {
	elemType := d.Type.Elem()
	n := min(rv.Len(), len(node.Children))
	for i := 0; i < n; i++ {
		v, err := s.deserialize(node.Children[i], elemType)
		if err != nil {
			return err
		}
		rv.Index(i).Set(v)
	}
	return nil
}

func (s *Serializer) populateGrowable(node *ir.Node, rv reflect.Value, d *describe.Descriptor) error {
	elemType := d.Type.Elem()
	for _, child := range node.Children {
		v, err := s.deserialize(child, elemType)
		if err != nil {
			return err
		}
		rv.Set(reflect.Append(rv, v))
	}
	return nil
}

// populateRecord sets writable members from attributes, then from child
// elements. Names without a matching member are ignored.
func (s *Serializer) populateRecord(node *ir.Node, rv reflect.Value, d *describe.Descriptor) error {
	for _, attr := range node.Attrs {
		m := s.member(node, d, attr.Name)
		if m == nil {
			continue
		}
		v, err := s.attrValue(node, attr, m.Type)
		if err != nil {
			return err
		}
		if err := m.Set(rv, v); err != nil {
			return unmarshalErr(node.Path(), ErrInvalidArgument, "%v", err)
		}
	}
	for _, child := range node.Children {
		m := s.member(node, d, child.Name)
		if m == nil {
			continue
		}
		v, err := s.deserialize(child, m.Type)
		if err != nil {
			return err
		}
		if err := m.Set(rv, v); err != nil {
			return unmarshalErr(child.Path(), ErrInvalidArgument, "%v", err)
		}
	}
	return nil
}

// member returns the writable member matching name, or nil.
func (s *Serializer) member(node *ir.Node, d *describe.Descriptor, name string) *describe.Member {
	m := d.Lookup(name)
	if m == nil {
		s.readLog.Debug("ignoring unmatched name", "path", node.Path(), "name", name, "type", d.Type.String())
		return nil
	}
	if !m.Writable() {
		s.readLog.Debug("ignoring read-only member", "path", node.Path(), "member", m.Name)
		return nil
	}
	return m
}
