package gomap

import (
	"reflect"

	"github.com/deuxsucres/xserializer/describe"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/ordered"
)

var anyType = reflect.TypeFor[any]()

// Deserialize constructs a new value of type typ from node. A nil typ, or
// the empty interface type, infers the value from the tree as
// DeserializeAny does.
//
// Scalar conversion is tried first: when typ is a supported scalar the
// node's text is converted and its children are ignored.
func (s *Serializer) Deserialize(node *ir.Node, typ reflect.Type) (any, error) {
	if node == nil {
		return nil, unmarshalErr("", ErrInvalidArgument, "nil node")
	}
	if typ == nil {
		return s.untyped(node), nil
	}
	v, err := s.deserialize(node, typ)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// DeserializeAs is Deserialize with the target type given as T.
func DeserializeAs[T any](s *Serializer, node *ir.Node) (T, error) {
	var zero T
	v, err := s.Deserialize(node, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	return v.(T), nil
}

// DeserializeAny infers a value from node: leaves become scalars (see
// scalar.Table.Infer), elements with children become *ordered.Map.
func (s *Serializer) DeserializeAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	return s.untyped(node)
}

// DeserializeAttr converts an attribute of node to typ. Attributes carry
// no structure: typ must be a scalar, the empty interface, or a map, which
// receives the attribute as its single entry.
func (s *Serializer) DeserializeAttr(node *ir.Node, name string, typ reflect.Type) (any, error) {
	if node == nil {
		return nil, unmarshalErr("", ErrInvalidArgument, "nil node")
	}
	if typ == nil {
		typ = anyType
	}
	value, ok := node.Attr(name)
	if !ok {
		return nil, unmarshalErr(node.Path(), ErrInvalidArgument, "no attribute %q", name)
	}
	v, err := s.attrValue(node, ir.Attr{Name: name, Value: value}, typ)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (s *Serializer) deserialize(node *ir.Node, rt reflect.Type) (reflect.Value, error) {
	if rt == anyType || rt.Kind() == reflect.Interface && rt.NumMethod() == 0 {
		return asType(s.untyped(node), rt), nil
	}
	v, ok, err := s.table.TryConvert(rt, node.Text)
	if err != nil {
		return reflect.Value{}, unmarshalErr(node.Path(), err, "%v", err)
	}
	if ok {
		return v, nil
	}
	d, err := s.describe(rt)
	if err != nil {
		return reflect.Value{}, unmarshalErr(node.Path(), ErrNotSupported, "%v", err)
	}
	switch d.Kind {
	case describe.Map, describe.OrderedMap, describe.Collection, describe.Array, describe.Record:
	default:
		return reflect.Value{}, unmarshalErr(node.Path(), ErrNotSupported, "cannot construct %s", rt)
	}
	p := reflect.New(d.Type)
	if err := s.populate(node, p.Elem(), d); err != nil {
		return reflect.Value{}, err
	}
	return wrap(p, rt), nil
}

// attrValue converts attribute text for a target of type rt.
func (s *Serializer) attrValue(node *ir.Node, attr ir.Attr, rt reflect.Type) (reflect.Value, error) {
	if rt == anyType || rt.Kind() == reflect.Interface && rt.NumMethod() == 0 {
		return asType(s.table.Infer(attr.Value), rt), nil
	}
	v, ok, err := s.table.TryConvert(rt, attr.Value)
	if err != nil {
		return reflect.Value{}, unmarshalErr(node.Path()+"/@"+attr.Name, err, "%v", err)
	}
	if ok {
		return v, nil
	}
	d, derr := s.describe(rt)
	if derr == nil && d.Kind.IsMap() {
		holder := ir.New(node.Name)
		holder.SetAttr(attr.Name, attr.Value)
		p := reflect.New(d.Type)
		if err := s.populate(holder, p.Elem(), d); err != nil {
			return reflect.Value{}, err
		}
		return wrap(p, rt), nil
	}
	return reflect.Value{}, unmarshalErr(node.Path()+"/@"+attr.Name, ErrNotSupported,
		"attribute %s cannot hold a value of type %s", attr.Name, rt)
}

// untyped infers a value from node alone.
func (s *Serializer) untyped(node *ir.Node) any {
	if node.IsLeaf() {
		if s.cfg.discriminator != "" {
			if kind, ok := node.Attr(s.cfg.discriminator); ok {
				s.readLog.Debug("inferring declared kind", "path", node.Path(), "kind", kind)
				return s.table.InferAs(kind, node.Text)
			}
		}
		return s.table.Infer(node.Text)
	}
	m := ordered.New()
	s.populateOrdered(node, m)
	return m
}

// asType returns x as a value of interface type rt.
func asType(x any, rt reflect.Type) reflect.Value {
	v := reflect.New(rt).Elem()
	if x != nil {
		v.Set(reflect.ValueOf(x))
	}
	return v
}

// wrap turns p, a *T, into a value of type rt, which is T or has
// additional pointer indirections.
func wrap(p reflect.Value, rt reflect.Type) reflect.Value {
	if rt == p.Type().Elem() {
		return p.Elem()
	}
	cur := p
	for cur.Type() != rt {
		np := reflect.New(cur.Type())
		np.Elem().Set(cur)
		cur = np
	}
	return cur
}
