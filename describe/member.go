package describe

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrReadOnly = errors.New("member is read-only")

// Member is a gettable and possibly settable named part of a record.
type Member struct {
	Name string
	Type reflect.Type
	// Method is true for members backed by Accessors methods.
	Method bool

	get func(rec reflect.Value) (reflect.Value, bool)
	set func(rec, v reflect.Value) error
}

// Get returns the member value of rec. ok is false when the value is
// unreachable, such as a field promoted through a nil embedded pointer.
func (m *Member) Get(rec reflect.Value) (v reflect.Value, ok bool) {
	return m.get(rec)
}

// Writable reports whether Set can succeed on an addressable record.
func (m *Member) Writable() bool { return m.set != nil }

// Set stores v into the member of rec, which must be addressable.
func (m *Member) Set(rec, v reflect.Value) error {
	if m.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, m.Name)
	}
	return m.set(rec, v)
}

func fieldMember(f reflect.StructField, settable bool) *Member {
	index := f.Index
	m := &Member{
		Name: f.Name,
		Type: f.Type,
		get: func(rec reflect.Value) (reflect.Value, bool) {
			v, err := rec.FieldByIndexErr(index)
			if err != nil {
				return reflect.Value{}, false
			}
			return v, true
		},
	}
	if settable {
		m.set = func(rec, v reflect.Value) error {
			fv, err := fieldForSet(rec, index)
			if err != nil {
				return err
			}
			fv.Set(v)
			return nil
		}
	}
	return m
}

// fieldForSet walks index from rec, allocating nil embedded pointers.
func fieldForSet(rec reflect.Value, index []int) (reflect.Value, error) {
	v := rec
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("%w: nil embedded %s", ErrReadOnly, v.Type())
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: field of %s", ErrReadOnly, rec.Type())
	}
	return v, nil
}

// Accessors is implemented by record types that expose method-backed
// members. Each name N must have a method N() T; a method SetN(T) on the
// pointer type makes the member writable.
type Accessors interface {
	Accessors() []string
}

var accessorsType = reflect.TypeFor[Accessors]()

func methodMembers(t reflect.Type) ([]*Member, error) {
	pt := reflect.PointerTo(t)
	if !pt.Implements(accessorsType) {
		return nil, nil
	}
	names := reflect.New(t).Interface().(Accessors).Accessors()
	res := make([]*Member, 0, len(names))
	for _, name := range names {
		getter, ok := pt.MethodByName(name)
		if !ok || getter.Type.NumIn() != 1 || getter.Type.NumOut() != 1 {
			return nil, fmt.Errorf("accessor %s.%s must have signature %s() T", t, name, name)
		}
		typ := getter.Type.Out(0)
		m := &Member{
			Name:   name,
			Type:   typ,
			Method: true,
			get: func(rec reflect.Value) (reflect.Value, bool) {
				return addressed(rec).MethodByName(name).Call(nil)[0], true
			},
		}
		if setter, ok := pt.MethodByName("Set" + name); ok &&
			setter.Type.NumIn() == 2 && setter.Type.In(1) == typ && setter.Type.NumOut() == 0 {
			m.set = func(rec, v reflect.Value) error {
				if !rec.CanAddr() {
					return fmt.Errorf("%w: %s on unaddressable %s", ErrReadOnly, name, rec.Type())
				}
				rec.Addr().MethodByName("Set" + name).Call([]reflect.Value{v})
				return nil
			}
		}
		res = append(res, m)
	}
	return res, nil
}

// addressed returns a pointer to rec, copying rec when it is not
// addressable, so that pointer receiver methods can be called.
func addressed(rec reflect.Value) reflect.Value {
	if rec.CanAddr() {
		return rec.Addr()
	}
	p := reflect.New(rec.Type())
	p.Elem().Set(rec)
	return p
}
