package scalar

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

var (
	decimalType         = reflect.TypeFor[decimal.Decimal]()
	timeType            = reflect.TypeFor[time.Time]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type rule struct {
	name   string
	match  func(reflect.Type) bool
	parse  func(t *Table, rt reflect.Type, text string) (reflect.Value, error)
	format func(t *Table, v reflect.Value) (string, error)
}

// rules is consulted in order; the first match wins.
var rules = []rule{
	{
		name:  "decimal",
		match: func(rt reflect.Type) bool { return rt == decimalType },
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			d, err := t.loc.ParseDecimal(text)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(d), nil
		},
		format: func(t *Table, v reflect.Value) (string, error) {
			return t.loc.FormatDecimal(v.Interface().(decimal.Decimal)), nil
		},
	},
	{
		name:  "date-time",
		match: func(rt reflect.Type) bool { return rt == timeType },
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			tm, err := t.loc.ParseTime(text)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(tm), nil
		},
		format: func(t *Table, v reflect.Value) (string, error) {
			return t.loc.FormatTime(v.Interface().(time.Time)), nil
		},
	},
	{
		name:  "text",
		match: isTextType,
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			p := reflect.New(rt)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
				return reflect.Value{}, err
			}
			return p.Elem(), nil
		},
		format: func(t *Table, v reflect.Value) (string, error) {
			if !v.CanAddr() {
				p := reflect.New(v.Type())
				p.Elem().Set(v)
				v = p.Elem()
			}
			d, err := v.Addr().Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return "", err
			}
			return string(d), nil
		},
	},
	{
		name:  "string",
		match: kindIs(reflect.String),
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			v := reflect.New(rt).Elem()
			v.SetString(text)
			return v, nil
		},
		format: func(t *Table, v reflect.Value) (string, error) { return v.String(), nil },
	},
	{
		name:  "boolean",
		match: kindIs(reflect.Bool),
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			b, err := t.loc.ParseBool(text)
			if err != nil {
				return reflect.Value{}, err
			}
			v := reflect.New(rt).Elem()
			v.SetBool(b)
			return v, nil
		},
		format: func(t *Table, v reflect.Value) (string, error) { return t.loc.FormatBool(v.Bool()), nil },
	},
	{
		name:  "integer",
		match: kindIs(reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64),
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			i, err := t.loc.ParseInt(text)
			if err != nil {
				return reflect.Value{}, err
			}
			v := reflect.New(rt).Elem()
			if t.mode == Strict && v.OverflowInt(i) {
				return reflect.Value{}, fmt.Errorf("%d overflows %s", i, rt)
			}
			v.SetInt(i)
			return v, nil
		},
		format: func(t *Table, v reflect.Value) (string, error) { return t.loc.FormatInt(v.Int()), nil },
	},
	{
		name:  "unsigned integer",
		match: kindIs(reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64),
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			u, err := t.loc.ParseUint(text)
			if err != nil {
				return reflect.Value{}, err
			}
			v := reflect.New(rt).Elem()
			if t.mode == Strict && v.OverflowUint(u) {
				return reflect.Value{}, fmt.Errorf("%d overflows %s", u, rt)
			}
			v.SetUint(u)
			return v, nil
		},
		format: func(t *Table, v reflect.Value) (string, error) { return t.loc.FormatUint(v.Uint()), nil },
	},
	{
		name:  "float",
		match: kindIs(reflect.Float32, reflect.Float64),
		parse: func(t *Table, rt reflect.Type, text string) (reflect.Value, error) {
			f, err := t.loc.ParseFloat(text, rt.Bits())
			if err != nil {
				return reflect.Value{}, err
			}
			v := reflect.New(rt).Elem()
			v.SetFloat(f)
			return v, nil
		},
		format: func(t *Table, v reflect.Value) (string, error) {
			return t.loc.FormatFloat(v.Float(), v.Type().Bits()), nil
		},
	},
}

func kindIs(kinds ...reflect.Kind) func(reflect.Type) bool {
	return func(rt reflect.Type) bool {
		for _, k := range kinds {
			if rt.Kind() == k {
				return true
			}
		}
		return false
	}
}

// isTextType matches non-pointer types that marshal to and from text.
func isTextType(rt reflect.Type) bool {
	if rt.Kind() == reflect.Pointer || rt.Kind() == reflect.Interface {
		return false
	}
	pt := reflect.PointerTo(rt)
	return pt.Implements(textUnmarshalerType) && pt.Implements(textMarshalerType)
}

func lookup(rt reflect.Type) *rule {
	for i := range rules {
		if rules[i].match(rt) {
			return &rules[i]
		}
	}
	return nil
}
