package scalar

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/deuxsucres/xserializer/debug"
	"github.com/deuxsucres/xserializer/locale"
)

var (
	ErrParse       = errors.New("scalar parse error")
	ErrUnsupported = errors.New("unsupported scalar type")
)

type Mode int

const (
	Lenient Mode = iota
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// NumberInference selects what Infer produces for non-integer numbers.
type NumberInference int

const (
	InferDecimal NumberInference = iota
	InferFloat
)

type Table struct {
	loc     *locale.Locale
	mode    Mode
	numbers NumberInference
	log     *slog.Logger
}

type Option func(*Table)

func WithMode(m Mode) Option {
	return func(t *Table) { t.mode = m }
}

func WithNumbers(n NumberInference) Option {
	return func(t *Table) { t.numbers = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns a conversion table for loc; a nil loc is Invariant.
func New(loc *locale.Locale, opts ...Option) *Table {
	t := &Table{
		loc: loc.Or(),
		log: debug.Logger(debug.AreaConvert),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Locale() *locale.Locale { return t.loc }

func (t *Table) Mode() Mode { return t.mode }

// IsScalar reports whether rt, or the type rt points to, has a rule.
func IsScalar(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return lookup(rt) != nil
}

// IsNullable reports whether rt is a pointer to a supported scalar.
func IsNullable(rt reflect.Type) bool {
	return rt != nil && rt.Kind() == reflect.Pointer && lookup(rt.Elem()) != nil
}

// TryConvert converts text to a value of type rt. ok is false when rt is
// not a supported scalar type. err is only ever set in strict mode.
func (t *Table) TryConvert(rt reflect.Type, text string) (v reflect.Value, ok bool, err error) {
	base, nullable := rt, false
	if rt.Kind() == reflect.Pointer {
		base, nullable = rt.Elem(), true
	}
	r := lookup(base)
	if r == nil {
		return reflect.Value{}, false, nil
	}
	if nullable && strings.TrimSpace(text) == "" && r.name != "string" {
		return reflect.Zero(rt), true, nil
	}
	v, perr := r.parse(t, base, text)
	if perr == nil {
		if nullable {
			p := reflect.New(base)
			p.Elem().Set(v)
			return p, true, nil
		}
		return v, true, nil
	}
	if t.mode == Strict {
		return reflect.Value{}, true, fmt.Errorf("%w: %s: %w", ErrParse, rt, perr)
	}
	t.log.Debug("lenient scalar fallback", "type", rt.String(), "text", text)
	if nullable {
		return reflect.Zero(rt), true, nil
	}
	return reflect.Zero(base), true, nil
}

// Convert is TryConvert with an error for unsupported types.
func (t *Table) Convert(rt reflect.Type, text string) (reflect.Value, error) {
	v, ok, err := t.TryConvert(rt, text)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rt)
	}
	return v, nil
}

// Format renders v as text. A nil nullable value renders as the empty
// string. ok is false when v's type has no rule; err reports a failing
// TextMarshaler.
func (t *Table) Format(v reflect.Value) (s string, ok bool, err error) {
	if !v.IsValid() {
		return "", false, nil
	}
	if v.Kind() == reflect.Pointer {
		if lookup(v.Type().Elem()) == nil {
			return "", false, nil
		}
		if v.IsNil() {
			return "", true, nil
		}
		v = v.Elem()
	}
	r := lookup(v.Type())
	if r == nil {
		return "", false, nil
	}
	s, err = r.format(t, v)
	return s, true, err
}
