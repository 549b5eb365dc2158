package scalar

import (
	"errors"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/deuxsucres/xserializer/locale"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

type level int16

func ptr[T any](v T) *T { return &v }

func TestTryConvertLenient(t *testing.T) {
	tab := New(nil)
	tests := []struct {
		name string
		typ  reflect.Type
		text string
		want any
	}{
		{"string", reflect.TypeFor[string](), " keep ", " keep "},
		{"bool", reflect.TypeFor[bool](), "TRUE", true},
		{"bool fallback", reflect.TypeFor[bool](), "yes", false},
		{"nullable bool", reflect.TypeFor[*bool](), "False", ptr(false)},
		{"nullable bool fallback", reflect.TypeFor[*bool](), "yes", (*bool)(nil)},
		{"int", reflect.TypeFor[int](), "-12", -12},
		{"int16 narrows", reflect.TypeFor[int16](), "65537", int16(1)},
		{"named int", reflect.TypeFor[level](), "3", level(3)},
		{"int fallback", reflect.TypeFor[int32](), "x", int32(0)},
		{"nullable int blank", reflect.TypeFor[*int64](), " ", (*int64)(nil)},
		{"nullable int bad", reflect.TypeFor[*int64](), "1.5", (*int64)(nil)},
		{"nullable int", reflect.TypeFor[*int64](), "7", ptr(int64(7))},
		{"uint", reflect.TypeFor[uint32](), "42", uint32(42)},
		{"uint negative", reflect.TypeFor[uint](), "-1", uint(0)},
		{"float32", reflect.TypeFor[float32](), "1.5", float32(1.5)},
		{"float fallback", reflect.TypeFor[float64](), "abc", 0.0},
		{"nullable float", reflect.TypeFor[*float64](), "abc", (*float64)(nil)},
		{"time fallback", reflect.TypeFor[time.Time](), "never", time.Time{}},
		{"nullable time", reflect.TypeFor[*time.Time](), "never", (*time.Time)(nil)},
		{"nullable string", reflect.TypeFor[*string](), "", ptr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok, err := tab.TryConvert(tt.typ, tt.text)
			if err != nil || !ok {
				t.Fatalf("TryConvert() ok=%v err=%v", ok, err)
			}
			if diff := cmp.Diff(tt.want, v.Interface()); diff != "" {
				t.Errorf("TryConvert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTryConvertDecimal(t *testing.T) {
	tab := New(nil)
	v, ok, err := tab.TryConvert(reflect.TypeFor[decimal.Decimal](), "123.4500")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if d := v.Interface().(decimal.Decimal); !d.Equal(decimal.RequireFromString("123.45")) {
		t.Errorf("got %s", d)
	}
	v, _, _ = tab.TryConvert(reflect.TypeFor[*decimal.Decimal](), "n/a")
	if !v.IsNil() {
		t.Errorf("nullable decimal fallback is not nil")
	}
}

func TestTryConvertStrict(t *testing.T) {
	tab := New(nil, WithMode(Strict))
	if _, _, err := tab.TryConvert(reflect.TypeFor[int](), "x"); !errors.Is(err, ErrParse) {
		t.Errorf("strict int: expected ErrParse, got %v", err)
	}
	if _, _, err := tab.TryConvert(reflect.TypeFor[*int](), "x"); !errors.Is(err, ErrParse) {
		t.Errorf("strict nullable int: expected ErrParse, got %v", err)
	}
	v, ok, err := tab.TryConvert(reflect.TypeFor[*int](), "")
	if err != nil || !ok || !v.IsNil() {
		t.Errorf("strict blank nullable: %v %v %v", v, ok, err)
	}
	for _, tt := range []struct {
		typ  reflect.Type
		text string
	}{
		{reflect.TypeFor[int16](), "70000"},
		{reflect.TypeFor[int8](), "-129"},
		{reflect.TypeFor[uint8](), "300"},
		{reflect.TypeFor[*uint16](), "65536"},
	} {
		if _, _, err := tab.TryConvert(tt.typ, tt.text); !errors.Is(err, ErrParse) {
			t.Errorf("strict %s %q: expected ErrParse, got %v", tt.typ, tt.text, err)
		}
	}
	if v, _, err := tab.TryConvert(reflect.TypeFor[int16](), "32767"); err != nil || v.Int() != 32767 {
		t.Errorf("strict int16 max: %v %v", v, err)
	}
}

func TestTryConvertDeclines(t *testing.T) {
	tab := New(nil)
	for _, typ := range []reflect.Type{
		reflect.TypeFor[struct{ A int }](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[any](),
		reflect.TypeFor[**int](),
	} {
		if _, ok, _ := tab.TryConvert(typ, "1"); ok {
			t.Errorf("TryConvert(%s) did not decline", typ)
		}
		if IsScalar(typ) {
			t.Errorf("IsScalar(%s) = true", typ)
		}
	}
	if _, err := tab.Convert(reflect.TypeFor[[]int](), "1"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Convert: expected ErrUnsupported, got %v", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, name := range []string{"", "de-DE"} {
		tab := New(locale.MustNew(name))
		values := []any{
			"text", true, false, int8(-5), int64(1 << 40), uint16(65535),
			float32(2.5), 1.0 / 3, decimal.RequireFromString("-0.001"),
			time.Date(2014, 6, 8, 10, 30, 0, 0, time.UTC),
		}
		for _, want := range values {
			text, ok, err := tab.Format(reflect.ValueOf(want))
			if !ok || err != nil {
				t.Fatalf("Format(%T) = %v, %v", want, ok, err)
			}
			got, err := tab.Convert(reflect.TypeOf(want), text)
			if err != nil {
				t.Fatalf("Convert(%T, %q): %v", want, text, err)
			}
			if diff := cmp.Diff(want, got.Interface(), cmp.Comparer(decimal.Decimal.Equal), cmp.Comparer(time.Time.Equal)); diff != "" {
				t.Errorf("%s: round trip of %q mismatch (-want +got):\n%s", name, text, diff)
			}
		}
	}
	var nilInt *int
	if s, ok, err := New(nil).Format(reflect.ValueOf(nilInt)); !ok || err != nil || s != "" {
		t.Errorf("Format(nil *int) = %q, %v, %v", s, ok, err)
	}
}

func TestInfer(t *testing.T) {
	tab := New(locale.Invariant.WithLocation(time.UTC))
	tests := []struct {
		text string
		want any
	}{
		{"123", int64(123)},
		{"-5", int64(-5)},
		{"123.45", decimal.RequireFromString("123.45")},
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"hello", "hello"},
		{"", ""},
		{"2014-06-08", time.Date(2014, 6, 8, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := tab.Infer(tt.text)
		if diff := cmp.Diff(tt.want, got, cmp.Comparer(decimal.Decimal.Equal), cmp.Comparer(time.Time.Equal)); diff != "" {
			t.Errorf("Infer(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
	if got := New(nil, WithNumbers(InferFloat)).Infer("2.5"); got != 2.5 {
		t.Errorf("InferFloat: got %#v", got)
	}
}

func TestInferDottedDate(t *testing.T) {
	// Numbers are tried before dates, so a dotted date reads as a grouped number.
	de := New(locale.MustNew("de-DE"))
	if got, ok := de.Infer("08.06.2014").(decimal.Decimal); !ok || !got.Equal(decimal.NewFromInt(8062014)) {
		t.Errorf("de: got %#v", got)
	}
	if got, ok := de.InferAs("date", "08.06.2014").(time.Time); !ok || got.Month() != time.June || got.Day() != 8 {
		t.Errorf("de date: got %#v", got)
	}
}

func TestInferAs(t *testing.T) {
	tab := New(locale.Invariant.WithLocation(time.UTC))
	if got := tab.InferAs("integer", "12"); got != int64(12) {
		t.Errorf("integer: %#v", got)
	}
	if got, ok := tab.InferAs("Number", "12").(decimal.Decimal); !ok || !got.Equal(decimal.NewFromInt(12)) {
		t.Errorf("number: %#v", got)
	}
	if got, ok := tab.InferAs("date", "2014-06-08").(time.Time); !ok || got.Year() != 2014 {
		t.Errorf("date: %#v", got)
	}
	if got := tab.InferAs("int", "abc"); got != "abc" {
		t.Errorf("fallback: %#v", got)
	}
	if got := tab.InferAs("whatever", "true"); got != true {
		t.Errorf("unknown kind: %#v", got)
	}
}

func TestTextTypes(t *testing.T) {
	tab := New(nil)
	v, err := tab.Convert(reflect.TypeFor[net.IP](), "10.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	ip := v.Interface().(net.IP)
	if !ip.Equal(net.ParseIP("10.0.0.1")) {
		t.Errorf("got %v", ip)
	}
	if s, ok, err := tab.Format(reflect.ValueOf(ip)); !ok || err != nil || s != "10.0.0.1" {
		t.Errorf("Format(ip) = %q, %v, %v", s, ok, err)
	}
	if !IsScalar(reflect.TypeFor[*net.IP]()) {
		t.Errorf("*net.IP is not a nullable scalar")
	}
}
