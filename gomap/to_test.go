package gomap

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deuxsucres/xserializer/encode"
	"github.com/deuxsucres/xserializer/ir"
	"github.com/deuxsucres/xserializer/locale"
	"github.com/deuxsucres/xserializer/ordered"
	"github.com/shopspring/decimal"
)

type Item struct {
	Name  string
	Qty   int
	Price decimal.Decimal
	When  time.Time
	Ok    bool
	Ratio float64
	Note  *string
}

type Account struct {
	id      string
	balance int
}

func (a *Account) Accessors() []string { return []string{"ID", "Balance"} }
func (a *Account) ID() string          { return a.id }
func (a *Account) Balance() int        { return a.balance }
func (a *Account) SetBalance(v int)    { a.balance = v }

type Person struct {
	Name string
	Boss *Person
}

func sampleItem() Item {
	return Item{
		Name:  "pen",
		Qty:   3,
		Price: decimal.RequireFromString("1234.5"),
		When:  time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		Ok:    true,
		Ratio: 0.25,
	}
}

func TestSerializeRecord(t *testing.T) {
	node, err := New().Serialize(sampleItem())
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node)
	want := `<Item><Name>pen</Name><Qty>3</Qty><Price>1234.5</Price>` +
		`<When>2024-03-01 10:20:30Z</When><Ok>true</Ok><Ratio>0.25</Ratio></Item>`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeLocale(t *testing.T) {
	s := New(WithLocale(locale.MustNew("fr-FR")))
	node, err := s.Serialize(sampleItem())
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "Price").Text; got != "1234,5" {
		t.Errorf("price %q", got)
	}
	if got := ir.Get(node, "Ratio").Text; got != "0,25" {
		t.Errorf("ratio %q", got)
	}
}

func TestCollectionNaming(t *testing.T) {
	s := New()
	items := []Item{sampleItem(), sampleItem()}
	node, err := s.Serialize(items)
	if err != nil {
		t.Fatal(err)
	}
	if node.Name != "Items" {
		t.Errorf("root %q", node.Name)
	}
	for _, c := range node.Children {
		if c.Name != "Item" {
			t.Errorf("child %q", c.Name)
		}
	}

	fish := ir.New("Fish")
	if err := s.SerializeInto(items, fish); err != nil {
		t.Fatal(err)
	}
	if len(fish.Children) != 2 {
		t.Fatalf("%d children", len(fish.Children))
	}
	for _, c := range fish.Children {
		if c.Name != "Fish" {
			t.Errorf("child %q", c.Name)
		}
	}

	untyped, err := s.Serialize([]any{1, "a", nil})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(untyped); got != "<Items><Item>1</Item><Item>a</Item></Items>" {
		t.Errorf("got %s", got)
	}
}

func TestSerializeMaps(t *testing.T) {
	s := New()
	node, err := s.SerializeNamed(map[string]int{"b": 2, "a": 1, "c": 3}, "root")
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<root><a>1</a><b>2</b><c>3</c></root>" {
		t.Errorf("got %s", got)
	}

	m := ordered.New()
	m.Set("z", true)
	m.Set("y", []string{"p", "q"})
	m.Set("x", nil)
	node, err = s.Serialize(m)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<Map><z>true</z><y><y>p</y><y>q</y></y><x/></Map>" {
		t.Errorf("got %s", got)
	}

	_, err = s.SerializeNamed(map[string]int{"": 1}, "root")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty key: %v", err)
	}
}

func TestSerializeInvalid(t *testing.T) {
	s := New()
	var nilItem *Item
	for _, v := range []any{nil, 42, "text", decimal.Zero, nilItem} {
		if _, err := s.Serialize(v); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%#v: got %v", v, err)
		}
	}
	if _, err := s.Serialize(make(chan int)); !errors.Is(err, ErrNotSupported) {
		t.Errorf("chan: got %v", err)
	}
	if _, err := s.SerializeNamed(sampleItem(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty name: got %v", err)
	}
	if err := s.SerializeInto(sampleItem(), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil node: got %v", err)
	}
}

func TestSerializeNilMembers(t *testing.T) {
	type Box struct {
		Label *string
		Inner *Item
		Tags  []string
		Extra map[string]string
	}
	node, err := New().Serialize(&Box{})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<Box/>" {
		t.Errorf("got %s", got)
	}
	label := "x"
	node, err = New().Serialize(&Box{Label: &label, Inner: &Item{Name: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(node, "Label").Text != "x" || ir.Get(ir.Get(node, "Inner"), "Name").Text != "a" {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestSkipReadOnly(t *testing.T) {
	acct := &Account{id: "a1", balance: 5}
	node, err := New().Serialize(acct)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<Account><ID>a1</ID><Balance>5</Balance></Account>" {
		t.Errorf("got %s", got)
	}
	node, err = New(SkipReadOnly(true)).Serialize(acct)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<Account><Balance>5</Balance></Account>" {
		t.Errorf("got %s", got)
	}
}

func TestCircularReference(t *testing.T) {
	p := &Person{Name: "Alice"}
	p.Boss = p
	_, err := New().Serialize(p)
	if err == nil {
		t.Fatal("expected error for circular reference")
	}
	if !strings.Contains(err.Error(), "circular") || !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v", err)
	}

	shared := &Person{Name: "Carol"}
	team := []*Person{{Name: "A", Boss: shared}, {Name: "B", Boss: shared}}
	if _, err := New().Serialize(team); err != nil {
		t.Errorf("shared reference: %v", err)
	}
}

func TestMarshalErrorPath(t *testing.T) {
	type Holder struct {
		Lines []map[string]int
	}
	_, err := New().Serialize(Holder{Lines: []map[string]int{{"a": 1}, {"": 2}}})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("got %v", err)
	}
	if me.FieldPath != "Holder.Lines[1]." {
		t.Errorf("path %q", me.FieldPath)
	}
}

var errUnsetCode = errors.New("code is unset")

type code string

func (c code) MarshalText() ([]byte, error) {
	if c == "" {
		return nil, errUnsetCode
	}
	return []byte(strings.ToUpper(string(c))), nil
}

func (c *code) UnmarshalText(b []byte) error {
	*c = code(strings.ToLower(string(b)))
	return nil
}

func TestSerializeTextMarshalerError(t *testing.T) {
	type Shipment struct {
		Code code
	}
	node, err := New().Serialize(Shipment{Code: "ab"})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "<Shipment><Code>AB</Code></Shipment>" {
		t.Errorf("got %s", got)
	}

	_, err = New().Serialize(Shipment{})
	if !errors.Is(err, errUnsetCode) {
		t.Fatalf("expected the marshaler error, got %v", err)
	}
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "Shipment.Code" {
		t.Errorf("got %v", err)
	}
}
