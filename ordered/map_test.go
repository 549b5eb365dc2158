package ordered

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestSetKeepsOrder(t *testing.T) {
	var m Map
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 4)
	m.Set("B", 5)
	if got, want := m.Keys(), []string{"b", "a", "c", "B"}; !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if v, _ := m.Get("b"); v != 4 {
		t.Errorf("Get(b) = %v", v)
	}
	if v, ok := m.GetFold("A"); !ok || v != 2 {
		t.Errorf("GetFold(A) = %v, %v", v, ok)
	}
	if !m.Delete("a") || m.Delete("a") {
		t.Errorf("Delete misreported")
	}
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	if want := []string{"b", "c", "B"}; !slices.Equal(keys, want) {
		t.Errorf("All() keys = %v, want %v", keys, want)
	}
}

func TestMarshal(t *testing.T) {
	inner := New()
	inner.Set("flag", true)
	m := New()
	m.Set("name", "text")
	m.Set("inner", inner)
	m.Set("count", int64(3))
	d, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"name":"text","inner":{"flag":true},"count":3}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}
	yd, err := yaml.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	out := string(yd)
	last := -1
	for _, key := range []string{"name:", "inner:", "flag:", "count:"} {
		i := strings.Index(out, key)
		if i <= last {
			t.Fatalf("yaml keys out of order in %q", out)
		}
		last = i
	}
}
