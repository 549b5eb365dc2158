// Package ordered provides a string-keyed map that remembers insertion
// order. It is the map produced by untyped deserialization.
package ordered

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"

	"github.com/goccy/go-yaml"
)

// Map is a string-keyed map iterating in insertion order. Keys are case
// sensitive. The zero value is an empty map ready to use.
type Map struct {
	keys []string
	vals map[string]any
}

func New() *Map {
	return &Map{vals: map[string]any{}}
}

// Set stores v under key. Replacing an existing key keeps its position.
func (m *Map) Set(key string, v any) {
	if m.vals == nil {
		m.vals = map[string]any{}
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

func (m *Map) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// GetFold returns the first value, in insertion order, whose key matches
// key case-insensitively.
func (m *Map) GetFold(key string) (any, bool) {
	if v, ok := m.vals[key]; ok {
		return v, true
	}
	for _, k := range m.keys {
		if strings.EqualFold(k, key) {
			return m.vals[k], true
		}
	}
	return nil, false
}

func (m *Map) Delete(key string) bool {
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) Keys() []string {
	res := make([]string, len(m.keys))
	copy(res, m.keys)
	return res
}

func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML makes go-yaml emit the entries in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, 0, len(m.keys))
	for _, k := range m.keys {
		res = append(res, yaml.MapItem{Key: k, Value: m.vals[k]})
	}
	return res, nil
}
