package describe

import (
	"reflect"
	"strings"
	"sync"
)

// Registry caches descriptors by type. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*Descriptor
	errs  map[reflect.Type]error
}

func NewRegistry() *Registry {
	return &Registry{
		types: map[reflect.Type]*Descriptor{},
		errs:  map[reflect.Type]error{},
	}
}

var defaultRegistry = NewRegistry()

// Of returns the descriptor of t from the default registry.
func Of(t reflect.Type) (*Descriptor, error) {
	return defaultRegistry.Of(t)
}

func (r *Registry) Of(t reflect.Type) (*Descriptor, error) {
	t = Indirect(t)
	r.mu.RLock()
	d, ok := r.types[t]
	err := r.errs[t]
	r.mu.RUnlock()
	if ok {
		return d, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d = r.of(t)
	return d, r.errs[t]
}

// of builds the descriptor of t with r.mu held. The descriptor is cached
// before its element and members are filled so recursive types terminate.
func (r *Registry) of(t reflect.Type) *Descriptor {
	t = Indirect(t)
	if d, ok := r.types[t]; ok {
		return d
	}
	k := kindOf(t)
	d := &Descriptor{Type: t, Kind: k, Name: fallbackName(t, k)}
	r.types[t] = d
	switch k {
	case Map, Collection, Array:
		d.Elem = r.of(t.Elem())
	case OrderedMap:
		d.Elem = r.of(reflect.TypeFor[any]())
	case Record:
		if err := r.fillMembers(d); err != nil {
			r.errs[t] = err
		}
	}
	return d
}

func (r *Registry) fillMembers(d *Descriptor) error {
	t := d.Type
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		d.Members = append(d.Members, fieldMember(f, true))
	}
	methods, err := methodMembers(t)
	if err != nil {
		return err
	}
	d.Members = append(d.Members, methods...)
	d.index = make(map[string]*Member, len(d.Members))
	for _, m := range d.Members {
		key := strings.ToLower(m.Name)
		if _, dup := d.index[key]; !dup {
			d.index[key] = m
		}
	}
	return nil
}
