package gomap

import (
	"log/slog"
	"reflect"

	"github.com/deuxsucres/xserializer/debug"
	"github.com/deuxsucres/xserializer/describe"
	"github.com/deuxsucres/xserializer/locale"
	"github.com/deuxsucres/xserializer/scalar"
)

// Serializer converts values to and from ir trees. Its configuration is
// fixed at construction, so a Serializer is safe for concurrent use.
type Serializer struct {
	cfg   config
	table *scalar.Table

	writeLog, readLog *slog.Logger
}

func New(opts ...Option) *Serializer {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return newSerializer(*cfg)
}

func newSerializer(cfg config) *Serializer {
	return &Serializer{
		cfg: cfg,
		table: scalar.New(cfg.loc,
			scalar.WithMode(cfg.mode),
			scalar.WithNumbers(cfg.numbers),
			scalar.WithLogger(cfg.logger(debug.AreaConvert))),
		writeLog: cfg.logger(debug.AreaWrite),
		readLog:  cfg.logger(debug.AreaRead),
	}
}

// WithLocale returns a copy of s using l; nil reverts to locale.Invariant.
func (s *Serializer) WithLocale(l *locale.Locale) *Serializer {
	cfg := s.cfg
	cfg.loc = l.Or()
	return newSerializer(cfg)
}

// Locale is never nil.
func (s *Serializer) Locale() *locale.Locale {
	return s.cfg.loc.Or()
}

// Table returns the scalar conversion table in use.
func (s *Serializer) Table() *scalar.Table {
	return s.table
}

func (s *Serializer) describe(t reflect.Type) (*describe.Descriptor, error) {
	if s.cfg.registry != nil {
		return s.cfg.registry.Of(t)
	}
	return describe.Of(t)
}
