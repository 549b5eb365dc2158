package gomap

import (
	"log/slog"

	"github.com/deuxsucres/xserializer/debug"
	"github.com/deuxsucres/xserializer/describe"
	"github.com/deuxsucres/xserializer/locale"
	"github.com/deuxsucres/xserializer/scalar"
)

// DefaultDiscriminator is the attribute that may declare the scalar kind
// of an untyped leaf element.
const DefaultDiscriminator = "type"

// Option configures a Serializer.
type Option func(*config)

type config struct {
	loc           *locale.Locale
	mode          scalar.Mode
	numbers       scalar.NumberInference
	skipReadOnly  bool
	discriminator string
	log           *slog.Logger
	registry      *describe.Registry
}

func newConfig() *config {
	return &config{
		loc:           locale.Invariant,
		discriminator: DefaultDiscriminator,
	}
}

// logger returns the configured logger tagged with area, or the debug
// logger of area.
func (c *config) logger(area string) *slog.Logger {
	if c.log != nil {
		return c.log.With("area", area)
	}
	return debug.Logger(area)
}

// WithLocale sets the locale scalars are formatted and parsed with. nil
// selects locale.Invariant.
func WithLocale(l *locale.Locale) Option {
	return func(c *config) { c.loc = l.Or() }
}

// Strict makes unparsable scalar text an error instead of falling back to
// zero values.
func Strict(v bool) Option {
	return func(c *config) {
		c.mode = scalar.Lenient
		if v {
			c.mode = scalar.Strict
		}
	}
}

// SkipReadOnly makes the writer leave out record members that cannot be
// set, such as accessors without a setter.
func SkipReadOnly(v bool) Option {
	return func(c *config) { c.skipReadOnly = v }
}

// InferNumbers selects what untyped non-integer numbers become.
func InferNumbers(n scalar.NumberInference) Option {
	return func(c *config) { c.numbers = n }
}

// DiscriminatorAttr renames the untyped scalar kind attribute. An empty
// name disables it.
func DiscriminatorAttr(name string) Option {
	return func(c *config) { c.discriminator = name }
}

// WithLogger sends debug records to l instead of the logger selected by
// the XSER_DEBUG environment switches.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithRegistry sets the descriptor registry; the default is shared by
// every Serializer.
func WithRegistry(r *describe.Registry) Option {
	return func(c *config) { c.registry = r }
}
