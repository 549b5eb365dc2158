// Package locale formats and parses scalar text according to a culture.
//
// The zero configuration is Invariant: '.' decimal separator, ',' group
// separator, month/day/year dates. Other locales are built from BCP 47
// tags; their number symbols are taken from CLDR data through
// golang.org/x/text and their date layouts from a small per-language table.
//
// Date-times are always formatted in a sortable UTC form regardless of the
// locale; the locale only affects which date layouts are accepted on input.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrUnknownLocale = errors.New("unknown locale")

// Locale holds the number and date conventions of a culture. A Locale is
// immutable once built.
type Locale struct {
	name    string
	tag     language.Tag
	decimal string
	group   string
	dates   []string
	loc     *time.Location
}

// Invariant is the machine independent default locale.
var Invariant = &Locale{
	name:    "",
	tag:     language.Und,
	decimal: ".",
	group:   ",",
	dates:   mdyDates,
	loc:     time.Local,
}

// New returns the locale for a BCP 47 tag such as "fr-FR". The empty
// string and "invariant" yield Invariant.
func New(name string) (*Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "invariant") {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownLocale, name, err)
	}
	dec, grp := separators(tag)
	return &Locale{
		name:    tag.String(),
		tag:     tag,
		decimal: dec,
		group:   grp,
		dates:   dateLayouts(tag),
		loc:     time.Local,
	}, nil
}

func MustNew(name string) *Locale {
	l, err := New(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Or returns l, or Invariant when l is nil.
func (l *Locale) Or() *Locale {
	if l == nil {
		return Invariant
	}
	return l
}

// Name is the canonical tag of the locale, empty for Invariant.
func (l *Locale) Name() string { return l.name }

func (l *Locale) Tag() language.Tag { return l.tag }

func (l *Locale) DecimalSeparator() string { return l.decimal }

func (l *Locale) GroupSeparator() string { return l.group }

// Location is where date-times without an explicit offset are assumed to
// be. It defaults to time.Local.
func (l *Locale) Location() *time.Location { return l.loc }

// WithLocation returns a copy of l that assumes loc for date-times without
// an offset.
func (l *Locale) WithLocation(loc *time.Location) *Locale {
	res := *l
	if loc == nil {
		loc = time.Local
	}
	res.loc = loc
	return &res
}

func (l *Locale) String() string {
	if l.name == "" {
		return "invariant"
	}
	return l.name
}

// separators derives the decimal and group separators of tag by
// formatting a known number with the CLDR data of x/text.
func separators(tag language.Tag) (dec, grp string) {
	p := message.NewPrinter(tag)
	s := p.Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	var runs []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if cur.Len() != 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return ".", ""
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}
