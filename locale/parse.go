package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSyntax = errors.New("invalid syntax")

func syntaxErr(kind, s string) error {
	return fmt.Errorf("%w: %q is not a %s", ErrSyntax, s, kind)
}

// ParseBool accepts "true" and "false" in any case.
func (l *Locale) ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, syntaxErr("boolean", s)
}

// ParseInt parses an optionally signed decimal integer. Group separators
// are not accepted.
func (l *Locale) ParseInt(s string) (int64, error) {
	n := normalizeSign(strings.TrimSpace(s))
	i, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return 0, syntaxErr("integer", s)
	}
	return i, nil
}

func (l *Locale) ParseUint(s string) (uint64, error) {
	n := strings.TrimPrefix(strings.TrimSpace(s), "+")
	u, err := strconv.ParseUint(n, 10, 64)
	if err != nil {
		return 0, syntaxErr("unsigned integer", s)
	}
	return u, nil
}

func (l *Locale) ParseFloat(s string, bitSize int) (float64, error) {
	n, ok := l.normalizeNumber(s)
	if !ok {
		return 0, syntaxErr("number", s)
	}
	f, err := strconv.ParseFloat(n, bitSize)
	if err != nil {
		return 0, syntaxErr("number", s)
	}
	return f, nil
}

func (l *Locale) ParseDecimal(s string) (decimal.Decimal, error) {
	n, ok := l.normalizeNumber(s)
	if !ok {
		return decimal.Zero, syntaxErr("decimal", s)
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Zero, syntaxErr("decimal", s)
	}
	return d, nil
}

// ParseTime tries the locale's date layouts and then the ISO 8601 forms.
// Text without an offset is taken to be in l.Location(); text with one is
// converted to l.Location(), so times written by FormatTime read back in
// the zone they were written from.
func (l *Locale) ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, syntaxErr("date-time", s)
	}
	for _, layout := range l.layouts() {
		t, err := time.ParseInLocation(layout, s, l.loc)
		if err == nil {
			return t.In(l.loc), nil
		}
	}
	return time.Time{}, syntaxErr("date-time", s)
}

// normalizeNumber rewrites s into the syntax strconv and decimal accept:
// group separators dropped, the locale decimal separator replaced by '.'.
// Group separators are dropped wherever they appear, so with a '.' group
// separator "08.06.2014" reads as 8062014.
func (l *Locale) normalizeNumber(s string) (string, bool) {
	n := normalizeSign(strings.TrimSpace(s))
	if n == "" {
		return "", false
	}
	if l.group != "" {
		n = strings.ReplaceAll(n, l.group, "")
		if isSpaceSeparator(l.group) {
			n = strings.Map(func(r rune) rune {
				if isSpaceSeparator(string(r)) {
					return -1
				}
				return r
			}, n)
		}
	}
	if l.decimal != "." {
		if strings.Contains(n, ".") {
			return "", false
		}
		n = strings.Replace(n, l.decimal, ".", 1)
	}
	if n == "" || strings.ContainsAny(n, "_xXpP") {
		return "", false
	}
	return n, true
}

func normalizeSign(s string) string {
	return strings.Replace(s, "\u2212", "-", 1)
}

func isSpaceSeparator(s string) bool {
	switch s {
	case " ", "\u00a0", "\u202f":
		return true
	}
	return false
}
