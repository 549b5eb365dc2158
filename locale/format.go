package locale

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func (l *Locale) FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

func (l *Locale) FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func (l *Locale) FormatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// FormatFloat renders f with the shortest representation that parses
// back to the same value, switching to exponent form for very large or
// very small magnitudes.
func (l *Locale) FormatFloat(f float64, bitSize int) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) || bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	return l.localizeDecimal(strconv.FormatFloat(f, format, -1, bitSize))
}

func (l *Locale) FormatDecimal(d decimal.Decimal) string {
	return l.localizeDecimal(d.String())
}

// FormatTime renders t in UTC with the sortable layout.
func (l *Locale) FormatTime(t time.Time) string {
	return t.UTC().Format(SortableUTC)
}

func (l *Locale) localizeDecimal(s string) string {
	if l.decimal == "." {
		return s
	}
	return strings.Replace(s, ".", l.decimal, 1)
}
