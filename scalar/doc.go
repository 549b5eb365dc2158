// Package scalar converts element and attribute text to and from Go
// scalar values.
//
// A Table is an ordered list of rules, one per supported scalar family:
// string, bool, signed and unsigned integers, floats, decimal.Decimal,
// time.Time and types implementing both encoding.TextMarshaler and
// encoding.TextUnmarshaler. A pointer to a supported type is the nullable variant of that
// type. The first rule matching a target type decides the conversion;
// when no rule matches, TryConvert declines and the caller falls back to
// structural handling.
//
// Two modes are available. Lenient (the default) never fails on bad text:
// non-nullable targets get their zero value (false, 0, time.Time{}) and
// nullable targets get nil. Strict reports ErrParse instead, except that
// blank text still yields nil for nullable targets.
//
// Infer converts text without a target type, trying boolean, integer,
// decimal (or float) and date-time in that order, and otherwise keeping
// the text.
package scalar
