package scalar

import "strings"

// Infer converts text without a target type. The order matters: "123"
// must become an int64, not a decimal, and "2014-06-08" must not be
// read as a number.
func (t *Table) Infer(text string) any {
	if b, err := t.loc.ParseBool(text); err == nil {
		return b
	}
	if i, err := t.loc.ParseInt(text); err == nil {
		return i
	}
	if v, ok := t.inferNumber(text); ok {
		return v
	}
	if tm, err := t.loc.ParseTime(text); err == nil {
		return tm
	}
	return text
}

// InferAs converts text according to a kind discriminator: "int" or
// "integer", "float", "double" or "number", "date" or "datetime". Other
// kinds, and text the declared kind cannot parse, fall back to Infer.
func (t *Table) InferAs(kind, text string) any {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "int", "integer":
		if i, err := t.loc.ParseInt(text); err == nil {
			return i
		}
	case "float", "double", "number":
		if v, ok := t.inferNumber(text); ok {
			return v
		}
	case "date", "datetime":
		if tm, err := t.loc.ParseTime(text); err == nil {
			return tm
		}
	}
	return t.Infer(text)
}

func (t *Table) inferNumber(text string) (any, bool) {
	if t.numbers == InferFloat {
		f, err := t.loc.ParseFloat(text, 64)
		return f, err == nil
	}
	d, err := t.loc.ParseDecimal(text)
	return d, err == nil
}
