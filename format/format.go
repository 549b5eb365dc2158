package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how the command line tool prints a result.
type Format int

const (
	XMLFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var names = [...]string{XMLFormat: "xml", JSONFormat: "json", YAMLFormat: "yaml"}

// ParseFormat accepts a format name or its first letter, in any case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for i, name := range names {
		if v != "" && (v == name || v == name[:1]) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f]
}

func (f Format) IsXML() bool { return f == XMLFormat }
