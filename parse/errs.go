package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrNoRoot      = fmt.Errorf("%w: no root element", ErrParse)
	ErrOutsideRoot = fmt.Errorf("%w: content outside root element", ErrParse)
)
