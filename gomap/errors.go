package gomap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a nil or structurally illegal argument,
	// such as a bare scalar at the top level or an empty tag name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSupported reports a conversion with no rule, such as an
	// attribute read into a record.
	ErrNotSupported = errors.New("not supported")
)

// MarshalError represents an error while writing a value to a tree.
type MarshalError struct {
	FieldPath string // Field path (e.g., "Order.Lines[2].Sku")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error while reading a tree into a value.
type UnmarshalError struct {
	NodePath string // Node path (e.g., "/Order/Lines/Line[2]")
	Message  string
	Err      error
}

func (e *UnmarshalError) Error() string {
	if e.NodePath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.NodePath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func marshalErr(path string, err error, format string, args ...any) error {
	return &MarshalError{FieldPath: path, Message: fmt.Sprintf(format, args...), Err: err}
}

func unmarshalErr(path string, err error, format string, args ...any) error {
	return &UnmarshalError{NodePath: path, Message: fmt.Sprintf(format, args...), Err: err}
}
