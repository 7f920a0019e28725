package project

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrReadOnly is returned by Commit for rows that carry no write target.
// Calling Commit on such a row is safe and changes nothing.
var ErrReadOnly = errors.New("row is not editable")

// CoercionError reports raw edited text that could not be converted to
// the slot's declared type. The slot and the row are left unmodified.
type CoercionError struct {
	Path string // structural path of the row, when known
	Raw  string
	Type reflect.Type
	Err  error
}

func (e *CoercionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot coerce %q to %s at %s", e.Raw, e.Type, e.Path)
	}
	return fmt.Sprintf("cannot coerce %q to %s", e.Raw, e.Type)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// IntrospectionError reports a value whose shape could not be read during
// projection. Project fails as a whole rather than emitting a partial list.
type IntrospectionError struct {
	Path    string // field path (e.g. "Network.Peers[2]")
	Message string
	Err     error
}

func (e *IntrospectionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("introspection error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("introspection error: %s", e.Message)
}

func (e *IntrospectionError) Unwrap() error {
	return e.Err
}
