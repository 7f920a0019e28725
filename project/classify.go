package project

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// class is the closed classification of a walked value. Every value maps
// to exactly one class, so the walk is total over well-formed inputs.
type class int

const (
	classNull class = iota
	classLeaf
	classSeq
	classMap
	classAggregate
)

// leafTypes is the explicit allowlist of struct- or container-kinded
// types that are nonetheless scalars for projection purposes. Primitive
// kinds are leaves regardless and need no entry here.
var leafTypes = map[reflect.Type]bool{
	reflect.TypeOf(time.Time{}):      true,
	reflect.TypeOf(time.Duration(0)): true,
	reflect.TypeOf(uuid.UUID{}):      true,
	reflect.TypeOf(url.URL{}):        true,
	reflect.TypeOf([]byte(nil)):      true,
}

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// isLeafType reports whether t projects as a single scalar row.
func isLeafType(t reflect.Type) bool {
	if leafTypes[t] {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		// Not aggregates; render as opaque leaves.
		return true
	}
	// Enumerated and other self-describing types: anything with a
	// canonical text form counts as a scalar even when its underlying
	// kind is a struct or array (uuid.UUID, netip.Addr, ...).
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return true
	}
	if t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType) {
		return true
	}
	return false
}

// classify maps an unwrapped value onto the closed class set. Wrapper
// unwrapping (pointer, interface) happens in the walk, one level at a
// time, before classify is consulted.
func classify(v reflect.Value) class {
	if !v.IsValid() {
		return classNull
	}
	t := v.Type()
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return classNull
		}
		return classify(v.Elem())
	}
	if isLeafType(t) {
		return classLeaf
	}
	switch t.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return classNull
		}
		return classMap
	case reflect.Slice:
		if v.IsNil() {
			return classNull
		}
		return classSeq
	case reflect.Array:
		return classSeq
	case reflect.Struct:
		return classAggregate
	default:
		// The kind switches above are exhaustive for readable values;
		// anything left is opaque and renders as a leaf.
		return classLeaf
	}
}

// typeName renders t for display. Interface types carry no element
// information, so they fall back to the generic "object" tag.
func typeName(t reflect.Type) string {
	if t == nil || t.Kind() == reflect.Interface {
		return "object"
	}
	if t.Kind() == reflect.Pointer {
		return typeName(t.Elem())
	}
	return t.String()
}
