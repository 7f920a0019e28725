package project

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldline/treelist/debug"
	"github.com/fieldline/treelist/node"
)

// Commit writes raw, coerced to the slot's declared type, through the
// row's write target and refreshes the row's displayed value. Rows
// without a target decline with ErrReadOnly; coercion failures return a
// *CoercionError and leave both the graph and the row untouched.
func Commit(n *node.Node, raw string) error {
	if n == nil || n.Target == nil {
		return ErrReadOnly
	}
	t := n.Target.Type()
	v, err := coerce(raw, t)
	if err != nil {
		return &CoercionError{Raw: raw, Type: t, Err: err}
	}
	if err := n.Target.Set(v); err != nil {
		return err
	}
	cur, err := n.Target.Get()
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(cur)
	isNil := !rv.IsValid()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		isNil = rv.IsNil()
	}
	if isNil {
		n.Kind = node.NullKind
		n.Value = ""
	} else {
		n.Kind = node.LeafKind
		n.Value = formatValue(rv)
	}
	if debug.Commit() {
		debug.Logf("commit %q -> %s %s\n", raw, t, n.Name)
	}
	return nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// coerce converts raw edited text to a value assignable (possibly via
// conversion) to t. Rules are attempted in declaration order: null
// passthrough, text passthrough, enumerated parse by name, bool, each
// numeric width, duration, date/time, unique id, URI, then a generic
// text-unmarshal fallback. All parsing is culture invariant.
func coerce(raw string, t reflect.Type) (any, error) {
	if t.Kind() == reflect.Pointer {
		if raw == "" {
			return nil, nil
		}
		inner, err := coerce(raw, t.Elem())
		if err != nil {
			return nil, err
		}
		p := reflect.New(t.Elem())
		iv := reflect.ValueOf(inner)
		if !iv.Type().AssignableTo(t.Elem()) {
			iv = iv.Convert(t.Elem())
		}
		p.Elem().Set(iv)
		return p.Interface(), nil
	}

	// Null passthrough for the remaining nullable kinds; empty input is
	// otherwise only a value for text slots.
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Interface:
		if raw == "" {
			return nil, nil
		}
	default:
		if raw == "" && t.Kind() != reflect.String {
			return nil, fmt.Errorf("empty input for non-nullable type %s", t)
		}
	}

	switch t {
	case reflect.TypeOf(time.Duration(0)):
		return time.ParseDuration(raw)
	case reflect.TypeOf(time.Time{}):
		return parseTime(raw)
	case reflect.TypeOf(uuid.UUID{}):
		return uuid.Parse(raw)
	case reflect.TypeOf(url.URL{}):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, err
		}
		return *u, nil
	case reflect.TypeOf([]byte(nil)):
		return []byte(raw), nil
	}

	// Plain text passthrough; named string types without their own
	// parser also land here.
	if t.Kind() == reflect.String && !hasTextUnmarshaler(t) {
		return raw, nil
	}

	// Enumerated and other self-parsing types, by name, with a
	// case-insensitive retry.
	if hasTextUnmarshaler(t) {
		return textParse(raw, t)
	}

	switch t.Kind() {
	case reflect.Bool:
		return strconv.ParseBool(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return nil, err
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return nil, err
		}
		return u, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return nil, err
		}
		return f, nil
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(raw, t.Bits())
		if err != nil {
			return nil, err
		}
		return c, nil
	case reflect.String:
		return raw, nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("unsupported target type %s", t)
}

func hasTextUnmarshaler(t reflect.Type) bool {
	return t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// textParse parses via encoding.TextUnmarshaler, retrying with folded
// case so enumerated names match regardless of how the user typed them.
func textParse(raw string, t reflect.Type) (any, error) {
	attempts := []string{raw}
	if lower := strings.ToLower(raw); lower != raw {
		attempts = append(attempts, lower)
	}
	if upper := strings.ToUpper(raw); upper != raw {
		attempts = append(attempts, upper)
	}
	var firstErr error
	for _, s := range attempts {
		pv := reflect.New(t)
		tu, ok := pv.Interface().(encoding.TextUnmarshaler)
		if !ok {
			break
		}
		if err := tu.UnmarshalText([]byte(s)); err == nil {
			return pv.Elem().Interface(), nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no text parser for %s", t)
	}
	return nil, fmt.Errorf("invalid %s value %q: %w", t, raw, firstErr)
}

// parseTime accepts the canonical display form first, then the common
// invariant fallbacks.
func parseTime(raw string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
