package project

import (
	"fmt"
	"reflect"

	"github.com/fieldline/treelist/node"
)

// fieldTarget is the settable-field implementation of node.Target: a
// directly owned scalar or nullable slot of a traversed aggregate.
// Collection elements and map keys/values have no addressable owner slot
// and never get one.
type fieldTarget struct {
	owner reflect.Value // the aggregate, struct-kinded
	index int           // field index within owner
}

var _ node.Target = (*fieldTarget)(nil)

func newFieldTarget(owner reflect.Value, index int) *fieldTarget {
	return &fieldTarget{owner: owner, index: index}
}

func (t *fieldTarget) field() reflect.Value {
	return t.owner.Field(t.index)
}

func (t *fieldTarget) Type() reflect.Type {
	return t.owner.Type().Field(t.index).Type
}

func (t *fieldTarget) Get() (any, error) {
	f := t.field()
	if !f.CanInterface() {
		return nil, fmt.Errorf("field %s is not readable", t.owner.Type().Field(t.index).Name)
	}
	return f.Interface(), nil
}

func (t *fieldTarget) Set(v any) error {
	f := t.field()
	if !f.CanSet() {
		// The owner was reached through a non-addressable value; the
		// caller projected a copy. Pass a pointer to the root to edit.
		return fmt.Errorf("%w: field %s is not settable", ErrReadOnly, t.owner.Type().Field(t.index).Name)
	}
	if v == nil {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(f.Type()) {
		if rv.Type().ConvertibleTo(f.Type()) {
			rv = rv.Convert(f.Type())
		} else {
			return fmt.Errorf("cannot assign %s to field of type %s", rv.Type(), f.Type())
		}
	}
	f.Set(rv)
	return nil
}
