package amber

import (
	"reflect"
)

// Cloner allows types to take over copy logic.
//
// The compiled clone operation performs a shallow member-wise copy: slice,
// map, and pointer fields share their targets with the source. Types that
// need different semantics (deeper copies, cache invalidation) implement
// Cloner and their Clone is used everywhere amber would otherwise copy:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
//
// Clone must never mutate the receiver.
type Cloner[T any] interface {
	Clone() T
}

// Field is one (name, value) pair of a member enumeration. Enumerations are
// produced in declaration order; order is part of the contract for bridges
// targeting order-sensitive formats.
type Field struct {
	Name  string
	Value any
}

// typeOps bundles the compiled per-type operations. Every operation is a
// pure function of the shape, so rebuilding one is always safe.
type typeOps[T any] struct {
	shape     *shape
	construct func() T
	clone     func(T) T
	fields    func(T) []Field
	apply     func(*T, []Field) error
}

// setFn is a compiled single-member write: convert the value to the member's
// declared type (or the setter's input type) and assign it.
type setFn[T any] func(*T, any) error

// compileOps synthesizes the operation set for T from its shape.
func compileOps[T any]() (*typeOps[T], error) {
	s, err := scanShape[T]()
	if err != nil {
		return nil, err
	}

	ops := &typeOps[T]{
		shape:     s,
		construct: func() T { var zero T; return zero },
		clone:     cloneValue[T],
		fields:    compileFields[T](s),
		apply:     compileApply[T](s),
	}

	emitShapeCompiled(s.typeName, len(s.members))
	return ops, nil
}

// cloneValue is the compiled clone: a shallow copy of every member with no
// setter involvement. Go's value assignment copies each field directly, so
// the member loop the shape describes collapses into a single copy. Types
// implementing Cloner override this.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// compileFields builds the serialize-side enumeration: members as (name,
// value) pairs in declaration order.
func compileFields[T any](s *shape) func(T) []Field {
	return func(v T) []Field {
		rv := reflect.ValueOf(v)
		out := make([]Field, len(s.members))
		for i := range s.members {
			out[i] = Field{
				Name:  s.members[i].name,
				Value: rv.FieldByIndex(s.members[i].index).Interface(),
			}
		}
		return out
	}
}

// compileApply builds the deserialize-side consumer: assign each (name,
// value) pair to its member. Writes go to backing storage directly, not
// through setters; a bridge restores stored state verbatim, the same way
// clone reproduces it.
func compileApply[T any](s *shape) func(*T, []Field) error {
	return func(dst *T, fields []Field) error {
		rv := reflect.ValueOf(dst).Elem()
		for _, f := range fields {
			m, err := s.resolve(f.Name)
			if err != nil {
				return err
			}
			converted, err := convert(f.Value, m.typ, s.typeName, m.name)
			if err != nil {
				return err
			}
			rv.FieldByIndex(m.index).Set(converted)
		}
		return nil
	}
}

// compileSet builds the single-member write operation. Members with custom
// write logic are assigned through their Set<Field> method so type-defined
// write invariants hold; everything else writes backing storage directly.
func compileSet[T any](s *shape, name string) (setFn[T], error) {
	m, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	typeName := s.typeName

	if m.setter >= 0 {
		methodIndex, input := m.setter, m.input
		return func(dst *T, value any) error {
			converted, err := convert(value, input, typeName, name)
			if err != nil {
				return err
			}
			reflect.ValueOf(dst).Method(methodIndex).Call([]reflect.Value{converted})
			return nil
		}, nil
	}

	index, fieldType := m.index, m.typ
	return func(dst *T, value any) error {
		converted, err := convert(value, fieldType, typeName, name)
		if err != nil {
			return err
		}
		reflect.ValueOf(dst).Elem().FieldByIndex(index).Set(converted)
		return nil
	}, nil
}

// convert coerces value to the target type.
//
// Permitted coercions, in order of attempt:
//   - exact or assignable types
//   - nil into any nilable target
//   - wrapping into a pointer target (nullable members accept the
//     underlying type)
//   - unwrapping a non-nil pointer value into a non-pointer target
//   - numeric widening and narrowing; float into integer truncates
//     toward zero
//   - conversions between types of the same kind (named string types etc.)
//
// Everything else fails with a ConvertError. Cross-kind conversions that Go
// would technically allow (int into string yields a rune string) are
// rejected: they are never what a caller assigning a member means.
func convert(value any, target reflect.Type, typeName, memberName string) (reflect.Value, error) {
	if value == nil {
		switch target.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, newConvertError(typeName, memberName, "nil", target.String())
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}

	if target.Kind() == reflect.Pointer {
		elem, err := convert(value, target.Elem(), typeName, memberName)
		if err == nil {
			p := reflect.New(target.Elem())
			p.Elem().Set(elem)
			return p, nil
		}
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, newConvertError(typeName, memberName, rv.Type().String(), target.String())
		}
		return convert(rv.Elem().Interface(), target, typeName, memberName)
	}

	if isNumeric(rv.Kind()) && isNumeric(target.Kind()) {
		return rv.Convert(target), nil
	}

	if rv.Kind() == target.Kind() && rv.Type().ConvertibleTo(target) {
		return rv.Convert(target), nil
	}

	return reflect.Value{}, newConvertError(typeName, memberName, rv.Type().String(), target.String())
}

// isNumeric reports whether k is an integer or floating point kind.
func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
