package amber

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

// member describes one assignable field of a wrapped type.
type member struct {
	name  string
	typ   reflect.Type // declared field type
	index []int        // reflect.Value.FieldByIndex access path

	// Custom write logic: a Set<Field> method declared on *T. When present,
	// the compiled set operation routes through it instead of writing the
	// backing field directly. setter is the method index on *T, input the
	// method's single argument type. setter is -1 for direct storage.
	setter int
	input  reflect.Type
}

// shape is the ordered set of a type's assignable members, computed once per
// type and treated as immutable metadata for the process lifetime.
type shape struct {
	typ      reflect.Type
	typeName string
	members  []member
	byName   map[string]*member
}

// scanShape derives the shape of T: every exported field in declaration
// order, each paired with its write entry point. Only struct types have a
// shape.
func scanShape[T any]() (*shape, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, newShapeError(ErrNotStruct, typ.String(), "")
	}

	meta := sentinel.Scan[T]()
	ptr := reflect.PointerTo(typ)

	s := &shape{
		typ:      typ,
		typeName: typ.String(),
		members:  make([]member, 0, len(meta.Fields)),
	}

	for _, field := range meta.Fields {
		m := member{
			name:   field.Name,
			typ:    field.ReflectType,
			index:  field.Index,
			setter: -1,
		}

		// Promoted fields from embedded structs are reachable but ambiguous
		// as write targets; only direct members participate in the shape.
		if len(m.index) != 1 {
			continue
		}
		if typ.Field(m.index[0]).PkgPath != "" {
			continue
		}

		if method, ok := setterFor(ptr, field.Name); ok {
			m.setter = method.Index
			m.input = method.Func.Type().In(1)
		}

		s.members = append(s.members, m)
	}

	s.byName = make(map[string]*member, len(s.members))
	for i := range s.members {
		s.byName[s.members[i].name] = &s.members[i]
	}

	return s, nil
}

// setterFor looks up a Set<Field> method on the pointer type. A method only
// qualifies as a write entry point when it takes exactly one argument and
// returns nothing; anything else is treated as an unrelated method.
func setterFor(ptr reflect.Type, field string) (reflect.Method, bool) {
	method, ok := ptr.MethodByName("Set" + field)
	if !ok {
		return reflect.Method{}, false
	}

	ft := method.Func.Type()
	if ft.NumIn() != 2 || ft.NumOut() != 0 {
		return reflect.Method{}, false
	}

	return method, true
}

// typeNameOf labels T for signal payloads on paths that never touch the
// shape cache.
func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}

// resolve returns the named member or a shape resolution error.
func (s *shape) resolve(name string) (*member, error) {
	if m, ok := s.byName[name]; ok {
		return m, nil
	}
	return nil, newShapeError(ErrNoField, s.typeName, name)
}
