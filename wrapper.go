package amber

// Wrapper is a read-only handle over exactly one instance of T. The enclosed
// value is never mutated in place: Set and Modify clone it, change the
// clone, and return a new Wrapper. Two Wrappers never share an enclosed
// instance.
//
// A Wrapper is safe for concurrent reads and concurrent Set/Modify calls.
type Wrapper[T any] struct {
	value *T
}

// New clones initial and wraps the clone. The caller's value remains usable
// and independent afterward. Returns an error when T has no shape (T must be
// a struct type).
func New[T any](initial T) (*Wrapper[T], error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	v := ops.clone(initial)
	emitWrapperCreated(ops.shape.typeName)
	return &Wrapper[T]{value: &v}, nil
}

// Adopt wraps v without cloning it. This is the construction path for
// serialization bridges and other callers that own v exclusively, such as a
// freshly decoded value; going through New would add a spurious clone.
//
// The caller must not retain access to v's reference members. Prefer New
// unless exclusive ownership is certain.
func Adopt[T any](v T) *Wrapper[T] {
	return &Wrapper[T]{value: &v}
}

// Get applies proj to the enclosed value and returns the result. No copy is
// made for reads: when proj returns a reference member (slice, map,
// pointer), the caller holds a reference to live internal data.
//
// Get is a package function because Go methods cannot introduce the result
// type parameter.
func Get[T, R any](w *Wrapper[T], proj func(T) R) R {
	return proj(*w.value)
}

// Unwrap returns the enclosed value. Bridges use it for write access without
// a copy cycle; the read contract is the same as Get's.
func Unwrap[T any](w *Wrapper[T]) T {
	return *w.value
}

// Set returns a new Wrapper whose enclosed value has the named member set to
// value, converted to the member's declared type. Members with custom write
// logic (a Set<Field> method on *T) are assigned through it.
//
// The receiver is unaffected: the compiled set operation runs against a
// fresh clone, and a failed Set publishes nothing.
func (w *Wrapper[T]) Set(member string, value any) (*Wrapper[T], error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	set, err := setterOpFor[T](member)
	if err != nil {
		return nil, err
	}

	clone := ops.clone(*w.value)
	if err := set(&clone, value); err != nil {
		return nil, err
	}

	emitWrapperMutated(ops.shape.typeName, member)
	return &Wrapper[T]{value: &clone}, nil
}

// Modify clones the enclosed value, runs mutate against the clone, and
// returns a new Wrapper over the result. The receiver is unaffected.
func (w *Wrapper[T]) Modify(mutate func(*T)) *Wrapper[T] {
	clone := cloneValue(*w.value)
	mutate(&clone)

	emitWrapperMutated(typeNameOf[T](), "")
	return &Wrapper[T]{value: &clone}
}

// ToBuilder clones the enclosed value and returns a Builder owning the
// clone. Builder mutations cannot reach the Wrapper.
func (w *Wrapper[T]) ToBuilder() *Builder[T] {
	clone := cloneValue(*w.value)
	return &Builder[T]{value: &clone}
}

// Fields enumerates the enclosed value's members as (name, value) pairs in
// declaration order.
func Fields[T any](w *Wrapper[T]) ([]Field, error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}
	return ops.fields(*w.value), nil
}

// FromFields constructs a default T, assigns each pair to its member, and
// wraps the result without a further clone. Writes bypass custom setters,
// the same way clone does: pairs restore stored state, they do not apply
// writes.
func FromFields[T any](fields []Field) (*Wrapper[T], error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	v := ops.construct()
	if err := ops.apply(&v, fields); err != nil {
		return nil, err
	}

	return &Wrapper[T]{value: &v}, nil
}
