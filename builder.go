package amber

// Builder is a mutable staging handle over exactly one instance of T. Modify
// mutates the owned value in place, so several changes can be batched
// without a clone per change; ToImmutable clones one final time and freezes
// the result into a Wrapper.
//
// A Builder is not safe for concurrent mutation; it has no internal locking.
type Builder[T any] struct {
	value *T
}

// NewBuilder clones initial and returns a Builder owning the clone. Returns
// an error when T has no shape (T must be a struct type).
func NewBuilder[T any](initial T) (*Builder[T], error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	v := ops.clone(initial)
	return &Builder[T]{value: &v}, nil
}

// Modify runs mutate directly against the owned value and returns the same
// Builder for chaining. Side effects are visible to subsequent calls on the
// Builder.
func (b *Builder[T]) Modify(mutate func(*T)) *Builder[T] {
	mutate(b.value)
	return b
}

// ToImmutable clones the current value and returns a new Wrapper over the
// clone. Further Builder mutation cannot retroactively affect the Wrapper.
func (b *Builder[T]) ToImmutable() *Wrapper[T] {
	clone := cloneValue(*b.value)
	emitBuilderFrozen(typeNameOf[T]())
	return &Wrapper[T]{value: &clone}
}

// Inspect applies proj to the owned value and returns the result. Same read
// contract as Get: no copy is made.
func Inspect[T, R any](b *Builder[T], proj func(T) R) R {
	return proj(*b.value)
}
