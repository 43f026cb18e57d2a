// Package amber provides copy-on-write immutability for arbitrary struct
// types without hand-written immutable variants.
//
// Wrapping a value yields a read-only handle: the enclosed data is never
// mutated in place, and every logical mutation produces a new handle over
// an independently-owned shallow copy, leaving all prior handles untouched.
//
// # Handles
//
// Two handle types cover the two mutation styles:
//
//   - Wrapper: a read-only handle. Set and Modify clone the enclosed value,
//     apply the change to the clone, and return a new Wrapper. The original
//     is provably unaffected because the mutation target is always a
//     just-created clone.
//   - Builder: a mutable staging handle for batching several changes.
//     Modify mutates the owned value in place and returns the same Builder
//     for chaining; ToImmutable clones one final time and freezes the
//     result into a Wrapper.
//
// # Basic Usage
//
//	type Order struct {
//	    OrderID     int
//	    Customer    string
//	    Discount    *float64
//	    DiscountPct int
//	}
//
//	w, _ := amber.New(Order{})
//	w2, _ := w.Set("OrderID", 1)
//
//	amber.Get(w, func(o Order) int { return o.OrderID })  // 0
//	amber.Get(w2, func(o Order) int { return o.OrderID }) // 1
//
//	b := w2.ToBuilder()
//	b.Modify(func(o *Order) { o.Customer = "acme" }).
//	    Modify(func(o *Order) { o.OrderID = 6 })
//	w3 := b.ToImmutable()
//
// # Compiled Operations
//
// Per-type construct, clone, set-member, and field-enumeration operations
// are synthesized from the type's shape (its exported fields plus any
// Set<Field> methods) on first use and cached for the process lifetime.
// After the one-time warm-up a mutation is: clone, one compiled set, wrap.
//
// The cache is lock-free: concurrent first-use may build the same operation
// more than once, and any candidate may be published, as all candidates are
// pure functions of the shape. No caller ever blocks on another's build.
//
// # Custom Write Logic
//
// A method Set<Field> declared on *T is that field's write entry point.
// Set routes through it, so type-defined write invariants hold:
//
//	func (o *Order) SetDiscountPct(pct int) { o.DiscountPct = pct * 2 }
//
// Cloning never runs setters; it copies fields directly. This asymmetry is
// deliberate: a clone reproduces stored state, a set applies a write.
//
// # Clone Semantics
//
// Copies are shallow. Slice, map, and pointer fields share their targets
// with the source; duplicating nested mutable data is the caller's
// responsibility, typically by making the field itself a *Wrapper. Types
// can take over copying entirely by implementing Cloner.
//
// # Serialization Bridges
//
// A Bridge pairs a wrapped type with a Codec (JSON, XML, YAML, MessagePack
// implementations live in subpackages). Encode marshals the enclosed value
// directly; Decode unmarshals a fresh value and adopts it without a
// defensive clone, since the decoded value is exclusively owned:
//
//	bridge, _ := amber.Use[Order](json.New())
//	data, _ := bridge.Encode(ctx, w)
//	w2, _ := bridge.Decode(ctx, data)
//
// # Concurrency
//
// All operations are synchronous. A Wrapper is safe for concurrent reads
// and concurrent Set/Modify calls (each produces an independent clone). A
// single Builder is not safe for concurrent mutation; it has no internal
// locking.
package amber
