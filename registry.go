package amber

import (
	"reflect"
	"sync"
)

// accessorKey identifies one compiled set-member operation. The member name
// uniquely identifies the member within its type, so the value side of the
// assignment is resolved at call time by the compiled operation itself.
type accessorKey struct {
	typ    reflect.Type
	member string
}

// Per-type operation caches. Slots are populated lazily on first use and
// never change afterward. Lookup-or-build is lock-free: concurrent first-use
// on the same key may each build a candidate, and whichever publish lands
// first wins. All candidates are pure functions of the shape, so losers only
// waste one compile, never corrupt state. No caller blocks on another's
// build.
var (
	opsCache    sync.Map // reflect.Type -> *typeOps[T]
	setterCache sync.Map // accessorKey -> setFn[T]
)

// opsFor returns the cached operation set for T, compiling it on first use.
func opsFor[T any]() (*typeOps[T], error) {
	typ := reflect.TypeFor[T]()

	if cached, ok := opsCache.Load(typ); ok {
		return cached.(*typeOps[T]), nil
	}

	ops, err := compileOps[T]()
	if err != nil {
		return nil, err
	}

	published, _ := opsCache.LoadOrStore(typ, ops)
	return published.(*typeOps[T]), nil
}

// setterOpFor returns the cached set-member operation for T's named member,
// compiling it on first use. Resolution failures are not cached; they are
// programmer errors surfaced at every call site that repeats them.
func setterOpFor[T any](member string) (setFn[T], error) {
	key := accessorKey{typ: reflect.TypeFor[T](), member: member}

	if cached, ok := setterCache.Load(key); ok {
		return cached.(setFn[T]), nil
	}

	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	set, err := compileSet[T](ops.shape, member)
	if err != nil {
		return nil, err
	}

	published, _ := setterCache.LoadOrStore(key, set)
	return published.(setFn[T]), nil
}

// Reset clears the compiled operation and bridge caches.
// This is primarily useful for test isolation.
func Reset() {
	opsCache.Clear()
	setterCache.Clear()
	bridgeCache.Clear()
}
