package amber

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// Bridge pairs a wrapped type with a Codec. Encode writes the enclosed value
// of a Wrapper through the codec; Decode reads a fresh value and adopts it.
// Neither path clones: encoding reads in place, and a decoded value is
// exclusively owned, so the defensive copy New performs would be wasted.
//
// Wire format is entirely owned by the codec; the bridge contributes only
// the enclosed-value access paths.
type Bridge[T any] struct {
	codec    Codec
	typeName string
}

// bridgeKey combines type and codec for cache lookup.
type bridgeKey struct {
	typ         reflect.Type
	contentType string
}

var bridgeCache sync.Map // bridgeKey -> *Bridge[T]

// NewBridge creates a Bridge for T over the given codec, compiling T's
// operations if this is the type's first use.
func NewBridge[T any](codec Codec) (*Bridge[T], error) {
	ops, err := opsFor[T]()
	if err != nil {
		return nil, err
	}

	b := &Bridge[T]{
		codec:    codec,
		typeName: ops.shape.typeName,
	}

	emitBridgeCreated(context.Background(), codec.ContentType(), b.typeName)
	return b, nil
}

// Use returns a cached bridge or builds a new one.
// The bridge is cached by type and codec content type.
func Use[T any](codec Codec) (*Bridge[T], error) {
	key := bridgeKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType()}

	if cached, ok := bridgeCache.Load(key); ok {
		return cached.(*Bridge[T]), nil
	}

	b, err := NewBridge[T](codec)
	if err != nil {
		return nil, err
	}

	published, _ := bridgeCache.LoadOrStore(key, b)
	return published.(*Bridge[T]), nil
}

// Encode marshals w's enclosed value.
func (b *Bridge[T]) Encode(ctx context.Context, w *Wrapper[T]) ([]byte, error) {
	start := time.Now()

	data, err := b.codec.Marshal(Unwrap(w))
	emitEncodeComplete(ctx, b.codec.ContentType(), b.typeName, len(data), time.Since(start), err)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}

	return data, nil
}

// Decode unmarshals data into a fresh T and wraps it without cloning.
func (b *Bridge[T]) Decode(ctx context.Context, data []byte) (*Wrapper[T], error) {
	start := time.Now()

	var obj T
	err := b.codec.Unmarshal(data, &obj)
	emitDecodeComplete(ctx, b.codec.ContentType(), b.typeName, len(data), time.Since(start), err)
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}

	return Adopt(obj), nil
}
