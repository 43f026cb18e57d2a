package amber

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for amber events.
var (
	SignalShapeCompiled  = capitan.NewSignal("amber.shape.compiled", "Per-type operations synthesized")
	SignalWrapperCreated = capitan.NewSignal("amber.wrapper.created", "Wrapper instantiated")
	SignalWrapperMutated = capitan.NewSignal("amber.wrapper.mutated", "Copy-on-write mutation produced a new wrapper")
	SignalBuilderFrozen  = capitan.NewSignal("amber.builder.frozen", "Builder froze into a wrapper")
	SignalBridgeCreated  = capitan.NewSignal("amber.bridge.created", "Serialization bridge instantiated")
	SignalEncodeComplete = capitan.NewSignal("amber.encode.complete", "Bridge encode finished")
	SignalDecodeComplete = capitan.NewSignal("amber.decode.complete", "Bridge decode finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyMember      = capitan.NewStringKey("member")
	KeyMemberCount = capitan.NewIntKey("member_count")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitShapeCompiled emits an event when a type's operations are synthesized.
func emitShapeCompiled(typeName string, members int) {
	capitan.Emit(context.Background(), SignalShapeCompiled,
		KeyTypeName.Field(typeName),
		KeyMemberCount.Field(members),
	)
}

// emitWrapperCreated emits an event when a wrapper is created.
func emitWrapperCreated(typeName string) {
	capitan.Emit(context.Background(), SignalWrapperCreated,
		KeyTypeName.Field(typeName),
	)
}

// emitWrapperMutated emits an event when a mutation produces a new wrapper.
// member is empty for callback-form mutations.
func emitWrapperMutated(typeName, member string) {
	capitan.Emit(context.Background(), SignalWrapperMutated,
		KeyTypeName.Field(typeName),
		KeyMember.Field(member),
	)
}

// emitBuilderFrozen emits an event when a builder freezes into a wrapper.
func emitBuilderFrozen(typeName string) {
	capitan.Emit(context.Background(), SignalBuilderFrozen,
		KeyTypeName.Field(typeName),
	)
}

// emitBridgeCreated emits an event when a bridge is created.
func emitBridgeCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalBridgeCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when a bridge encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeComplete emits an event when a bridge decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
