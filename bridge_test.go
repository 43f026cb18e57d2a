package amber_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/zoobzio/amber"
)

// testCodec is a simple JSON codec for testing without importing amber/json.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func TestBridge_RoundTrip(t *testing.T) {
	amber.Reset()

	bridge, err := amber.NewBridge[Order](&testCodec{})
	if err != nil {
		t.Fatalf("NewBridge() error: %v", err)
	}

	disc := 0.25
	w, _ := amber.New(Order{OrderID: 9, Customer: "acme", Discount: &disc, Items: []string{"a", "b"}})

	data, err := bridge.Encode(context.Background(), w)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	w2, err := bridge.Decode(context.Background(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	got := amber.Unwrap(w2)
	if got.OrderID != 9 || got.Customer != "acme" {
		t.Errorf("round trip = %+v, want OrderID=9 Customer=acme", got)
	}
	if got.Discount == nil || *got.Discount != 0.25 {
		t.Errorf("round trip Discount = %v, want 0.25", got.Discount)
	}
	if len(got.Items) != 2 {
		t.Errorf("round trip Items = %v, want 2 entries", got.Items)
	}
}

func TestBridge_RoundTripAbsentNullable(t *testing.T) {
	bridge, _ := amber.NewBridge[Order](&testCodec{})

	w, _ := amber.New(Order{OrderID: 1}) // Discount absent

	data, err := bridge.Encode(context.Background(), w)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	w2, err := bridge.Decode(context.Background(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if got := amber.Get(w2, func(o Order) *float64 { return o.Discount }); got != nil {
		t.Errorf("Discount = %v, want nil", got)
	}
}

func TestBridge_DecodedWrapperIsCopyOnWrite(t *testing.T) {
	bridge, _ := amber.NewBridge[Order](&testCodec{})

	data, _ := bridge.Encode(context.Background(), amber.Adopt(Order{OrderID: 1}))
	w, _ := bridge.Decode(context.Background(), data)

	w2, err := w.Set("OrderID", 2)
	if err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if got := amber.Get(w, func(o Order) int { return o.OrderID }); got != 1 {
		t.Errorf("decoded original Get(OrderID) = %d, want 1", got)
	}
	if got := amber.Get(w2, func(o Order) int { return o.OrderID }); got != 2 {
		t.Errorf("modified Get(OrderID) = %d, want 2", got)
	}
}

func TestBridge_DecodeInvalid(t *testing.T) {
	bridge, _ := amber.NewBridge[Order](&testCodec{})

	_, err := bridge.Decode(context.Background(), []byte("{not json"))
	if !errors.Is(err, amber.ErrUnmarshal) {
		t.Errorf("Decode() error = %v, want ErrUnmarshal", err)
	}
}

func TestBridge_NonStruct(t *testing.T) {
	_, err := amber.NewBridge[int](&testCodec{})
	if !errors.Is(err, amber.ErrNotStruct) {
		t.Errorf("NewBridge[int]() error = %v, want ErrNotStruct", err)
	}
}

func TestUse_Caching(t *testing.T) {
	amber.Reset()

	b1, err := amber.Use[Order](&testCodec{})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	b2, err := amber.Use[Order](&testCodec{})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if b1 != b2 {
		t.Error("Use() should return cached bridge")
	}
}

func TestUse_Reset(t *testing.T) {
	b1, _ := amber.Use[Order](&testCodec{})

	amber.Reset()

	b2, _ := amber.Use[Order](&testCodec{})
	if b1 == b2 {
		t.Error("Reset() should clear cache, new bridge expected")
	}
}
