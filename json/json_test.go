package json

import (
	"context"
	"testing"

	"github.com/zoobzio/amber"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name || restored.Value != original.Value {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("invalid json"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

type record struct {
	ID   int     `json:"id"`
	Note *string `json:"note,omitempty"`
}

func TestBridgeRoundTrip(t *testing.T) {
	bridge, err := amber.NewBridge[record](New())
	if err != nil {
		t.Fatalf("NewBridge() error: %v", err)
	}

	w, _ := amber.New(record{ID: 7}) // Note absent

	data, err := bridge.Encode(context.Background(), w)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	w2, err := bridge.Decode(context.Background(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	got := amber.Unwrap(w2)
	if got.ID != 7 {
		t.Errorf("round trip ID = %d, want 7", got.ID)
	}
	if got.Note != nil {
		t.Errorf("round trip Note = %v, want nil", got.Note)
	}
}
