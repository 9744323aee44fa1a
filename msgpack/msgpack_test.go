package msgpack

import (
	"bytes"
	"testing"

	"github.com/zoobzio/devkit"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `msgpack:"name"`
		Value int    `msgpack:"value"`
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

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshal_JSONTagFallback(t *testing.T) {
	c := New()

	type Tagged struct {
		Name string `json:"display_name"`
	}

	data, err := c.Marshal(Tagged{Name: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var generic map[string]any
	if err := c.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if generic["display_name"] != "x" {
		t.Errorf("decoded = %v, want key display_name", generic)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	c := New()
	m := map[string]int{"z": 1, "a": 2, "m": 3, "b": 4}

	first, err := c.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := c.Marshal(m)
		if !bytes.Equal(first, again) {
			t.Fatal("Marshal() output differs between calls")
		}
	}
}

func TestMarshalBinary(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if data[0] == '{' {
		t.Error("MessagePack output should be binary, not JSON")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("not msgpack"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestRegistered(t *testing.T) {
	c, err := devkit.DocumentCodec("msgpack")
	if err != nil {
		t.Fatalf("DocumentCodec() error: %v", err)
	}
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want application/msgpack", c.ContentType())
	}
}
