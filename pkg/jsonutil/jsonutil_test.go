package jsonutil

import (
	"strings"
	"testing"
)

type payload struct {
	ID    string   `json:"id"`
	Score *float64 `json:"score"`
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	score := 0.5
	in := payload{ID: "first-paint", Score: &score}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out payload
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || out.Score == nil || *out.Score != score {
		t.Errorf("round trip = %+v", out)
	}
}

func TestUnmarshal_NullPointer(t *testing.T) {
	var out payload
	if err := Unmarshal([]byte(`{"id":"x","score":null}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Score != nil {
		t.Error("null score should decode to nil pointer")
	}
}

func TestUnmarshalRead(t *testing.T) {
	var out payload
	if err := UnmarshalRead(strings.NewReader(`{"id":"r"}`), &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.ID != "r" {
		t.Errorf("id = %q", out.ID)
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(payload{ID: "x"}, "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Error("indented output should be multi-line")
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"a":1}`)) {
		t.Error("valid JSON reported invalid")
	}
	if Valid([]byte(`{"a":`)) {
		t.Error("truncated JSON reported valid")
	}
}
