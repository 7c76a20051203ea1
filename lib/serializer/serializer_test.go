package serializer

import (
	"errors"
	"testing"

	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/google/go-cmp/cmp"
)

// testDocuments creates a set of documents covering all JSON value kinds
func testDocuments() []store.Document {
	return []store.Document{
		// Empty document
		{},

		// Flat strings
		{"hello": "world"},

		// Mixed scalars
		{"count": 3.0, "ratio": 0.25, "enabled": true, "missing": nil},

		// Nested values
		{
			"_id":     map[string]any{"$oid": "507f1f77bcf86cd799439011"},
			"tags":    []any{"a", "b", 1.0},
			"profile": map[string]any{"colors": map[string]any{"primary": "#0066CC"}},
		},
	}
}

// TestSerializerRoundTrip tests that documents survive serialize and deserialize
func TestSerializerRoundTrip(t *testing.T) {
	s := NewJSONSerializer()

	for i, doc := range testDocuments() {
		text, err := s.Serialize(doc)
		if err != nil {
			t.Errorf("Failed to serialize document %d: %v", i, err)
			continue
		}

		var result store.Document
		if err := s.Deserialize(text, &result); err != nil {
			t.Errorf("Failed to deserialize document %d: %v", i, err)
			continue
		}

		if diff := cmp.Diff(doc, result); diff != "" {
			t.Errorf("Document %d doesn't match after round trip (-want +got):\n%s", i, diff)
		}
	}
}

// TestSerializeFormat tests that the encoding is compact JSON text
func TestSerializeFormat(t *testing.T) {
	text, err := NewJSONSerializer().Serialize(store.Document{"hello": "world"})
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"hello":"world"}` {
		t.Errorf("Serialize() = %s", text)
	}
}

// TestSerializeErrors tests values that cannot be encoded
func TestSerializeErrors(t *testing.T) {
	s := NewJSONSerializer()

	if _, err := s.Serialize(nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Serialize(nil) error = %v, want %v", err, ErrNilDocument)
	}
	if _, err := s.Serialize(store.Document{"ch": make(chan int)}); err == nil {
		t.Error("Serialize() of a channel should fail")
	}
}

// TestDeserializeErrors tests text that is not an encoded document
func TestDeserializeErrors(t *testing.T) {
	s := NewJSONSerializer()

	for _, text := range []string{"", "{", "[1]", `"str"`, "1"} {
		var doc store.Document
		if err := s.Deserialize(text, &doc); err == nil {
			t.Errorf("Deserialize(%q) should fail", text)
		}
	}

	doc := store.Document{"keep": "me"}
	if err := s.Deserialize("null", &doc); !errors.Is(err, ErrNotAnObject) {
		t.Errorf("Deserialize(null) error = %v, want %v", err, ErrNotAnObject)
	}
	if doc["keep"] != "me" {
		t.Error("a failed Deserialize must not modify the target")
	}
}
