package serializer

import (
	"encoding/json"
	"errors"

	"github.com/ValentinKolb/kvprobe/lib/store"
)

var (
	// ErrNilDocument is returned when serializing a nil Document
	ErrNilDocument = errors.New("cannot serialize a nil document")
	// ErrNotAnObject is returned when the decoded text is valid JSON but not an object
	ErrNotAnObject = errors.New("stored value is not a JSON object")
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() IDocSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IDocSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IDocSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(doc store.Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (j jsonSerializerImpl) Deserialize(s string, doc *store.Document) error {
	var out store.Document
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return err
	}
	// "null" unmarshals into a nil map without error
	if out == nil {
		return ErrNotAnObject
	}
	*doc = out
	return nil
}
