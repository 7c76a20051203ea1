package serializer

import "github.com/ValentinKolb/kvprobe/lib/store"

// IDocSerializer is the interface for all Document Serializers.
// Encoded documents are text, since the store keeps string values.
type IDocSerializer interface {
	// Serialize serializes a Document into its textual form
	// It returns the encoded string and an error if any
	Serialize(doc store.Document) (string, error)
	// Deserialize deserializes a string into a Document
	// It takes the encoded string and a pointer to a Document as parameters
	// It returns an error if the text is not a valid encoded document
	Deserialize(s string, doc *store.Document) error
}
