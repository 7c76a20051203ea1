// Package serializer converts store.Document values to and from the textual
// form kept in the remote store.
//
// The only implementation is JSON (NewJSONSerializer). Documents are encoded
// as a whole, so writing a document replaces every field of the previous one.
// Decoding follows encoding/json: numbers come back as float64, nested objects
// as map[string]any and arrays as []any. A stored value that is valid JSON but
// not an object is rejected with ErrNotAnObject.
//
// Thread Safety:
//
//	Serializers are stateless and safe for concurrent use.
package serializer
