// Package store defines the DocumentStore abstraction the application
// persists through: per-collection JSON-like documents with ordered listing
// and an atomic counter primitive. Implementations live in subpackages.
package store

import "context"

// Document is one stored entity: the store-assigned (or caller-assigned)
// opaque id plus the document body.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is the document-store contract consumed by the directory and catalog
// services. Single-document operations are atomic; cross-document sequences
// are not, which is why counters are a store primitive rather than a
// read-modify-write at the caller.
type Store interface {
	// Create persists data under a store-assigned id and returns that id.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)

	// Put persists data under a caller-assigned id, replacing any previous
	// document with that id.
	Put(ctx context.Context, collection, id string, data map[string]any) error

	// Get returns the document body, or common.ErrNotFound.
	Get(ctx context.Context, collection, id string) (map[string]any, error)

	// Update merges partial into an existing document. Returns
	// common.ErrNotFound if the document does not exist; it never creates one.
	Update(ctx context.Context, collection, id string, partial map[string]any) error

	// Delete removes a document, or returns common.ErrNotFound.
	Delete(ctx context.Context, collection, id string) error

	// List returns every document in the collection ordered by the given
	// field. An empty collection yields an empty slice, not an error.
	List(ctx context.Context, collection, orderField string, asc bool) ([]Document, error)

	// NextValue atomically increments the named counter and returns the new
	// value. The first call on a fresh counter returns 1. Counter values are
	// never reissued, regardless of concurrent callers.
	NextValue(ctx context.Context, counter string) (int64, error)
}

// StringField reads a string-typed field from a document body.
func StringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// Int64Field reads a numeric field as int64. JSON decoding turns numbers into
// float64, so both forms are accepted.
func Int64Field(data map[string]any, key string) int64 {
	switch v := data[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Float64Field reads a numeric field as float64.
func Float64Field(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
