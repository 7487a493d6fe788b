package filestorage

import (
	"context"
	"io"
)

// ObjectStorage is the slice of the object store the upload workflow needs:
// store a binary under a key, resolve its durable public URL, and best-effort
// remove it again.
type ObjectStorage interface {
	// Upload stores the object and returns nothing; the key is chosen by the
	// caller and must be collision-resistant.
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error

	// PublicURL returns the durable public URL for a stored object.
	PublicURL(bucket, key string) string

	// Remove deletes stored objects. Callers treat failure as non-fatal.
	Remove(ctx context.Context, bucket string, keys ...string) error
}
