package directory

import "context"

// ObjectStorage abstracts the blob store holding user profile images.
// Implementations live in infrastructure/storage.
type ObjectStorage interface {
	// Upload writes an object and makes it readable at ObjectURL(key).
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// DeleteObject removes an object. Deleting a missing key is not an error.
	DeleteObject(ctx context.Context, key string) error

	// ObjectExists reports whether an object is present.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// ObjectURL returns the public URL for a stored object key.
	ObjectURL(key string) string
}
