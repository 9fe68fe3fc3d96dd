// Package media defines the ports for image normalization and blob storage
// consumed by the ticket workflows.
package media

import "context"

// Image is a normalized, re-encoded image ready for storage.
type Image struct {
	Data []byte
	// Name is derived from the original filename with the target format's
	// extension.
	Name string
}

// Normalizer re-encodes an uploaded image into the bounded-size storage
// format. Decode or encode failures return an image processing error.
type Normalizer interface {
	Normalize(data []byte, filename string) (*Image, error)
}

// BlobStore persists image blobs by name and deletes them by path.
type BlobStore interface {
	// Save stores data under a collision-free variant of name and returns
	// the storage path to keep on the owning record.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Delete removes a stored blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error
}
