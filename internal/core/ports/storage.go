package ports

import "context"

// GeometryStore writes uploaded geometry blobs to object storage.
type GeometryStore interface {
	// Put stores data under key and returns its public URL. The write must
	// fail with domain.ErrStorageConflict when the key already exists;
	// existing objects are never overwritten.
	Put(ctx context.Context, key string, data []byte) (string, error)
}
