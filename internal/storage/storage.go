package storage

import (
	"context"
	"io"
)

// Package storage contains the blob gateway abstraction over an S3-compatible
// object store. Implementations must avoid local disk and rely on streaming I/O.

// StoreHints carries optional upload parameters. Size should be the exact byte
// count if known; ContentType and OriginalName are descriptive only.
type StoreHints struct {
	Size         int64
	ContentType  string
	Class        ResourceClass
	OriginalName string
}

// StoreResult is the outcome of a successful blob write. Both fields are
// always populated together; a partial result is never returned.
type StoreResult struct {
	StorageID  string
	StorageURL string
}

// RemoveOutcome distinguishes an actual removal from an already-absent object.
// Callers treat NotFound as success: removing twice is a no-op, not a failure.
type RemoveOutcome int

const (
	Removed RemoveOutcome = iota
	NotFound
)

// BlobStore is the gateway to the external object store.
type BlobStore interface {
	// Store uploads the content and returns the canonical handle plus its
	// resolved access URL, or an error — never a partial result.
	Store(ctx context.Context, r io.Reader, hints StoreHints) (StoreResult, error)
	// BuildAccessURL derives the access URL for a stored object. It performs no
	// network I/O and always returns an encrypted-transport URL.
	BuildAccessURL(storageID string, class ResourceClass, forceDownloadName string) string
	// Remove deletes an object. An already-absent object yields NotFound with a
	// nil error.
	Remove(ctx context.Context, storageID string, class ResourceClass) (RemoveOutcome, error)
}
