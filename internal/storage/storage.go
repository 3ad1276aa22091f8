// Package storage abstracts object storage for generated documents.
//
// Two implementations are provided:
// - LocalStorage: filesystem-backed, for development
// - R2Storage: Cloudflare R2 (S3-compatible), for production
//
// Rendered PDFs and assembled HTML are written under per-user prefixes so
// the cache can list and expire them without a database.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Storage is the object store contract. All methods honor context
// cancellation; missing objects surface as ErrNotFound.
type Storage interface {
	// Put stores data at key. Fails with ErrKeyExists when the key is
	// taken and opts.Overwrite is off.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get returns the object stream (caller closes) and its metadata.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at key. Idempotent.
	Delete(ctx context.Context, key string) error

	// List returns metadata for every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// URL returns an access URL for the object; private stores issue a
	// presigned URL valid for expires.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists reports whether an object is stored at key.
	Exists(ctx context.Context, key string) (bool, error)
}

// =============================================================================
// Data Types
// =============================================================================

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is the MIME type; auto-detected from the key when empty.
	ContentType string

	// MaxSize caps the object size in bytes; 0 means unlimited. Oversized
	// writes fail with ErrTooLarge.
	MaxSize int64

	// Overwrite permits replacing an existing object at the same key.
	Overwrite bool

	// Public marks the object world-readable where the backend supports it.
	Public bool
}

// ObjectInfo is stored-object metadata.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// =============================================================================
// Configuration Types
// =============================================================================

// LocalConfig configures filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./storage".
	BasePath string

	// BaseURL is the public prefix for serving files,
	// e.g. "http://localhost:8080/files".
	BaseURL string
}

// R2Config configures Cloudflare R2 storage.
type R2Config struct {
	// AccountID is the Cloudflare account ID; the endpoint is derived
	// from it.
	AccountID string

	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// PublicURL is an optional custom-domain prefix for the bucket. When
	// empty every access goes through presigned URLs.
	PublicURL string

	// Region is passed to the SDK; R2 accepts "auto".
	Region string
}

// Provider identifiers for configuration.
const (
	ProviderLocal = "local"
	ProviderR2    = "r2"
)

// =============================================================================
// Key Helpers
// =============================================================================

// DocumentPrefix is the logical directory holding one document's rendered
// artifacts: {userID}/{documentID}/.
func DocumentPrefix(userID, documentID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", userID, documentID)
}

// DocumentKey builds the storage key for one rendered artifact beneath
// its document prefix, e.g. "…/charter_1a2b3c4d.pdf".
func DocumentKey(userID, documentID uuid.UUID, filename string) string {
	return DocumentPrefix(userID, documentID) + filename
}
