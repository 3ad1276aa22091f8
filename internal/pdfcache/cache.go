// Package pdfcache caches rendered PDFs in object storage, keyed by a
// content hash so any change to the document or its options misses
// cleanly. The cache is strictly best effort: every failure degrades to
// a miss and the service behaves identically with caching disabled.
package pdfcache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/storage"
)

const defaultTTL = 24 * time.Hour

// Config tunes the cache.
type Config struct {
	// Enabled turns the cache on. A disabled cache misses on every Get
	// and drops every Put.
	Enabled bool

	// TTL is how long an entry stays valid after it was written.
	TTL time.Duration
}

// Cache stores rendered PDFs beneath per-document storage prefixes.
type Cache struct {
	store  storage.Storage
	logger *slog.Logger
	cfg    Config
}

// New builds a cache over the given store.
func New(store storage.Storage, cfg Config, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	return &Cache{store: store, logger: logger, cfg: cfg}
}

// Key builds the storage key for a render request:
// {userID}/{documentID}/{type}_{hash8}.pdf. The hash covers the raw
// content and every option that affects the output, so stale entries can
// never be served for changed input.
func Key(userID, documentID uuid.UUID, docType domain.DocumentType, content any, opts domain.PDFOptions) string {
	filename := fmt.Sprintf("%s_%s.pdf", docType, contentHash(content, opts))
	return storage.DocumentKey(userID, documentID, filename)
}

// contentHash returns the first 8 hex chars of the SHA-256 of the
// canonical JSON of {content, options}. Go's encoder sorts map keys, so
// equivalent inputs hash identically.
func contentHash(content any, opts domain.PDFOptions) string {
	payload, err := json.Marshal(struct {
		Content any               `json:"content"`
		Options domain.PDFOptions `json:"options"`
	}{Content: content, Options: opts})
	if err != nil {
		// Unserializable content cannot be cached deterministically;
		// a fixed marker keeps the key well formed.
		return "unhashed"
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])[:8]
}

// typePrefix is the logical-key prefix shared by all cache entries for
// one document type of one document, regardless of content hash.
func typePrefix(key string) string {
	if i := strings.LastIndex(key, "_"); i > 0 {
		return key[:i+1]
	}
	return key
}

// Get returns the cached PDF for key, or nil on any miss: absence,
// expiry, or storage failure. Expired entries are deleted when detected.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if !c.cfg.Enabled {
		return nil
	}

	body, info, err := c.store.Get(ctx, key)
	if err != nil {
		if !storage.IsNotFound(err) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return nil
	}
	defer body.Close()

	if age := time.Since(info.LastModified); age > c.cfg.TTL {
		c.logger.Debug("cache entry expired", "key", key, "age", age)
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("expired cache entry delete failed", "key", key, "error", err)
		}
		return nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return nil
	}

	c.logger.Debug("cache hit", "key", key, "bytes", len(data))
	return data
}

// Put stores a rendered PDF at key, first deleting any entries for the
// same document type so superseded renders do not accumulate. Failures
// are logged and swallowed.
func (c *Cache) Put(ctx context.Context, key string, pdf []byte) {
	if !c.cfg.Enabled || len(pdf) == 0 {
		return
	}

	prefix := typePrefix(key)
	if stale, err := c.store.List(ctx, prefix); err != nil {
		c.logger.Warn("cache prefix listing failed", "prefix", prefix, "error", err)
	} else {
		for _, obj := range stale {
			if obj.Key == key {
				continue
			}
			if err := c.store.Delete(ctx, obj.Key); err != nil {
				c.logger.Warn("superseded cache entry delete failed", "key", obj.Key, "error", err)
			}
		}
	}

	err := c.store.Put(ctx, key, bytes.NewReader(pdf), storage.PutOptions{
		ContentType: storage.ContentTypePDF,
		Overwrite:   true,
	})
	if err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	c.logger.Debug("cache write", "key", key, "bytes", len(pdf))
}

// Invalidate removes every cached artifact for one document.
func (c *Cache) Invalidate(ctx context.Context, userID, documentID uuid.UUID) {
	if !c.cfg.Enabled {
		return
	}
	prefix := storage.DocumentPrefix(userID, documentID)
	entries, err := c.store.List(ctx, prefix)
	if err != nil {
		c.logger.Warn("cache invalidation listing failed", "prefix", prefix, "error", err)
		return
	}
	for _, obj := range entries {
		if err := c.store.Delete(ctx, obj.Key); err != nil {
			c.logger.Warn("cache invalidation delete failed", "key", obj.Key, "error", err)
		}
	}
}
