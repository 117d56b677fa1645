// Package cache stores rendered GraphML documents.
//
// Encoding is cheap, but the CLI and the server both see the same inputs
// over and over: the CLI when a build script re-exports an unchanged graph
// file, the server when clients poll the same graph. Documents are cached
// under a key derived from the input bytes and the export options (see
// [ArtifactKey]), so a hit is always byte-identical to a fresh render.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, used by the CLI
//   - [RedisCache]: a shared cache for the HTTP server
//   - [NullCache]: never stores anything, used with --no-cache and in tests
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiration.
//
// Get reports a miss with ok == false and a nil error. A ttl of zero stores
// the entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
