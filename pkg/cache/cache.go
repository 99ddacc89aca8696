// Package cache stores rendered seed packets so identical requests are
// served without rendering again.
//
// Three backends implement [Cache]:
//   - [NullCache] never stores anything (caching disabled)
//   - [FileCache] keeps entries as JSON files under a directory, for the CLI
//   - [RedisCache] shares entries between server instances
//
// Keys come from a [Keyer]. [DefaultKeyer] derives artifact keys from a hash
// of the packet plus everything else that changes the output bytes (layout
// version, background image fingerprint, compression). [ScopedKeyer] adds a
// namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered PDF stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered PDF.
	ArtifactKey(packetHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the inputs besides the packet that affect the PDF bytes.
type ArtifactKeyOpts struct {
	LayoutVersion string `json:"layout_version"`
	Image         string `json:"image,omitempty"` // image fingerprint, "" when none
	Compress      bool   `json:"compress"`
}

// DefaultKeyer generates unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the packet hash and opts.
func (DefaultKeyer) ArtifactKey(packetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", packetHash, opts)
}
