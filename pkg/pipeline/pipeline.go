// Package pipeline runs the validate → layout → render pipeline for seed
// packets.
//
// The CLI and the HTTP server both go through a [Runner], so defaults,
// caching and logging behave the same everywhere.
//
// # Stages
//
//  1. Validate: convert the raw [packet.Input] into a [packet.Packet]
//  2. Layout: compute the fixed [layout.Geometry]
//  3. Render: draw the PDF, or serve it from the artifact cache
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, assets.NewDirStore("images"), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input: packet.Input{SeedName: "Tomato", Date: "2024-05-01"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(render.Filename, result.PDF, 0o644)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seedpacket/pkg/cache"
	"github.com/matzehuels/seedpacket/pkg/layout"
	"github.com/matzehuels/seedpacket/pkg/packet"
)

// Options contains everything needed to produce one packet.
// This struct supports JSON serialization for API requests.
type Options struct {
	Input packet.Input `json:"packet"`

	// Uncompressed disables PDF stream compression.
	Uncompressed bool `json:"uncompressed,omitempty"`

	// Refresh skips the cache lookup and always renders.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Now    time.Time   `json:"-"` // clock for the default date; zero means time.Now()
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and response headers.
	ID string

	Packet   packet.Packet
	Geometry layout.Geometry
	PDF      []byte

	// ImageEmbedded reports whether the background image made it into the
	// PDF. It is only known for fresh renders and is false on cache hits.
	ImageEmbedded bool

	// CacheHit is true when PDF came from the artifact cache.
	CacheHit bool

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	Size       int
}

// SetDefaults fills in the clock and logger.
func (o *Options) SetDefaults() {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for a packet rendered with o.
// imageFingerprint is "" when the packet has no background image.
func (o *Options) ArtifactKeyOpts(imageFingerprint string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		LayoutVersion: layout.Version,
		Image:         imageFingerprint,
		Compress:      !o.Uncompressed,
	}
}
