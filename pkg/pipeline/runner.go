package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/seedpacket/pkg/assets"
	"github.com/matzehuels/seedpacket/pkg/cache"
	"github.com/matzehuels/seedpacket/pkg/layout"
	"github.com/matzehuels/seedpacket/pkg/observability"
	"github.com/matzehuels/seedpacket/pkg/packet"
	"github.com/matzehuels/seedpacket/pkg/render"
)

// keyTypeArtifact labels artifact cache events for hooks.
const keyTypeArtifact = "artifact"

// imageMissing stands in for the fingerprint of an image that cannot be
// stat'ed, so the skipped render is cached separately from a later one that
// finds the file.
const imageMissing = "missing"

// artifact is the cached form of a rendered packet. The image flag travels
// with the PDF so a cache hit reports the same outcome as the render did.
type artifact struct {
	PDF           []byte `json:"pdf"`
	ImageEmbedded bool   `json:"image_embedded"`
}

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for its collaborators: it doesn't store
// results, and multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Assets assets.Store // nil disables background images
	Logger *log.Logger

	// TTL is how long rendered PDFs stay cached; zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, store assets.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Assets: store,
		Logger: logger,
	}
}

// Execute validates the input, computes the layout and renders the PDF,
// consulting the artifact cache unless opts.Refresh is set.
//
// Validation errors are returned unchanged so callers can inspect their code.
// Cache failures are logged and otherwise ignored.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	p, err := opts.Input.Packet(opts.Now)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:     uuid.NewString(),
		Packet: p,
	}
	logger := opts.Logger.With("id", result.ID)

	layoutStart := time.Now()
	result.Geometry = layout.Compute()
	result.Stats.LayoutTime = time.Since(layoutStart)

	key, err := r.artifactKey(ctx, p, &opts)
	if err != nil {
		return nil, err
	}

	if !opts.Refresh {
		if a, ok := r.cached(ctx, key, logger); ok {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			result.PDF = a.PDF
			result.ImageEmbedded = a.ImageEmbedded
			result.CacheHit = true
			result.Stats.Size = len(a.PDF)
			logger.Debug("served packet from cache", "seed", p.SeedName, "bytes", len(a.PDF))
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	}

	renderStart := time.Now()
	doc, err := render.Render(ctx, result.Geometry, p, r.renderOptions(p, &opts, logger)...)
	if err != nil {
		return nil, err
	}
	result.PDF = doc.PDF
	result.ImageEmbedded = doc.ImageEmbedded
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Size = len(doc.PDF)

	logger.Info("rendered packet",
		"seed", p.SeedName,
		"image", doc.ImageEmbedded,
		"bytes", result.Stats.Size,
		"duration", result.Stats.RenderTime)

	r.store(ctx, key, artifact{PDF: doc.PDF, ImageEmbedded: doc.ImageEmbedded}, logger)
	return result, nil
}

// cached loads the artifact for key. Lookup failures and unreadable entries
// count as misses.
func (r *Runner) cached(ctx context.Context, key string, logger *log.Logger) (artifact, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return artifact{}, false
	}
	if !hit {
		return artifact{}, false
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil || len(a.PDF) == 0 {
		logger.Warn("discarding unreadable cache entry", "key", key, "err", err)
		_ = r.Cache.Delete(ctx, key)
		return artifact{}, false
	}
	return a, true
}

func (r *Runner) store(ctx context.Context, key string, a artifact, logger *log.Logger) {
	data, err := json.Marshal(a)
	if err != nil {
		logger.Warn("encode cache entry", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		logger.Warn("cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
}

// Images lists the background images available to packets.
func (r *Runner) Images(ctx context.Context) ([]assets.Info, error) {
	if r.Assets == nil {
		return nil, nil
	}
	return r.Assets.List(ctx)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) artifactKey(ctx context.Context, p packet.Packet, opts *Options) (string, error) {
	packetHash, err := cache.HashJSON(p)
	if err != nil {
		return "", err
	}
	return r.Keyer.ArtifactKey(packetHash, opts.ArtifactKeyOpts(r.imageFingerprint(ctx, p, opts.Logger))), nil
}

func (r *Runner) imageFingerprint(ctx context.Context, p packet.Packet, logger *log.Logger) string {
	if !p.HasImage() {
		return ""
	}
	if r.Assets == nil {
		return imageMissing
	}
	info, err := r.Assets.Stat(ctx, p.BackgroundImage)
	if err != nil {
		logger.Debug("background image unavailable", "image", p.BackgroundImage, "err", err)
		return imageMissing
	}
	return info.Fingerprint()
}

// renderOptions fixes the document dates to the packet date so identical
// packets render to identical bytes.
func (r *Runner) renderOptions(p packet.Packet, opts *Options, logger *log.Logger) []render.Option {
	ro := []render.Option{
		render.WithLogger(logger),
		render.WithCompression(!opts.Uncompressed),
		render.WithCreationDate(p.Date),
	}
	if r.Assets != nil {
		ro = append(ro, render.WithAssets(r.Assets))
	}
	return ro
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
