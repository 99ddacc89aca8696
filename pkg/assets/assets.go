// Package assets resolves background images for seed packets.
//
// Images live in a single trusted directory. References are plain filenames;
// anything that could escape the directory is rejected by validation and,
// independently, by opening files through an [os.Root].
//
// [Store.Open] returns image bytes ready for embedding in a PDF: JPEG files
// are passed through unchanged, every other supported format (PNG, GIF, BMP,
// TIFF, WebP) is decoded, flattened onto white and re-encoded as an 8-bit
// PNG. Images larger than the configured maximum dimension are downscaled
// first.
package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Image types understood by the PDF writer.
const (
	TypePNG = "PNG"
	TypeJPG = "JPG"
)

// Store resolves background image references.
type Store interface {
	// Open loads and prepares the named image.
	Open(ctx context.Context, ref string) (*Image, error)

	// Stat returns metadata for the named image without decoding it.
	Stat(ctx context.Context, ref string) (Info, error)

	// List returns all supported images sorted by name.
	List(ctx context.Context) ([]Info, error)
}

// Image is a decoded background image ready for embedding.
type Image struct {
	Name   string
	Type   string // TypePNG or TypeJPG
	Data   []byte
	Width  int
	Height int
}

// Info describes an image file in a store.
type Info struct {
	Name    string    `json:"name" yaml:"name"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"modTime" yaml:"mod_time"`
}

// Fingerprint identifies the current content of the file for cache keys.
// It changes whenever the file is replaced or modified.
func (i Info) Fingerprint() string {
	return fmt.Sprintf("%s:%d:%d", i.Name, i.Size, i.ModTime.UnixNano())
}

// supportedExt lists the file extensions offered by List.
var supportedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupported reports whether name has an image extension the store can decode.
func IsSupported(name string) bool {
	return supportedExt[strings.ToLower(filepath.Ext(name))]
}
