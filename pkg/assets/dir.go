package assets

import (
	"bytes"
	"context"
	stderrors "errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/seedpacket/pkg/errors"
)

const (
	// DefaultMaxDimension bounds the longest side of an embedded image in
	// pixels. 2400 px covers the 3 in front panel at 600 dpi.
	DefaultMaxDimension = 2400

	// maxFileSize rejects files that are unreasonably large to embed.
	maxFileSize = 32 << 20
)

// DirStore serves images from a directory on disk.
// It is safe for concurrent use; every call opens its own root handle.
type DirStore struct {
	dir          string
	maxDimension int
}

// DirOption configures a DirStore.
type DirOption func(*DirStore)

// WithMaxDimension sets the longest side, in pixels, above which images are
// downscaled. Values <= 0 disable downscaling.
func WithMaxDimension(px int) DirOption {
	return func(s *DirStore) { s.maxDimension = px }
}

// NewDirStore creates a store rooted at dir. The directory does not have to
// exist yet; lookups in a missing directory report IMAGE_NOT_FOUND.
func NewDirStore(dir string, opts ...DirOption) *DirStore {
	s := &DirStore{dir: dir, maxDimension: DefaultMaxDimension}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the root directory of the store.
func (s *DirStore) Dir() string { return s.dir }

// Open loads ref and prepares it for embedding.
func (s *DirStore) Open(ctx context.Context, ref string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.read(ref)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageDecode, err, "decode %s", ref)
	}

	if format == "jpeg" && s.fits(cfg.Width, cfg.Height) {
		return &Image{Name: ref, Type: TypeJPG, Data: data, Width: cfg.Width, Height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageDecode, err, "decode %s", ref)
	}
	return s.normalize(ref, img)
}

// Stat returns file metadata for ref.
func (s *DirStore) Stat(ctx context.Context, ref string) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	if err := errors.ValidateImageRef(ref); err != nil {
		return Info{}, err
	}
	root, err := s.openRoot()
	if err != nil {
		return Info{}, err
	}
	defer root.Close()

	fi, err := root.Stat(ref)
	if err != nil {
		return Info{}, notFound(ref, err)
	}
	if fi.IsDir() {
		return Info{}, errors.New(errors.ErrCodeImageNotFound, "image %s is a directory", ref)
	}
	return Info{Name: ref, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// List returns every supported, non-hidden image file in the directory.
// A missing directory yields an empty list.
func (s *DirStore) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root, err := os.OpenRoot(s.dir)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open image directory")
	}
	defer root.Close()

	entries, err := fs.ReadDir(root.FS(), ".")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read image directory")
	}

	var infos []Info
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !IsSupported(name) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{Name: name, Size: fi.Size(), ModTime: fi.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *DirStore) read(ref string) ([]byte, error) {
	if err := errors.ValidateImageRef(ref); err != nil {
		return nil, err
	}
	root, err := s.openRoot()
	if err != nil {
		return nil, err
	}
	defer root.Close()

	f, err := root.Open(ref)
	if err != nil {
		return nil, notFound(ref, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageNotFound, err, "read %s", ref)
	}
	if len(data) > maxFileSize {
		return nil, errors.New(errors.ErrCodeImageDecode, "image %s exceeds %d MiB", ref, maxFileSize>>20)
	}
	return data, nil
}

func (s *DirStore) openRoot() (*os.Root, error) {
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageNotFound, err, "open image directory %s", s.dir)
	}
	return root, nil
}

func (s *DirStore) fits(w, h int) bool {
	return s.maxDimension <= 0 || (w <= s.maxDimension && h <= s.maxDimension)
}

// normalize downscales img if needed and re-encodes it as an opaque PNG.
// Transparent areas become white, matching the paper the template is printed on.
func (s *DirStore) normalize(ref string, img image.Image) (*Image, error) {
	b := img.Bounds()
	if !s.fits(b.Dx(), b.Dy()) {
		img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
		b = img.Bounds()
	}

	flat := imaging.Overlay(imaging.New(b.Dx(), b.Dy(), color.White), img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageDecode, err, "encode %s", ref)
	}
	return &Image{Name: ref, Type: TypePNG, Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

func notFound(ref string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeImageNotFound, err, "image %s not found", ref)
	}
	return errors.Wrap(errors.ErrCodeImageNotFound, err, "image %s is not readable", ref)
}

var _ Store = (*DirStore)(nil)
