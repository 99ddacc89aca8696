package render

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/seedpacket/pkg/assets"
	"github.com/matzehuels/seedpacket/pkg/buildinfo"
	"github.com/matzehuels/seedpacket/pkg/errors"
	"github.com/matzehuels/seedpacket/pkg/layout"
	"github.com/matzehuels/seedpacket/pkg/observability"
	"github.com/matzehuels/seedpacket/pkg/packet"
)

const (
	// ContentType is the media type of rendered packets.
	ContentType = "application/pdf"

	// Filename is the suggested download name.
	Filename = "SeedPacket.pdf"
)

const (
	titleSize = 16
	bodySize  = 12

	// notesLineHeight is the distance between wrapped note lines.
	notesLineHeight = bodySize * 1.15

	lineWidth = 1.0
)

// dashPattern is a 3-unit dash followed by a 1-unit gap, in line widths.
var dashPattern = []float64{3 * lineWidth, 1 * lineWidth}

// Option configures rendering.
type Option func(*pdfRenderer)

type pdfRenderer struct {
	assets   assets.Store
	logger   *log.Logger
	compress bool
	created  time.Time
}

// WithAssets sets the store background images are resolved from. Without a
// store every background image is skipped.
func WithAssets(s assets.Store) Option {
	return func(r *pdfRenderer) { r.assets = s }
}

// WithLogger sets the logger for non-fatal problems.
func WithLogger(l *log.Logger) Option {
	return func(r *pdfRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) Option {
	return func(r *pdfRenderer) { r.compress = on }
}

// WithCreationDate fixes the document creation and modification dates.
// Identical inputs then produce identical bytes.
func WithCreationDate(t time.Time) Option {
	return func(r *pdfRenderer) { r.created = t }
}

// Document is a rendered packet.
type Document struct {
	PDF []byte

	// ImageEmbedded is false when no image was requested or it was skipped.
	ImageEmbedded bool

	// Strokes is the number of stroked outline paths.
	Strokes int
}

// RenderPDF renders g and p and returns the PDF bytes.
func RenderPDF(ctx context.Context, g layout.Geometry, p packet.Packet, opts ...Option) ([]byte, error) {
	doc, err := Render(ctx, g, p, opts...)
	if err != nil {
		return nil, err
	}
	return doc.PDF, nil
}

// Render draws the packet onto a single letter-size page.
func Render(ctx context.Context, g layout.Geometry, p packet.Packet, opts ...Option) (*Document, error) {
	r := pdfRenderer{
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		compress: true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, p.SeedName)
	doc, err := r.render(ctx, g, p)
	size := 0
	if doc != nil {
		size = len(doc.PDF)
	}
	observability.Render().OnRenderComplete(ctx, p.SeedName, size, time.Since(start), err)
	return doc, err
}

func (r *pdfRenderer) render(ctx context.Context, g layout.Geometry, p packet.Packet) (*Document, error) {
	pdf := r.newDocument(g, p)
	if !pdf.Ok() {
		return nil, errors.Wrap(errors.ErrCodeInternal, pdf.Error(), "set up document")
	}
	doc := &Document{}

	doc.ImageEmbedded = r.drawImage(ctx, pdf, g, p)
	doc.Strokes = drawOutlines(pdf, g)
	r.drawText(pdf, g, p)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSerialize, err, "write pdf")
	}
	doc.PDF = buf.Bytes()
	return doc, nil
}

func (r *pdfRenderer) newDocument(g layout.Geometry, p packet.Packet) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Page.W, Ht: g.Page.H},
	})
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	if !r.created.IsZero() {
		pdf.SetCreationDate(r.created)
		pdf.SetModificationDate(r.created)
	}
	title, _ := drawable(p.SeedName)
	pdf.SetTitle(title, true)
	pdf.SetCreator("seedpacket "+buildinfo.Version, true)

	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	registerFonts(pdf)
	pdf.AddPage()
	return pdf
}

// drawImage embeds the background image and reports whether it was drawn.
func (r *pdfRenderer) drawImage(ctx context.Context, pdf *fpdf.Fpdf, g layout.Geometry, p packet.Packet) bool {
	if !p.HasImage() {
		return false
	}
	if r.assets == nil {
		r.skipImage(ctx, p.BackgroundImage, errors.New(errors.ErrCodeImageNotFound, "no image directory configured"))
		return false
	}

	img, err := r.assets.Open(ctx, p.BackgroundImage)
	if err != nil {
		r.skipImage(ctx, p.BackgroundImage, err)
		return false
	}

	opts := fpdf.ImageOptions{ImageType: img.Type}
	pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if !pdf.Ok() {
		err := errors.Wrap(errors.ErrCodeImageDecode, pdf.Error(), "embed %s", img.Name)
		pdf.ClearError()
		r.skipImage(ctx, p.BackgroundImage, err)
		return false
	}

	rect := g.Image
	pdf.ImageOptions(img.Name, rect.X, rect.Y, rect.W, rect.H, false, opts, 0, "")
	r.logger.Debug("embedded background image", "image", img.Name, "type", img.Type, "px", img.Width, "py", img.Height)
	return true
}

func (r *pdfRenderer) skipImage(ctx context.Context, ref string, err error) {
	r.logger.Warn("skipping background image", "image", ref, "err", err)
	observability.Render().OnImageSkipped(ctx, ref, err)
}

// drawOutlines strokes every path in draw order and returns how many it drew.
func drawOutlines(pdf *fpdf.Fpdf, g layout.Geometry) int {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(lineWidth)

	strokes := g.Strokes()
	for _, o := range strokes {
		if o.Stroke == layout.StrokeDashed {
			pdf.SetDashPattern(dashPattern, 0)
		} else {
			pdf.SetDashPattern([]float64{}, 0)
		}
		tracePath(pdf, o)
		pdf.DrawPath("D")
	}
	pdf.SetDashPattern([]float64{}, 0)
	return len(strokes)
}

func tracePath(pdf *fpdf.Fpdf, o layout.Outline) {
	for i, s := range o.Segments {
		if i == 0 {
			pdf.MoveTo(s.From.X, s.From.Y)
		}
		switch s.Kind {
		case layout.SegmentLine:
			pdf.LineTo(s.To.X, s.To.Y)
		case layout.SegmentArc:
			pdf.ArcTo(s.Center.X, s.Center.Y, s.RX, s.RY, 0, s.StartDeg, s.EndDeg)
		}
	}
	if o.Closed {
		pdf.ClosePath()
	}
}

// drawText places the title and date at their baselines and wraps the notes
// into their rectangle, clipping anything that overflows it.
func (r *pdfRenderer) drawText(pdf *fpdf.Fpdf, g layout.Geometry, p packet.Packet) {
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.Text(g.Title.X, g.Title.Y, r.text("title", p.SeedName))

	pdf.SetFont(fontFamily, "", bodySize)
	pdf.Text(g.Date.X, g.Date.Y, p.DateLine())

	notes := p.NotesText()
	if notes == "" {
		return
	}
	rect := g.Notes
	pdf.ClipRect(rect.X, rect.Y, rect.W, rect.H, false)
	pdf.SetXY(rect.X, rect.Y)
	pdf.MultiCell(rect.W, notesLineHeight, r.text("notes", notes), "", "L", false)
	pdf.ClipEnd()
}

// text returns s with undrawable runes replaced, logging when any were.
func (r *pdfRenderer) text(field, s string) string {
	out, replaced := drawable(s)
	if replaced > 0 {
		r.logger.Warn("font has no glyph for some characters", "field", field, "replaced", replaced)
	}
	return out
}
