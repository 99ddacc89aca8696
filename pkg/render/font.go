package render

import (
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// fontFamily names the embedded Go faces inside the document.
const fontFamily = "Go"

// registerFonts embeds the Go regular and bold faces as UTF-8 TrueType fonts.
// Only the glyphs a document uses end up in its subset.
func registerFonts(pdf *fpdf.Fpdf) {
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
}

// replacementRune stands in for runes the faces cannot draw.
const replacementRune = '\uFFFD'

var (
	coverageOnce sync.Once
	coverage     *sfnt.Font
)

// face returns the parsed regular face used to check glyph coverage. The
// bold face covers the same runes.
func face() *sfnt.Font {
	coverageOnce.Do(func() {
		if f, err := sfnt.Parse(goregular.TTF); err == nil {
			coverage = f
		}
	})
	return coverage
}

func hasGlyph(f *sfnt.Font, buf *sfnt.Buffer, r rune) bool {
	idx, err := f.GlyphIndex(buf, r)
	return err == nil && idx != 0
}

// drawable replaces runes the embedded faces have no glyph for (emoji, CJK)
// with a replacement character and reports how many it replaced. ASCII,
// including the newlines notes wrap on, is always kept.
func drawable(s string) (string, int) {
	f := face()
	if f == nil {
		return s, 0
	}
	var (
		buf      sfnt.Buffer
		b        strings.Builder
		replaced int
	)
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 || hasGlyph(f, &buf, r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(replacementRune)
		replaced++
	}
	return b.String(), replaced
}
