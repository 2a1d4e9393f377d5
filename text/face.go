package text

import (
	"fmt"
	"math"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmmono12regular"
	"github.com/go-fonts/latin-modern/lmmono8regular"
	"github.com/go-fonts/latin-modern/lmmono9regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmroman12bold"
	"github.com/go-fonts/latin-modern/lmroman12italic"
	"github.com/go-fonts/latin-modern/lmroman12regular"
	"github.com/go-fonts/latin-modern/lmroman17regular"
	"github.com/go-fonts/latin-modern/lmroman5regular"
	"github.com/go-fonts/latin-modern/lmroman6regular"
	"github.com/go-fonts/latin-modern/lmroman7bold"
	"github.com/go-fonts/latin-modern/lmroman7italic"
	"github.com/go-fonts/latin-modern/lmroman7regular"
	"github.com/go-fonts/latin-modern/lmroman8bold"
	"github.com/go-fonts/latin-modern/lmroman8italic"
	"github.com/go-fonts/latin-modern/lmroman8regular"
	"github.com/go-fonts/latin-modern/lmroman9bold"
	"github.com/go-fonts/latin-modern/lmroman9italic"
	"github.com/go-fonts/latin-modern/lmroman9regular"
	"github.com/go-fonts/latin-modern/lmromanslant10regular"
	"github.com/go-fonts/latin-modern/lmromanslant12regular"
	"github.com/go-fonts/latin-modern/lmromanslant17regular"
	"github.com/go-fonts/latin-modern/lmromanslant8regular"
	"github.com/go-fonts/latin-modern/lmromanslant9regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-fonts/latin-modern/lmsans12regular"
	"github.com/go-fonts/latin-modern/lmsans17regular"
	"github.com/go-fonts/latin-modern/lmsans8regular"
	"github.com/go-fonts/latin-modern/lmsans9regular"
	"github.com/tdewolff/font"
	"github.com/tdewolff/linebreak"
)

// Face is a font at a size in points. It converts text into atoms using the glyph advances and pair kerning of the font.
type Face struct {
	SFNT *font.SFNT
	Size float64

	// FrenchSpacing enforces equal widths for inter-word and inter-sentence spaces.
	FrenchSpacing bool
}

// NewFace parses a TTF, OTF, or font collection (using the first font) and returns its face at the given size.
func NewFace(b []byte, size float64) (*Face, error) {
	if size <= 0.0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	sfnt, err := font.ParseSFNT(b, 0)
	if err != nil {
		return nil, err
	}
	return &Face{
		SFNT: sfnt,
		Size: size,
	}, nil
}

// Style is a style of the Latin Modern family.
type Style int

// see Style
const (
	Regular Style = iota
	Italic
	Bold
	Slanted
	Sans
	Mono
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	case Bold:
		return "Bold"
	case Slanted:
		return "Slanted"
	case Sans:
		return "Sans"
	case Mono:
		return "Mono"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

var latinModern = map[Style]map[float64][]byte{
	Regular: {
		17.0: lmroman17regular.TTF,
		12.0: lmroman12regular.TTF,
		10.0: lmroman10regular.TTF,
		9.0:  lmroman9regular.TTF,
		8.0:  lmroman8regular.TTF,
		7.0:  lmroman7regular.TTF,
		6.0:  lmroman6regular.TTF,
		5.0:  lmroman5regular.TTF,
	},
	Italic: {
		12.0: lmroman12italic.TTF,
		10.0: lmroman10italic.TTF,
		9.0:  lmroman9italic.TTF,
		8.0:  lmroman8italic.TTF,
		7.0:  lmroman7italic.TTF,
	},
	Bold: {
		12.0: lmroman12bold.TTF,
		10.0: lmroman10bold.TTF,
		9.0:  lmroman9bold.TTF,
		8.0:  lmroman8bold.TTF,
		7.0:  lmroman7bold.TTF,
	},
	Slanted: {
		17.0: lmromanslant17regular.TTF,
		12.0: lmromanslant12regular.TTF,
		10.0: lmromanslant10regular.TTF,
		9.0:  lmromanslant9regular.TTF,
		8.0:  lmromanslant8regular.TTF,
	},
	Sans: {
		17.0: lmsans17regular.TTF,
		12.0: lmsans12regular.TTF,
		10.0: lmsans10regular.TTF,
		9.0:  lmsans9regular.TTF,
		8.0:  lmsans8regular.TTF,
	},
	Mono: {
		12.0: lmmono12regular.TTF,
		10.0: lmmono10regular.TTF,
		9.0:  lmmono9regular.TTF,
		8.0:  lmmono8regular.TTF,
	},
}

// LatinModernData returns the font file of the given Latin Modern style whose design size is closest to size.
func LatinModernData(style Style, size float64) ([]byte, error) {
	fontSizes, ok := latinModern[style]
	if !ok {
		return nil, fmt.Errorf("unknown style %v", style)
	}

	var data []byte
	var dsize float64
	for isize, idata := range fontSizes {
		if data == nil || math.Abs(isize-size) < math.Abs(dsize-size) {
			data = idata
			dsize = isize
		}
	}
	return data, nil
}

// LatinModern returns a Latin Modern face, using the design size closest to size.
func LatinModern(style Style, size float64) (*Face, error) {
	data, err := LatinModernData(style, size)
	if err != nil {
		return nil, err
	}
	return NewFace(data, size)
}

// toPt converts font units to points.
func (f *Face) toPt(v float64) float64 {
	return v * f.Size / float64(f.SFNT.Head.UnitsPerEm)
}

// Advance returns the advance width of the glyph of r.
func (f *Face) Advance(r rune) float64 {
	return f.toPt(float64(f.SFNT.GlyphAdvance(f.SFNT.GlyphIndex(r))))
}

// Kerning returns the kerning between the glyphs of left and right.
func (f *Face) Kerning(left, right rune) float64 {
	return f.toPt(float64(f.SFNT.Kerning(f.SFNT.GlyphIndex(left), f.SFNT.GlyphIndex(right))))
}

// Metrics returns the ascent, descent, and line height of the face.
func (f *Face) Metrics() (float64, float64, float64) {
	ascent := f.toPt(float64(f.SFNT.Hhea.Ascender))
	descent := f.toPt(float64(-f.SFNT.Hhea.Descender))
	lineGap := f.toPt(float64(f.SFNT.Hhea.LineGap))
	return ascent, descent, ascent + descent + lineGap
}

// HyphenAtom returns the hyphen used as pre-break material of discretionaries.
func (f *Face) HyphenAtom() linebreak.Atoms {
	return linebreak.Atoms{}.Char('-', f.Advance('-'))
}
