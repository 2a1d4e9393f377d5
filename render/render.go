// Package render draws broken paragraphs onto a canvas and writes them as PDF, SVG, or any other format supported by the canvas renderers.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/linebreak/text"
)

const mmPerPt = 25.4 / 72.0

// OverfullRule is the width of the rule drawn after overfull lines.
var OverfullRule = 5.0

// Glyph is a character placed on a line.
type Glyph struct {
	Rune rune
	X    float64
}

// Rule is a box placed on a line.
type Rule struct {
	X, Width float64
}

// Place returns the horizontal positions of the characters and boxes of a line, relative to the left edge of the paragraph. Glue is set using the line's glue set, and unbroken discretionaries are placed using their no-break material.
func Place(line linebreak.Line) ([]Glyph, []Rule) {
	glyphs, rules := []Glyph{}, []Rule{}
	place(line.Atoms, line.GlueSet, line.Indent, &glyphs, &rules)
	return glyphs, rules
}

func place(atoms linebreak.Atoms, set linebreak.GlueSet, x float64, glyphs *[]Glyph, rules *[]Rule) float64 {
	for _, a := range atoms {
		switch a.Kind {
		case linebreak.CharKind:
			*glyphs = append(*glyphs, Glyph{a.Rune, x})
			x += a.Width
		case linebreak.GlueKind:
			x += set.Apply(a.Glue)
		case linebreak.BoxKind:
			*rules = append(*rules, Rule{x, a.Width})
			x += a.Width
		case linebreak.KernKind, linebreak.MathOnKind, linebreak.MathOffKind:
			x += a.Width
		case linebreak.DiscKind:
			x = place(a.NoBreak, set, x, glyphs, rules)
		}
	}
	return x
}

// Renderer draws paragraphs with a font. Lengths are in points.
type Renderer struct {
	Face  *text.Face
	Color color.Color

	Margin   float64
	LineSkip float64 // distance between baselines, zero uses the line height of the font
	Guides   bool    // draw the line lengths of the paragraph shape and the outlines of boxes

	family *canvas.FontFamily
}

// New returns a renderer for the font file at the given size.
func New(b []byte, size float64) (*Renderer, error) {
	face, err := text.NewFace(b, size)
	if err != nil {
		return nil, err
	}

	family := canvas.NewFontFamily("linebreak")
	if err := family.LoadFont(b, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		Face:   face,
		Color:  canvas.Black,
		Margin: 10.0,
		family: family,
	}, nil
}

func (r *Renderer) lineSkip() float64 {
	if r.LineSkip != 0.0 {
		return r.LineSkip
	}
	_, _, lineHeight := r.Face.Metrics()
	return lineHeight
}

// Size returns the width and height in points of the canvas for vlist.
func (r *Renderer) Size(vlist linebreak.VList) (float64, float64) {
	width := 0.0
	for _, line := range vlist {
		right := line.Indent + line.Length
		if line.Overfull {
			right = max(right, line.Indent+line.SetWidth()+OverfullRule)
		}
		width = max(width, right)
	}
	ascent, descent, _ := r.Face.Metrics()
	height := ascent + descent
	if 1 < len(vlist) {
		height += float64(len(vlist)-1) * r.lineSkip()
	}
	return width + 2.0*r.Margin, height + 2.0*r.Margin
}

// Canvas draws vlist onto a new canvas.
func (r *Renderer) Canvas(vlist linebreak.VList) *canvas.Canvas {
	width, height := r.Size(vlist)
	c := canvas.New(width*mmPerPt, height*mmPerPt)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	r.Draw(ctx, r.Margin, r.Margin, vlist)
	return c
}

// Draw draws vlist onto ctx with its top-left corner at (x,y), using a coordinate system where y points down.
func (r *Renderer) Draw(ctx *canvas.Context, x, y float64, vlist linebreak.VList) {
	ascent, descent, _ := r.Face.Metrics()
	face := r.family.Face(r.Face.Size, r.Color, canvas.FontRegular, canvas.FontNormal)

	baseline := y + ascent
	for _, line := range vlist {
		if r.Guides {
			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(canvas.Lightgray)
			ctx.SetStrokeWidth(0.1)
			ctx.DrawPath((x+line.Indent)*mmPerPt, (baseline-ascent)*mmPerPt, canvas.Rectangle(line.Length*mmPerPt, (ascent+descent)*mmPerPt))
		}

		glyphs, rules := Place(line)
		for _, glyph := range glyphs {
			ctx.DrawText((x+glyph.X)*mmPerPt, baseline*mmPerPt, canvas.NewTextLine(face, string(glyph.Rune), canvas.Left))
		}

		if r.Guides {
			for _, rule := range rules {
				ctx.DrawPath((x+rule.X)*mmPerPt, (baseline-ascent)*mmPerPt, canvas.Rectangle(rule.Width*mmPerPt, ascent*mmPerPt))
			}
		}
		if line.Overfull {
			ctx.SetFillColor(r.Color)
			ctx.SetStrokeColor(canvas.Transparent)
			right := x + line.Indent + line.SetWidth()
			ctx.DrawPath(right*mmPerPt, (baseline-ascent)*mmPerPt, canvas.Rectangle(OverfullRule*mmPerPt, (ascent+descent)*mmPerPt))
		}
		baseline += r.lineSkip()
	}
}

// WritePDF writes vlist as a single page PDF.
func (r *Renderer) WritePDF(w io.Writer, vlist linebreak.VList) error {
	c := r.Canvas(vlist)
	writer := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	return writer.Close()
}

// WriteSVG writes vlist as SVG.
func (r *Renderer) WriteSVG(w io.Writer, vlist linebreak.VList) error {
	c := r.Canvas(vlist)
	writer := svg.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	return writer.Close()
}

// WriteFile writes vlist to filename, the format is determined by its extension.
func (r *Renderer) WriteFile(filename string, vlist linebreak.VList) error {
	return renderers.Write(filename, r.Canvas(vlist))
}
