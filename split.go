package linebreak

import (
	"fmt"
	"strings"
)

// GlueSet is how the glue of a line is set: every glue of order Order is stretched (Sign > 0) or shrunk (Sign < 0) by Ratio times its stretch or shrink. Glue of other orders keeps its natural width.
type GlueSet struct {
	Ratio float64
	Order Order
	Sign  int
}

// Apply returns the width of glue g when set.
func (gs GlueSet) Apply(g Glue) float64 {
	if 0 < gs.Sign && g.Stretch.Order == gs.Order {
		return g.Width + gs.Ratio*g.Stretch.Value
	} else if gs.Sign < 0 && g.Shrink.Order == gs.Order {
		return g.Width - gs.Ratio*g.Shrink.Value
	}
	return g.Width
}

func (gs GlueSet) String() string {
	if gs.Sign == 0 {
		return "natural"
	} else if 0 < gs.Sign {
		return fmt.Sprintf("stretch %v%v", num(gs.Ratio), gs.Order)
	}
	return fmt.Sprintf("shrink %v%v", num(gs.Ratio), gs.Order)
}

// glueSet returns the glue set that fills a line with content w to length, and whether the line remains overfull. Lines that cannot shrink enough are shrunk maximally, lines that cannot stretch keep their natural width.
func glueSet(w WideGlue, length float64) (GlueSet, bool) {
	shortfall := length - w.Width
	if equal(shortfall, 0.0) {
		return GlueSet{}, false
	} else if 0.0 < shortfall {
		stretch := w.StretchAmount()
		if stretch.Value <= Epsilon {
			return GlueSet{}, false
		}
		return GlueSet{shortfall / stretch.Value, stretch.Order, 1}, false
	}

	shrink := w.ShrinkAmount()
	if shrink.Value <= Epsilon {
		return GlueSet{}, true
	} else if shrink.Order == Finite && shrink.Value < -shortfall-Epsilon {
		return GlueSet{1.0, Finite, -1}, true
	}
	return GlueSet{-shortfall / shrink.Value, shrink.Order, -1}, false
}

// Line is a line of a broken paragraph.
type Line struct {
	Atoms
	Indent, Length float64 // from the paragraph shape
	GlueSet

	Badness    int
	Fitness    Fitness
	Overfull   bool // content does not fit even when shrunk maximally
	Hyphenated bool // ends at a discretionary
}

// SetWidth returns the width of the line after setting its glue.
func (l Line) SetWidth() float64 {
	return setWidth(l.Atoms, l.GlueSet)
}

func setWidth(atoms Atoms, gs GlueSet) float64 {
	width := 0.0
	for _, a := range atoms {
		switch a.Kind {
		case GlueKind:
			width += gs.Apply(a.Glue)
		case DiscKind:
			width += setWidth(a.NoBreak, gs)
		default:
			width += a.Contribution().Width
		}
	}
	return width
}

// Text returns the characters of the line with single spaces between words.
func (l Line) Text() string {
	return strings.Join(strings.Fields(l.Atoms.Text()), " ")
}

func (l Line) String() string {
	return fmt.Sprintf("Line[%q b=%d %v %v]", l.Text(), l.Badness, l.Fitness, l.GlueSet)
}

// VList is the vertical list of lines of a paragraph.
type VList []Line

// Overfull returns true if any line is overfull.
func (vl VList) Overfull() bool {
	for _, l := range vl {
		if l.Overfull {
			return true
		}
	}
	return false
}

// Text returns the text of all lines separated by newlines.
func (vl VList) Text() string {
	lines := make([]string, 0, len(vl))
	for _, l := range vl {
		lines = append(lines, l.Text())
	}
	return strings.Join(lines, "\n")
}

// splitNodeList assembles the lines between the chosen break points. A line consists of the left skip, the post-break material of the previous discretionary, the atoms up to its break atom, the pre-break material of a discretionary it ends at, and the right skip. The break atom itself and the discardables following it are dropped.
func splitNodeList(atoms Atoms, bps BreakPoints, breaks *Breaks, p searchParams) VList {
	vlist := make(VList, 0, len(breaks.Positions))
	start, prev := 0, -1
	for n, k := range breaks.Positions {
		bp := bps[k]
		line := Atoms{}
		if !p.LeftSkip.IsZero() {
			line = line.Glue(p.LeftSkip)
		}
		if 0 <= prev && bps[prev].Hyphenated {
			line = append(line, atoms[bps[prev].Position].Post...)
		}
		line = append(line, atoms[start:bp.Position]...)
		if bp.Hyphenated {
			line = append(line, atoms[bp.Position].Pre...)
		}
		if !p.RightSkip.IsZero() {
			line = line.Glue(p.RightSkip)
		}

		indent, length := p.shape.Line(n)
		gs, overfull := glueSet(line.Width(), length)
		vlist = append(vlist, Line{
			Atoms:      line,
			Indent:     indent,
			Length:     length,
			GlueSet:    gs,
			Badness:    breaks.Lines[n].Badness,
			Fitness:    breaks.Lines[n].Fitness,
			Overfull:   overfull,
			Hyphenated: bp.Hyphenated,
		})

		end := len(atoms)
		if n+1 < len(breaks.Positions) {
			end = bps[breaks.Positions[n+1]].Position
		}
		start = bp.Position + 1
		if !bp.Hyphenated || len(atoms[bp.Position].Post) == 0 {
			start, _ = skipDiscardables(atoms, start, end)
		}
		prev = k
	}
	return vlist
}
