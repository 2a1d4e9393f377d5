package linebreak

import (
	"fmt"
	"strings"
)

// BreakPoint is a legal break in a horizontal list. All widths are relative to the previous break point so that the content of a line between any two break points can be summed.
type BreakPoint struct {
	Position   int      // index of the break atom, or zero for the start of the paragraph
	Width      WideGlue // unbroken material from the previous break atom up to the break atom
	PointWidth WideGlue // material added at the end of the line when breaking here, such as a hyphen
	Discard    WideGlue // material dropped when breaking here: the break atom and the discardables after it
	PostWidth  WideGlue // material added at the start of the next line when breaking here
	Resume     int      // index of the first atom of the next line when breaking here
	Penalty    int
	Hyphenated bool // break at a discretionary
	Forced     bool

	fitness Fitness
	active  bool
}

// Active returns true if the break point is part of the chosen solution.
func (bp *BreakPoint) Active() bool {
	return bp.active
}

// Fitness returns the fitness class of the line ending at this break point, and false if the break point is passive.
func (bp *BreakPoint) Fitness() (Fitness, bool) {
	return bp.fitness, bp.active
}

func (bp *BreakPoint) activate(fitness Fitness) {
	bp.fitness = fitness
	bp.active = true
}

func (bp *BreakPoint) deactivate() {
	bp.fitness = Decent
	bp.active = false
}

func (bp BreakPoint) String() string {
	s := fmt.Sprintf("BreakPoint[pos=%d w=%v p=%d", bp.Position, bp.Width, bp.Penalty)
	if bp.Hyphenated {
		s += fmt.Sprintf(" pw=%v", bp.PointWidth)
	}
	if bp.active {
		s += " " + bp.fitness.String()
	}
	return s + "]"
}

// BreakPoints is the ordered list of break points of a paragraph, the first being the start of the paragraph.
type BreakPoints []BreakPoint

func (bps BreakPoints) String() string {
	sb := strings.Builder{}
	for i, bp := range bps {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(bp.String())
	}
	return sb.String()
}

// skipDiscardables advances from index i over discardable atoms that do not allow a break themselves, but not beyond end. It returns the index of the first atom that is kept and the width of the skipped atoms.
func skipDiscardables(atoms Atoms, i, end int) (int, WideGlue) {
	w := WideGlue{}
	for i < end && atoms[i].Discardable() && !atoms[i].Breakable() {
		w = w.Add(atoms[i].Contribution())
		i++
	}
	return i, w
}

// makeBreakPoints lists all legal breaks of the horizontal list. A leading glue atom is not a break and counts towards the first line.
func makeBreakPoints(atoms Atoms, hyphenPenalty, exHyphenPenalty int) BreakPoints {
	bps := BreakPoints{{}}
	w := WideGlue{} // material since the previous break atom
	inMath := false
	for i := 0; i < len(atoms); i++ {
		atom := atoms[i]
		bp := BreakPoint{Position: i}
		legal := false
		switch atom.Kind {
		case CharKind, BoxKind:
		case GlueKind:
			legal = 0 < i && !atoms[i-1].Discardable()
		case KernKind:
			legal = !inMath && i+1 < len(atoms) && atoms[i+1].Kind == GlueKind
		case MathOnKind:
			inMath = true
		case MathOffKind:
			inMath = false
			legal = i+1 < len(atoms) && atoms[i+1].Kind == GlueKind
		case PenaltyKind:
			legal = atom.Breakable()
			bp.Penalty = atom.Penalty
			bp.Forced = atom.Forced()
		case DiscKind:
			legal = true
			bp.Hyphenated = true
			bp.Penalty = exHyphenPenalty
			if 0 < len(atom.Pre) {
				bp.Penalty = hyphenPenalty
			}
			bp.PointWidth = atom.Pre.Width()
			bp.PostWidth = atom.Post.Width()
		default:
			panic(fmt.Sprintf("unknown atom kind %v", atom.Kind))
		}
		if !legal {
			w = w.Add(atom.Contribution())
			continue
		}

		bp.Width = w
		bp.Discard = WideGlue{}.Add(atom.Contribution())
		bp.Resume = i + 1
		if atom.Kind != DiscKind || len(atom.Post) == 0 {
			// discardables after the break would start the next line, drop them
			var skipped WideGlue
			bp.Resume, skipped = skipDiscardables(atoms, i+1, len(atoms))
			bp.Discard = bp.Discard.AddWide(skipped)
			for _, s := range atoms[i+1 : bp.Resume] {
				if s.Kind == MathOnKind {
					inMath = true
				} else if s.Kind == MathOffKind {
					inMath = false
				}
			}
		}
		bps = append(bps, bp)
		w = bp.Discard
		i = bp.Resume - 1
	}
	return bps
}

// lineContent returns the material of a line from break point from to break point to.
func lineContent(bps BreakPoints, from, to int) WideGlue {
	widths := WideGlue{}
	for k := from + 1; k <= to; k++ {
		widths = widths.AddWide(bps[k].Width)
	}
	return lineMaterial(bps, from, to, widths)
}

// lineMaterial returns the material of a line from break point from to break point to, where widths is the sum of the widths of the break points after from up to and including to.
func lineMaterial(bps BreakPoints, from, to int, widths WideGlue) WideGlue {
	return widths.SubWide(bps[from].Discard).AddWide(bps[from].PostWidth).AddWide(bps[to].PointWidth)
}
