package linebreak

import (
	"fmt"
	"strings"
)

// InfPenalty is the penalty that prohibits a break, EjectPenalty the one that forces a break.
const (
	InfPenalty   = 10000
	EjectPenalty = -InfPenalty
)

// Kind is the atom kind.
type Kind int

// see Kind
const (
	CharKind Kind = iota
	GlueKind
	KernKind
	PenaltyKind
	DiscKind
	MathOnKind
	MathOffKind
	BoxKind
)

func (k Kind) String() string {
	switch k {
	case CharKind:
		return "Char"
	case GlueKind:
		return "Glue"
	case KernKind:
		return "Kern"
	case PenaltyKind:
		return "Penalty"
	case DiscKind:
		return "Disc"
	case MathOnKind:
		return "MathOn"
	case MathOffKind:
		return "MathOff"
	case BoxKind:
		return "Box"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Atom is an element of a horizontal list. Which fields are used depends on its Kind:
//   - Char: Rune and Width
//   - Glue: Glue
//   - Kern, MathOn, MathOff, Box: Width
//   - Penalty: Penalty
//   - Disc: Pre (pre-break material), Post (post-break material), and NoBreak (material when not broken)
type Atom struct {
	Kind
	Rune    rune
	Width   float64
	Glue    Glue
	Penalty int

	Pre, Post, NoBreak Atoms
}

// Contribution returns the width, stretch, and shrink the atom adds to a line when it is not broken at.
func (a Atom) Contribution() Glue {
	switch a.Kind {
	case CharKind, KernKind, MathOnKind, MathOffKind, BoxKind:
		return Length(a.Width)
	case GlueKind:
		return a.Glue
	case PenaltyKind:
		return Glue{}
	case DiscKind:
		return a.NoBreak.Width().Glue()
	}
	panic(fmt.Sprintf("unknown atom kind %v", a.Kind))
}

// Discardable returns true for atoms that disappear at the start of a line after a break.
func (a Atom) Discardable() bool {
	switch a.Kind {
	case GlueKind, KernKind, PenaltyKind, MathOnKind, MathOffKind:
		return true
	case CharKind, DiscKind, BoxKind:
		return false
	}
	panic(fmt.Sprintf("unknown atom kind %v", a.Kind))
}

// Breakable returns true for a penalty that allows a break.
func (a Atom) Breakable() bool {
	return a.Kind == PenaltyKind && a.Penalty < InfPenalty
}

// Forced returns true for a penalty that forces a break.
func (a Atom) Forced() bool {
	return a.Kind == PenaltyKind && a.Penalty <= EjectPenalty
}

func (a Atom) String() string {
	switch a.Kind {
	case CharKind:
		return fmt.Sprintf("Char[%q w=%v]", a.Rune, num(a.Width))
	case GlueKind:
		return fmt.Sprintf("Glue[%v]", a.Glue)
	case KernKind:
		return fmt.Sprintf("Kern[w=%v]", num(a.Width))
	case PenaltyKind:
		return fmt.Sprintf("Penalty[p=%d]", a.Penalty)
	case DiscKind:
		return fmt.Sprintf("Disc[pre=%v post=%v nobreak=%v]", a.Pre, a.Post, a.NoBreak)
	case MathOnKind:
		return fmt.Sprintf("MathOn[w=%v]", num(a.Width))
	case MathOffKind:
		return fmt.Sprintf("MathOff[w=%v]", num(a.Width))
	case BoxKind:
		return fmt.Sprintf("Box[w=%v]", num(a.Width))
	}
	return "?"
}

// Atoms is a horizontal list.
type Atoms []Atom

// Char adds a character of the given width.
func (atoms Atoms) Char(r rune, width float64) Atoms {
	return append(atoms, Atom{Kind: CharKind, Rune: r, Width: width})
}

// Word adds a character for each rune in s, each of the given width.
func (atoms Atoms) Word(s string, width float64) Atoms {
	for _, r := range s {
		atoms = atoms.Char(r, width)
	}
	return atoms
}

// Glue adds glue.
func (atoms Atoms) Glue(g Glue) Atoms {
	return append(atoms, Atom{Kind: GlueKind, Glue: g})
}

// Kern adds a kern of the given width.
func (atoms Atoms) Kern(width float64) Atoms {
	return append(atoms, Atom{Kind: KernKind, Width: width})
}

// Penalty adds a penalty. Use InfPenalty to prohibit and EjectPenalty to force a break.
func (atoms Atoms) Penalty(penalty int) Atoms {
	return append(atoms, Atom{Kind: PenaltyKind, Penalty: penalty})
}

// Disc adds a discretionary break with pre-break, post-break, and no-break material.
func (atoms Atoms) Disc(pre, post, nobreak Atoms) Atoms {
	return append(atoms, Atom{Kind: DiscKind, Pre: pre, Post: post, NoBreak: nobreak})
}

// MathOn adds the start of a formula with its surrounding space.
func (atoms Atoms) MathOn(width float64) Atoms {
	return append(atoms, Atom{Kind: MathOnKind, Width: width})
}

// MathOff adds the end of a formula with its surrounding space.
func (atoms Atoms) MathOff(width float64) Atoms {
	return append(atoms, Atom{Kind: MathOffKind, Width: width})
}

// Box adds other non-discardable material of the given width.
func (atoms Atoms) Box(width float64) Atoms {
	return append(atoms, Atom{Kind: BoxKind, Width: width})
}

// Width sums the contributions of all atoms.
func (atoms Atoms) Width() WideGlue {
	w := WideGlue{}
	for _, a := range atoms {
		w = w.Add(a.Contribution())
	}
	return w
}

// Text returns the characters in the list, with a space for glue and the no-break material of discretionaries.
func (atoms Atoms) Text() string {
	sb := strings.Builder{}
	for _, a := range atoms {
		switch a.Kind {
		case CharKind:
			sb.WriteRune(a.Rune)
		case GlueKind:
			sb.WriteByte(' ')
		case DiscKind:
			sb.WriteString(a.NoBreak.Text())
		}
	}
	return sb.String()
}
