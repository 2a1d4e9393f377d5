package hyphen

import (
	"unicode"

	"github.com/tdewolff/linebreak"
)

// Hyphenator inserts discretionary breaks into the words of a horizontal list at the hyphenation points of its patterns.
type Hyphenator struct {
	*Patterns

	// Hyphen is the pre-break material of inserted discretionaries.
	Hyphen linebreak.Atoms
}

// New returns a hyphenator that inserts hyphen at the hyphenation points of p.
func New(p *Patterns, hyphen linebreak.Atoms) *Hyphenator {
	return &Hyphenator{
		Patterns: p,
		Hyphen:   hyphen,
	}
}

func isLetter(a linebreak.Atom) bool {
	return a.Kind == linebreak.CharKind && unicode.IsLetter(a.Rune)
}

// Hyphenate returns a copy of atoms with discretionaries inserted into every word. A word is a maximal run of letters, possibly separated by kerns. Words adjacent to an existing discretionary are left as is.
func (h *Hyphenator) Hyphenate(atoms linebreak.Atoms) linebreak.Atoms {
	out := make(linebreak.Atoms, 0, len(atoms))
	for i := 0; i < len(atoms); {
		if !isLetter(atoms[i]) {
			out = append(out, atoms[i])
			i++
			continue
		}

		j := i
		letters := []rune{}
		indices := []int{}
		for j < len(atoms) {
			if isLetter(atoms[j]) {
				letters = append(letters, atoms[j].Rune)
				indices = append(indices, j)
			} else if atoms[j].Kind != linebreak.KernKind || j+1 == len(atoms) || !isLetter(atoms[j+1]) {
				break
			}
			j++
		}

		if (0 < i && atoms[i-1].Kind == linebreak.DiscKind) || (j < len(atoms) && atoms[j].Kind == linebreak.DiscKind) {
			out = append(out, atoms[i:j]...)
			i = j
			continue
		}

		// insert directly after the letter, before any kern
		points := h.Points(string(letters))
		for _, k := range points {
			at := indices[k-1] + 1
			out = append(out, atoms[i:at]...)
			out = out.Disc(h.Hyphen, nil, nil)
			i = at
		}
		out = append(out, atoms[i:j]...)
		i = j
	}
	return out
}
