package text

import (
	"unicode"

	"github.com/tdewolff/linebreak"
	"golang.org/x/text/unicode/norm"
)

// Special characters recognized when converting text into atoms:
//   \u00A0 NO-BREAK SPACE - space but not breakpoint
//   \u00AD SOFT HYPHEN - breakpoint with hyphen insertion
//   \u200B ZERO WIDTH SPACE - breakpoint without hyphen insertion
//   \u202F NARROW NO-BREAK SPACE - space but not breakpoint
//   \u2060 WORD JOINER - no breakpoint
//   \uFEFF ZERO WIDTH NO-BREAK SPACE - no breakpoint
//   - HYPHEN-MINUS - breakpoint after the hyphen
//
// When to use what?
//   Start a new line: \n
//   Space that doesn't break: \u00A0
//   Word break opportunity with hyphenation: \u00AD
//   Word break opportunity without hyphenation: \u200B
//   Prevent word break: \u2060

// FairyTales is an example text.
const FairyTales = "In olden times when wish\u00ADing still helped one there lived a king whose daugh\u00ADters were all beau\u00ADti\u00ADful; and the young\u00ADest was so beautiful that the sun it\u00ADself, which has seen so much, was aston\u00ADished when\u00ADever it shone in her face. Close by the king's castle lay a great dark for\u00ADest, and un\u00ADder an old lime-tree in the for\u00ADest was a well, and when the day was very warm, the king's child went out into the for\u00ADest and sat down by the side of the cool foun\u00ADtain; and when she was bored she took a golden ball, and threw it up on high and caught it; and this ball was her favor\u00ADite play\u00ADthing."

// SpaceStretch is the stretchability of spaces.
var SpaceStretch = 1.0 / 2.0 // ratio of the space that can be added

// SpaceShrink is the shrinkability of spaces.
var SpaceShrink = 1.0 / 3.0 // ratio of the space that can be removed

// Stretchability and shrinkability factors for inter-sentence and other types of spaces, not used if FrenchSpacing is set.
var (
	SentenceFactor  = 3.0
	ColonFactor     = 2.0
	SemicolonFactor = 1.5
	CommaFactor     = 1.25
)

func IsSpace(r rune) bool {
	// no-break spaces such as U+00A0, U+202F, and U+FEFF are handled separately
	spaces := []rune(" \t\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u205F\u3000")
	for _, space := range spaces {
		if r == space {
			return true
		}
	}
	return false
}

func IsNewline(r rune) bool {
	newlines := []rune("\r\n\f\v\u0085\u2028\u2029")
	for _, newline := range newlines {
		if r == newline {
			return true
		}
	}
	return false
}

// IsSpaceless returns true for characters of scripts that do not separate words by spaces. Breaks are allowed between such characters.
func IsSpaceless(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar)
}

// SpaceFactor returns the factor by which the stretchability of a space following rs[:i] increases and its shrinkability decreases.
func (f *Face) SpaceFactor(rs []rune, i int) float64 {
	if f.FrenchSpacing {
		return 1.0
	}
	i--
	if 0 <= i && (rs[i] == ')' || rs[i] == ']' || rs[i] == '\'' || rs[i] == '"' || rs[i] == '\u2019' || rs[i] == '\u201D') {
		i--
	}
	if 0 <= i {
		switch rs[i] {
		case '.', '!', '?':
			return SentenceFactor
		case ':':
			return ColonFactor
		case ';':
			return SemicolonFactor
		case ',':
			return CommaFactor
		}
	}
	return 1.0
}

// SpaceGlue returns the inter-word glue for the space at rs[i].
func (f *Face) SpaceGlue(rs []rune, i int) linebreak.Glue {
	spaceWidth := f.Advance(rs[i])
	if spaceWidth == 0.0 || rs[i] == '\t' {
		spaceWidth = f.Advance(' ')
	}
	spaceFactor := f.SpaceFactor(rs, i)
	return linebreak.NewGlue(spaceWidth, spaceWidth*SpaceStretch*spaceFactor, spaceWidth*SpaceShrink/spaceFactor)
}

// Atoms converts text into a horizontal list. The text is normalized to NFC first. Runs of spaces become a single inter-word glue, and spaces at the start of the text or of a line are dropped. Newlines force a break.
func (f *Face) Atoms(s string) linebreak.Atoms {
	rs := []rune(norm.NFC.String(s))
	atoms := linebreak.Atoms{}
	lineStart := true
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if IsSpace(r) {
			if !lineStart && atoms[len(atoms)-1].Kind != linebreak.GlueKind {
				atoms = atoms.Glue(f.SpaceGlue(rs, i))
			}
			continue
		} else if IsNewline(r) {
			if r == '\r' && i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
			if 0 < len(atoms) && atoms[len(atoms)-1].Kind == linebreak.GlueKind {
				atoms = atoms[:len(atoms)-1]
			}
			atoms = atoms.Penalty(linebreak.InfPenalty).Glue(linebreak.Glue{Stretch: linebreak.Fils(1.0)}).Penalty(linebreak.EjectPenalty)
			lineStart = true
			continue
		}

		switch r {
		case '\u00AD':
			atoms = atoms.Disc(f.HyphenAtom(), nil, nil)
		case '\u200B':
			atoms = atoms.Penalty(0)
		case '\u2060', '\uFEFF':
			atoms = atoms.Penalty(linebreak.InfPenalty)
		case '\u00A0', '\u202F':
			atoms = atoms.Penalty(linebreak.InfPenalty).Glue(f.SpaceGlue(rs, i))
		default:
			if 0 < i && !lineStart {
				if prev := atoms[len(atoms)-1]; prev.Kind == linebreak.CharKind {
					if IsSpaceless(r) || IsSpaceless(prev.Rune) {
						// allow breaks around spaceless script characters, most commonly CJK
						atoms = atoms.Penalty(0)
					} else if kern := f.Kerning(prev.Rune, r); kern != 0.0 {
						atoms = atoms.Kern(kern)
					}
				}
			}
			atoms = atoms.Char(r, f.Advance(r))
			if r == '-' {
				// optional break after hyphen
				atoms = atoms.Disc(nil, nil, nil)
			}
		}
		lineStart = false
	}
	return atoms
}
