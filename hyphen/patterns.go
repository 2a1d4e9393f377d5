package hyphen

import (
	"io"
	"unicode"

	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/parse/v2"
)

// DefaultLeftMin and DefaultRightMin are the minimum number of characters before and after a hyphen, as in TeX's \lefthyphenmin and \righthyphenmin for English.
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 3
)

type trie struct {
	children map[rune]*trie
	points   []int
}

func (t *trie) insert(letters []rune, points []int) {
	for _, r := range letters {
		child, ok := t.children[r]
		if !ok {
			child = &trie{children: map[rune]*trie{}}
			t.children[r] = child
		}
		t = child
	}
	t.points = points
}

// Patterns finds hyphenation points in words using Liang's algorithm.
type Patterns struct {
	LeftMin, RightMin int

	root       *trie
	patterns   int
	exceptions map[string][]int
}

// NewPatterns returns an empty set of patterns.
func NewPatterns() *Patterns {
	return &Patterns{
		LeftMin:    DefaultLeftMin,
		RightMin:   DefaultRightMin,
		root:       &trie{children: map[rune]*trie{}},
		exceptions: map[string][]int{},
	}
}

// AddPattern adds a pattern such as "hen5at", where the digits between the letters give the priority of a hyphen at that position. Odd priorities allow a hyphen, even ones prohibit it.
func (p *Patterns) AddPattern(pattern string) {
	letters := []rune{}
	points := []int{0}
	for _, r := range pattern {
		if '0' <= r && r <= '9' {
			points[len(points)-1] = int(r - '0')
		} else {
			letters = append(letters, unicode.ToLower(r))
			points = append(points, 0)
		}
	}
	p.root.insert(letters, points)
	p.patterns++
}

// AddException adds a word with its hyphens given explicitly, such as "ta-ble".
func (p *Patterns) AddException(word string) {
	letters := []rune{}
	offsets := []int{}
	for _, r := range word {
		if r == '-' {
			offsets = append(offsets, len(letters))
		} else {
			letters = append(letters, unicode.ToLower(r))
		}
	}
	p.exceptions[string(letters)] = offsets
}

// Points returns the offsets in runes of word where a hyphen may be inserted.
func (p *Patterns) Points(word string) []int {
	letters := []rune(word)
	for i, r := range letters {
		letters[i] = unicode.ToLower(r)
	}

	offsets := []int{}
	if len(letters) < p.LeftMin+p.RightMin {
		return offsets
	}
	valid := func(k int) bool {
		return p.LeftMin <= k && k <= len(letters)-p.RightMin
	}

	if exception, ok := p.exceptions[string(letters)]; ok {
		for _, k := range exception {
			if valid(k) {
				offsets = append(offsets, k)
			}
		}
		return offsets
	}

	work := make([]rune, 0, len(letters)+2)
	work = append(work, '.')
	work = append(work, letters...)
	work = append(work, '.')

	points := make([]int, len(work)+1)
	for i := range work {
		t := p.root
		for _, r := range work[i:] {
			var ok bool
			if t, ok = t.children[r]; !ok {
				break
			}
			for j, point := range t.points {
				points[i+j] = max(points[i+j], point)
			}
		}
	}

	// points[k+1] is the priority of a hyphen before letters[k]
	for k := 1; k < len(letters); k++ {
		if points[k+1]%2 == 1 && valid(k) {
			offsets = append(offsets, k)
		}
	}
	return offsets
}

// Hyphenate splits word at its hyphenation points.
func (p *Patterns) Hyphenate(word string) []string {
	letters := []rune(word)
	pieces := []string{}
	prev := 0
	for _, k := range p.Points(word) {
		pieces = append(pieces, string(letters[prev:k]))
		prev = k
	}
	return append(pieces, string(letters[prev:]))
}

////////////////////////////////////////////////////////////////

const (
	noSection = iota
	patternsSection
	exceptionsSection
)

func isPatternSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// skipSpace skips whitespace and comments.
func skipSpace(z *parse.Input) {
	for {
		if c := z.Peek(0); isPatternSpace(c) {
			z.Move(1)
		} else if c == '%' {
			for c = z.Peek(0); c != '\n' && (c != 0 || z.Err() == nil); c = z.Peek(0) {
				z.Move(1)
			}
		} else {
			break
		}
	}
	z.Skip()
}

// ParsePatterns parses a TeX hyphenation file with a \patterns{...} and optionally a \hyphenation{...} section. Comments start with %.
func ParsePatterns(r io.Reader) (*Patterns, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	p := NewPatterns()
	section := noSection
	for {
		skipSpace(z)
		c := z.Peek(0)
		if c == 0 && z.Err() != nil {
			if z.Err() != io.EOF {
				return nil, z.Err()
			} else if section != noSection {
				return nil, parse.NewErrorLexer(z, "unexpected end of file, expected }")
			}
			linebreak.Logger().Debug("hyphenation patterns loaded", "patterns", p.patterns, "exceptions", len(p.exceptions))
			return p, nil
		}

		if c == '\\' {
			z.Move(1)
			for c = z.Peek(0); 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'; c = z.Peek(0) {
				z.Move(1)
			}
			command := string(z.Shift())
			skipSpace(z)
			if z.Peek(0) != '{' {
				return nil, parse.NewErrorLexer(z, "expected { after %s", command)
			} else if section != noSection {
				return nil, parse.NewErrorLexer(z, "unexpected %s in section", command)
			}
			z.Move(1)
			z.Skip()

			switch command {
			case `\patterns`:
				section = patternsSection
			case `\hyphenation`:
				section = exceptionsSection
			default:
				return nil, parse.NewErrorLexer(z, "unknown command %s", command)
			}
		} else if c == '}' {
			if section == noSection {
				return nil, parse.NewErrorLexer(z, "unexpected }")
			}
			z.Move(1)
			z.Skip()
			section = noSection
		} else {
			for {
				r, n := z.PeekRune(0)
				if r == 0 || r == '%' || r == '}' || r == '{' || r == '\\' || r < 0x80 && isPatternSpace(byte(r)) {
					break
				}
				z.Move(n)
			}
			word := string(z.Shift())
			switch section {
			case patternsSection:
				p.AddPattern(word)
			case exceptionsSection:
				p.AddException(word)
			default:
				return nil, parse.NewErrorLexer(z, "unexpected %s outside of section", word)
			}
		}
	}
}
