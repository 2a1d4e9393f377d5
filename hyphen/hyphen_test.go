package hyphen

import (
	"strings"
	"testing"

	"github.com/tdewolff/linebreak"
	"github.com/tdewolff/test"
)

// from The TEXbook, appendix H
var liang = `% patterns for hyphenation
\patterns{
hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n
}

\hyphenation{ % exceptions
ta-ble
}
`

func TestParsePatterns(t *testing.T) {
	p, err := ParsePatterns(strings.NewReader(liang))
	test.Error(t, err)
	test.T(t, p.LeftMin, DefaultLeftMin)
	test.T(t, p.RightMin, DefaultRightMin)

	var tests = []struct {
		word   string
		pieces []string
	}{
		{"hyphenation", []string{"hy", "phen", "ation"}},
		{"Hyphenation", []string{"Hy", "phen", "ation"}},
		{"table", []string{"ta", "ble"}},
		{"hyph", []string{"hyph"}},
		{"word", []string{"word"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			test.T(t, p.Hyphenate(tt.word), tt.pieces)
		})
	}

	p.RightMin = 6
	test.T(t, p.Points("hyphenation"), []int{2})
}

func TestParsePatternsErrors(t *testing.T) {
	var tests = []string{
		`\patterns{ a1b`,
		`a1b`,
		`}`,
		`\patterns a1b`,
		`\foo{ a1b }`,
		`\patterns{ \hyphenation{ ta-ble } }`,
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePatterns(strings.NewReader(tt))
			test.That(t, err != nil)
		})
	}

	p, err := ParsePatterns(strings.NewReader(""))
	test.Error(t, err)
	test.T(t, p.Points("hyphenation"), []int{})
}

func discs(atoms linebreak.Atoms) []int {
	is := []int{}
	for i, a := range atoms {
		if a.Kind == linebreak.DiscKind {
			is = append(is, i)
		}
	}
	return is
}

func TestHyphenator(t *testing.T) {
	p, err := ParsePatterns(strings.NewReader(liang))
	test.Error(t, err)
	hyphen := linebreak.Atoms{}.Char('-', 3.0)
	h := New(p, hyphen)

	atoms := linebreak.Atoms{}.Word("hyphenation", 5.0).Glue(linebreak.NewGlue(5.0, 2.0, 1.0)).Word("table.", 5.0)
	hyphenated := h.Hyphenate(atoms)
	test.T(t, discs(hyphenated), []int{2, 7, 16})
	test.T(t, hyphenated[2].Pre, hyphen)
	test.String(t, hyphenated.Text(), atoms.Text())
	test.T(t, len(atoms), 18, "input is unchanged")

	// discretionaries go before kerns
	atoms = linebreak.Atoms{}.Word("hy", 5.0).Kern(-1.0).Word("phen", 5.0).Kern(-1.0).Word("ation", 5.0)
	hyphenated = h.Hyphenate(atoms)
	test.T(t, discs(hyphenated), []int{2, 8})
	test.T(t, hyphenated[3].Kind, linebreak.KernKind)
	test.T(t, hyphenated[9].Kind, linebreak.KernKind)

	// words with explicit discretionaries
	atoms = linebreak.Atoms{}.Word("hyphen", 5.0).Disc(hyphen, nil, nil).Word("ation", 5.0)
	test.T(t, discs(h.Hyphenate(atoms)), []int{6})

	// non-letters
	atoms = linebreak.Atoms{}.Word("1234567", 5.0).Penalty(0).Box(10.0)
	test.T(t, h.Hyphenate(atoms), atoms)
}
