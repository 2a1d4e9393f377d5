package linebreak

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func positions(bps BreakPoints) []int {
	ps := []int{}
	for _, bp := range bps[1:] {
		ps = append(ps, bp.Position)
	}
	return ps
}

func TestMakeBreakPoints(t *testing.T) {
	g := NewGlue(3.0, 1.0, 1.0)
	hyphen := Atoms{}.Char('-', 2.0)

	var tests = []struct {
		name      string
		atoms     Atoms
		positions []int
	}{
		{"word", Atoms{}.Word("abc", 5.0), []int{}},
		{"leading glue", Atoms{}.Glue(g).Word("ab", 5.0), []int{}},
		{"interword glue", Atoms{}.Char('a', 5.0).Glue(g).Char('b', 5.0).Glue(g).Char('c', 5.0), []int{1, 3}},
		{"double glue", Atoms{}.Char('a', 5.0).Glue(g).Glue(g).Char('b', 5.0), []int{1}},
		{"kern before glue", Atoms{}.Char('a', 5.0).Kern(2.0).Glue(g).Char('b', 5.0), []int{1}},
		{"kern before char", Atoms{}.Char('a', 5.0).Kern(2.0).Char('b', 5.0), []int{}},
		{"kern in math", Atoms{}.MathOn(0.0).Char('x', 5.0).Kern(2.0).Glue(g).Char('y', 5.0).MathOff(0.0), []int{}},
		{"math off before glue", Atoms{}.MathOn(0.0).Char('x', 5.0).MathOff(1.0).Glue(g).Char('b', 5.0), []int{2}},
		{"penalties", Atoms{}.Char('a', 5.0).Penalty(50).Char('b', 5.0).Penalty(InfPenalty).Char('c', 5.0).Penalty(EjectPenalty), []int{1, 5}},
		{"discretionary", Atoms{}.Char('a', 5.0).Disc(hyphen, nil, nil).Char('b', 5.0), []int{1}},
		{"unbreakable penalty after glue", Atoms{}.Char('a', 5.0).Glue(g).Penalty(InfPenalty).Glue(g).Char('b', 5.0), []int{1}},
		{"forced break after glue", Atoms{}.Char('a', 5.0).Glue(g).Penalty(EjectPenalty).Char('b', 5.0), []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bps := makeBreakPoints(tt.atoms, 50, 50)
			test.T(t, bps[0].Position, 0)
			test.T(t, positions(bps), tt.positions)
		})
	}
}

func TestBreakPointPenalties(t *testing.T) {
	hyphen := Atoms{}.Char('-', 2.0)
	atoms := Atoms{}.Char('a', 5.0).Disc(hyphen, nil, nil).Char('b', 5.0).Disc(nil, nil, nil).Char('c', 5.0).Penalty(-20).Char('d', 5.0).Penalty(EjectPenalty)
	bps := makeBreakPoints(atoms, 50, 30)
	test.T(t, len(bps), 5)

	test.T(t, bps[1].Penalty, 50)
	test.That(t, bps[1].Hyphenated)
	test.Float(t, bps[1].PointWidth.Width, 2.0)
	test.T(t, bps[2].Penalty, 30)
	test.That(t, bps[2].Hyphenated)
	test.Float(t, bps[2].PointWidth.Width, 0.0)
	test.T(t, bps[3].Penalty, -20)
	test.That(t, !bps[3].Forced)
	test.That(t, bps[4].Forced)
	test.That(t, !bps[4].Hyphenated)
}

func TestBreakPointWidths(t *testing.T) {
	g := NewGlue(3.0, 1.0, 1.0)
	atoms := Atoms{}.Char('a', 5.0).Glue(g).Char('b', 5.0).Kern(2.0).Glue(g).Char('c', 5.0)
	bps := makeBreakPoints(atoms, 50, 50)
	test.T(t, positions(bps), []int{1, 3})

	test.Float(t, bps[1].Width.Width, 5.0)
	test.Float(t, bps[1].Discard.Width, 3.0)
	test.T(t, bps[1].Resume, 2)
	test.Float(t, bps[2].Width.Width, 8.0)
	test.Float(t, bps[2].Discard.Width, 5.0, "kern and glue")
	test.T(t, bps[2].Resume, 5)

	test.Float(t, lineContent(bps, 0, 1).Width, 5.0)
	test.Float(t, lineContent(bps, 0, 2).Width, 13.0)
	test.Float(t, lineContent(bps, 1, 2).Width, 5.0)
	test.T(t, lineContent(bps, 0, 2).StretchAmount(), Pts(1.0))
}

func TestBreakPointDiscretionaryWidths(t *testing.T) {
	pre := Atoms{}.Char('-', 2.0)
	post := Atoms{}.Char('b', 4.0)
	nobreak := Atoms{}.Char('c', 7.0)
	atoms := Atoms{}.Word("aa", 5.0).Disc(pre, post, nobreak).Word("dd", 5.0).Penalty(EjectPenalty)
	bps := makeBreakPoints(atoms, 50, 50)
	test.T(t, positions(bps), []int{2, 5})

	test.Float(t, lineContent(bps, 0, 1).Width, 12.0, "aa-")
	test.Float(t, lineContent(bps, 1, 2).Width, 14.0, "bdd")
	test.Float(t, lineContent(bps, 0, 2).Width, 27.0, "aacdd")
}

func TestSkipDiscardables(t *testing.T) {
	g := NewGlue(3.0, 1.0, 1.0)
	atoms := Atoms{}.Glue(g).Kern(1.0).Penalty(InfPenalty).MathOff(2.0).Penalty(0).Char('a', 5.0)

	var tests = []struct {
		i, end   int
		expected int
		width    float64
	}{
		{0, len(atoms), 4, 6.0},
		{0, 2, 2, 4.0},
		{4, len(atoms), 4, 0.0},
		{5, len(atoms), 5, 0.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%d", tt.i, tt.end), func(t *testing.T) {
			j, w := skipDiscardables(atoms, tt.i, tt.end)
			test.T(t, j, tt.expected)
			test.Float(t, w.Width, tt.width)
		})
	}
}
