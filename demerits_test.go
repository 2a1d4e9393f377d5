package linebreak

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestBadness(t *testing.T) {
	var tests = []struct {
		t, s     float64
		expected int
	}{
		{0.0, 0.0, 0},
		{-1.0, 1.0, 0},
		{1.0, 0.0, InfBad},
		{1.0, 1.0, 100},
		{1.0, 2.0, 13},
		{1.0, 4.0, 2},
		{3.0, 1.0, 2700},
		{5.0, 1.0, InfBad},
		{6.0, 1.0, InfBad},
		{1e9, 1.0, InfBad},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.t, tt.s), func(t *testing.T) {
			test.T(t, Badness(tt.t, tt.s), tt.expected)
		})
	}
}

func TestRateLine(t *testing.T) {
	var tests = []struct {
		name    string
		w       Glue
		length  float64
		badness int
		fitness Fitness
	}{
		{"exact", NewGlue(100.0, 0.0, 0.0), 100.0, 0, Decent},
		{"stretch", NewGlue(90.0, 10.0, 0.0), 100.0, 100, VeryLoose},
		{"little stretch", NewGlue(95.0, 10.0, 0.0), 100.0, 13, Loose},
		{"infinite stretch", Glue{Width: 10.0, Stretch: Fils(1.0)}, 100.0, 0, Decent},
		{"no stretch", NewGlue(90.0, 0.0, 0.0), 100.0, InfBad, VeryLoose},
		{"large shortfall", NewGlue(100.0, 20.0, 0.0), 300.0, InfBad, VeryLoose},
		{"shrink", NewGlue(105.0, 0.0, 10.0), 100.0, 13, Tight},
		{"little shrink", NewGlue(101.0, 0.0, 10.0), 100.0, 0, Decent},
		{"full shrink", NewGlue(110.0, 0.0, 10.0), 100.0, 100, Tight},
		{"overfull", NewGlue(111.0, 0.0, 10.0), 100.0, Infeasible, Tight},
		{"no shrink", NewGlue(101.0, 5.0, 0.0), 100.0, Infeasible, Tight},
		{"infinite shrink", Glue{Width: 200.0, Shrink: Fils(1.0)}, 100.0, 0, Decent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badness, fitness := rateLine(tt.w.Wide(), tt.length)
			test.T(t, badness, tt.badness)
			test.T(t, fitness, tt.fitness)
		})
	}
}

func TestComputeDemerits(t *testing.T) {
	g := NewGlue(10.0, 5.0, 3.0)
	atoms := Atoms{}.Word("aaaa", 10.0).Glue(g).Word("bbbb", 10.0).Glue(g).Word("cccc", 10.0)
	bps := makeBreakPoints(atoms, 50, 50)
	test.T(t, len(bps), 3)

	// aaaa bbbb is 90pt with 5pt stretch
	badness, fitness, overfull := computeDemerits(lineContent(bps, 0, 2), 95.0, 200)
	test.T(t, badness, 100)
	test.T(t, fitness, VeryLoose)
	test.That(t, !overfull)

	badness, _, overfull = computeDemerits(lineContent(bps, 0, 2), 95.0, 99)
	test.T(t, badness, Infeasible, "above threshold")
	test.That(t, !overfull)

	badness, _, overfull = computeDemerits(lineContent(bps, 0, 2), 80.0, 200)
	test.T(t, badness, Infeasible)
	test.That(t, overfull)

	// background stretch
	badness, fitness, _ = computeDemerits(Glue{Stretch: Pts(15.0)}.Wide().AddWide(lineContent(bps, 0, 2)), 100.0, 200)
	test.T(t, badness, 13)
	test.T(t, fitness, Loose)

	badness, _, _ = computeDemerits(lineContent(bps, 1, 2), 40.0, 200)
	test.T(t, badness, 0, "bbbb")
}

func TestLineDemerits(t *testing.T) {
	test.T(t, lineDemerits(10, 0, 0), int64(100))
	test.T(t, lineDemerits(10, 100, 0), int64(12100))
	test.T(t, lineDemerits(10, 0, 50), int64(2600))
	test.T(t, lineDemerits(10, 0, -50), int64(-2400))
	test.T(t, lineDemerits(10, 0, EjectPenalty), int64(100))
	test.T(t, lineDemerits(10, InfBad, 0), int64(100000000))
}
