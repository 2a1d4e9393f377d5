package linebreak

import (
	"testing"

	"github.com/tdewolff/test"
)

var interword = NewGlue(10.0, 5.0, 3.0)

// words builds a list of words with characters of 10pt separated by interword glue.
func words(ws ...string) Atoms {
	atoms := Atoms{}
	for i, w := range ws {
		if i != 0 {
			atoms = atoms.Glue(interword)
		}
		atoms = atoms.Word(w, 10.0)
	}
	return atoms
}

func raggedOptions(hsize float64) Options {
	opts := DefaultOptions
	opts.HSize = hsize
	opts.RightSkip = Glue{Stretch: Pts(20.0)}
	return opts
}

func search(atoms Atoms, opts Options, threshold int) (Atoms, BreakPoints, *Breaks, bool) {
	atoms = finishParagraph(atoms, opts.ParFillSkip)
	bps := makeBreakPoints(atoms, opts.HyphenPenalty, opts.ExHyphenPenalty)
	breaks, ok := findOptimalBreakPoints(bps, newSearchParams(opts, opts.Shape(), threshold, false))
	return atoms, bps, breaks, ok
}

func TestFindOptimalBreakPoints(t *testing.T) {
	// the first break leaves a loose line, the second a perfect one
	_, bps, breaks, ok := search(words("aaaaaaaa", "b", "cc"), raggedOptions(100.0), 100)
	test.That(t, ok)
	test.T(t, len(bps), 4)
	test.T(t, breaks.Positions, []int{2, 3})
	test.T(t, breaks.TotalDemerits, int64(200))
	test.T(t, breaks.Lines[0].Badness, 0)
	test.T(t, breaks.Lines[0].Demerits, int64(100))

	test.That(t, !bps[1].Active())
	test.That(t, bps[2].Active())
	fitness, active := bps[2].Fitness()
	test.That(t, active)
	test.T(t, fitness, Decent)
	test.That(t, bps[3].Active())
}

func TestFindOptimalBreakPointsThreshold(t *testing.T) {
	_, _, breaks, ok := search(words("aaaaaaaa", "b", "cc"), raggedOptions(100.0), 200)
	test.That(t, ok)
	for _, line := range breaks.Lines {
		test.That(t, line.Badness <= 200, "badness within threshold")
	}

	// the only break leaves a line with badness 100
	_, _, _, ok = search(words("aaaaaaaa", "bbb", "cc"), raggedOptions(100.0), 99)
	test.That(t, !ok)
	_, _, breaks, ok = search(words("aaaaaaaa", "bbb", "cc"), raggedOptions(100.0), 100)
	test.That(t, ok)
	test.T(t, breaks.Positions, []int{1, 3})
	test.T(t, breaks.Lines[0].Badness, 100)
	test.T(t, breaks.Lines[0].Fitness, VeryLoose)
}

func TestFindOptimalBreakPointsAdjDemerits(t *testing.T) {
	// a very loose line between two decent lines, the paragraph starts decent
	opts := raggedOptions(100.0)
	_, _, breaks, ok := search(words("aaaaaaaa", "bbb", "cc"), opts, 100)
	test.That(t, ok)
	test.T(t, breaks.TotalDemerits, int64(12200), "no fitness mismatch demerits by default")

	opts.AdjDemerits = 10000
	_, _, breaks, ok = search(words("aaaaaaaa", "bbb", "cc"), opts, 100)
	test.That(t, ok)
	test.T(t, breaks.TotalDemerits, int64(32200))
}

func TestFindOptimalBreakPointsForced(t *testing.T) {
	atoms := append(words("aa", "bb").Penalty(EjectPenalty), words("cc", "dd")...)
	_, bps, breaks, ok := search(atoms, raggedOptions(100.0), InfBad)
	test.That(t, ok)
	test.T(t, len(breaks.Positions), 2)
	test.That(t, bps[breaks.Positions[0]].Forced)

	// no line may pass a forced break
	_, _, _, ok = search(words("aa").Penalty(EjectPenalty).Word("bb", 10.0), raggedOptions(100.0), 200)
	test.That(t, !ok)
}

func TestFindOptimalBreakPointsDisabled(t *testing.T) {
	for _, atoms := range []Atoms{
		words("aaaaaaaa", "b", "cc"),
		words("aaaaaaaaaaaaaaa", "bbbbbbbbbbbbbb"),
		words("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"),
	} {
		_, _, breaks, ok := search(atoms, raggedOptions(50.0), Infeasible)
		test.That(t, ok)
		test.T(t, len(breaks.Positions), 1)
	}
}

func TestFindOptimalBreakPointsShape(t *testing.T) {
	// the first line is shorter
	opts := raggedOptions(100.0)
	opts.ParShape = ParShape{{20.0, 80.0}, {0.0, 100.0}}
	_, _, breaks, ok := search(words("aaaaaaaa", "b", "cc"), opts, 100)
	test.That(t, ok)
	test.T(t, breaks.Positions, []int{1, 3})
}

func TestFindOptimalBreakPointsNegativeDemerits(t *testing.T) {
	// breaking at the encouraging penalty gives a full first line with negative demerits
	opts := DefaultOptions
	opts.HSize = 40.0
	atoms := Atoms{}.Word("aaaa", 10.0).Penalty(-5000).Word("bbbb", 10.0)
	_, bps, breaks, ok := search(atoms, opts, opts.Tolerance)
	test.That(t, ok)
	test.T(t, len(bps), 3)
	test.T(t, breaks.Positions, []int{1, 2})
	test.T(t, breaks.Lines[0].Demerits, int64(100-5000*5000))
	test.T(t, breaks.TotalDemerits, int64(200-5000*5000))

	// breaking after aa is feasible but has positive demerits
	atoms = words("aa", "bb").Penalty(-100).Glue(interword).Word("cc", 10.0)
	_, _, breaks, ok = search(atoms, raggedOptions(50.0), 1000)
	test.That(t, ok)
	test.T(t, breaks.Positions, []int{2, 3})
	test.T(t, breaks.TotalDemerits, int64(-9800))
}

func TestFindOptimalBreakPointsLargeHangAfter(t *testing.T) {
	atoms := words("aaaa", "bbb", "cc", "dddd", "eee", "ff", "gggg", "hhh", "ii", "jjjj")
	_, _, expected, ok := search(atoms, raggedOptions(100.0), 200)
	test.That(t, ok)

	// no line is hung
	opts := raggedOptions(100.0)
	opts.HangIndent = 10.0
	opts.HangAfter = 1000000
	_, _, breaks, ok := search(atoms, opts, 200)
	test.That(t, ok)
	test.T(t, breaks.Positions, expected.Positions)

	// every line is hung
	_, _, expected, ok = search(atoms, raggedOptions(90.0), 200)
	test.That(t, ok)
	opts.HangAfter = -1000000
	_, _, breaks, ok = search(atoms, opts, 200)
	test.That(t, ok)
	test.T(t, breaks.Positions, expected.Positions)
	test.T(t, breaks.TotalDemerits, expected.TotalDemerits)
}
