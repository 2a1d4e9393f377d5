package linebreak

import "math"

// InfBad is the badness of a line that cannot be stretched enough, Infeasible the badness of a line that cannot be used at all.
const (
	InfBad     = 10000
	Infeasible = InfBad + 1
)

// Lines that fall short by more than LargeShortfall while having less than SmallStretch are infinitely bad. These are 7230584sp and 1663497sp in points.
const (
	LargeShortfall = 7230584.0 / 65536.0
	SmallStretch   = 1663497.0 / 65536.0
)

// Badness returns approximately 100(t/s)^3, the badness of a line that must stretch or shrink by t where s is available.
func Badness(t, s float64) int {
	if t <= 0.0 {
		return 0
	} else if s <= 0.0 {
		return InfBad
	}
	r := t / s
	if 5.0 < r {
		return InfBad
	}
	return min(InfBad, int(math.Round(100.0*r*r*r)))
}

// computeDemerits rates a line with material w, including the background material (left and right skip, and emergency stretch), set to the target line length. It returns the badness and fitness class of the line, or Infeasible if its badness exceeds threshold. Overfull is true when the line cannot shrink enough, so that lines ending at later break points cannot fit either.
func computeDemerits(w WideGlue, length float64, threshold int) (int, Fitness, bool) {
	badness, fitness := rateLine(w, length)
	if badness == Infeasible {
		return Infeasible, fitness, true
	} else if threshold < badness {
		return Infeasible, fitness, false
	}
	return badness, fitness, false
}

// rateLine returns the badness and fitness class of line content w set to the given length.
func rateLine(w WideGlue, length float64) (int, Fitness) {
	shortfall := length - w.Width
	if equal(shortfall, 0.0) {
		return 0, Decent
	} else if 0.0 < shortfall {
		stretch := w.StretchAmount()
		if stretch.Order != Finite {
			return 0, Decent
		} else if LargeShortfall < shortfall && stretch.Value < SmallStretch {
			return InfBad, VeryLoose
		}
		badness := Badness(shortfall, stretch.Value)
		return badness, stretchFitness(badness)
	}

	shrink := w.ShrinkAmount()
	if shrink.Order != Finite {
		return 0, Decent
	} else if shrink.Value < -shortfall-Epsilon {
		return Infeasible, Tight
	}
	badness := Badness(-shortfall, shrink.Value)
	return badness, shrinkFitness(badness)
}

// lineDemerits returns the demerits of a line with the given badness ending at a break with the given penalty.
func lineDemerits(linePenalty, badness, penalty int) int64 {
	d := int64(linePenalty + badness)
	if 10000 <= d || d <= -10000 {
		d = 100000000
	} else {
		d *= d
	}
	if 0 < penalty {
		d += int64(penalty) * int64(penalty)
	} else if EjectPenalty < penalty && penalty < 0 {
		d -= int64(penalty) * int64(penalty)
	}
	return d
}
