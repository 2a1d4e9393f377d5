package linebreak

import "fmt"

// Fitness classifies a line by how much its spaces were stretched or shrunk. Consecutive lines whose classes are not adjacent look uneven.
type Fitness int

// see Fitness
const (
	VeryLoose Fitness = iota
	Loose
	Decent
	Tight
)

func (f Fitness) String() string {
	switch f {
	case VeryLoose:
		return "VeryLoose"
	case Loose:
		return "Loose"
	case Decent:
		return "Decent"
	case Tight:
		return "Tight"
	}
	return fmt.Sprintf("Fitness(%d)", int(f))
}

// Adjacent returns true if the ranks of both classes differ by at most one.
func (f Fitness) Adjacent(g Fitness) bool {
	d := int(f) - int(g)
	return -1 <= d && d <= 1
}

// stretchFitness classifies a line that has to be stretched with the given badness.
func stretchFitness(badness int) Fitness {
	if badness < 12 {
		return Decent
	} else if badness < 99 {
		return Loose
	}
	return VeryLoose
}

// shrinkFitness classifies a line that has to be shrunk with the given badness.
func shrinkFitness(badness int) Fitness {
	if 12 < badness {
		return Tight
	}
	return Decent
}
