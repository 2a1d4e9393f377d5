package linebreak

import "fmt"

// LineFit rates a single line of a solution.
type LineFit struct {
	Badness  int
	Fitness  Fitness
	Demerits int64
}

// Breaks is a solution to breaking a paragraph: the chosen break points in order, the last being the final break of the paragraph.
type Breaks struct {
	TotalDemerits int64
	Positions     []int     // indices into the break points, excluding the start of the paragraph
	Lines         []LineFit // rating of the line ending at the break point of the same index
}

func (br *Breaks) String() string {
	return fmt.Sprintf("Breaks[d=%d %v]", br.TotalDemerits, br.Positions)
}

// searchParams are the parameters of a single pass.
type searchParams struct {
	Options
	shape      Shape
	background WideGlue // left and right skip, plus the emergency stretch in the final pass
	threshold  int
}

func newSearchParams(opts Options, shape Shape, threshold int, emergency bool) searchParams {
	background := opts.LeftSkip.Wide().Add(opts.RightSkip)
	if emergency {
		background = background.Add(Glue{Stretch: Pts(opts.EmergencyStretch)})
	}
	return searchParams{
		Options:    opts,
		shape:      shape,
		background: background,
		threshold:  threshold,
	}
}

func (p searchParams) length(line int) float64 {
	_, length := p.shape.Line(line)
	return length
}

// demerits returns the demerits of the line from break point i to j, given the fitness classes of the previous and of this line.
func (p searchParams) demerits(bps BreakPoints, i, j, badness int, prev, fitness Fitness) int64 {
	d := lineDemerits(p.LinePenalty, badness, bps[j].Penalty)
	if bps[i].Hyphenated {
		if j == len(bps)-1 {
			d += int64(p.FinalHyphenDemerits)
		} else if bps[j].Hyphenated {
			d += int64(p.DoubleHyphenDemerits)
		}
	}
	if !prev.Adjacent(fitness) {
		d += int64(p.AdjDemerits)
	}
	return d
}

// searchState is the best continuation from a break point, given the fitness class of the line ending there and the number of lines before it.
type searchState struct {
	reachable bool  // the end of the paragraph can be reached
	cost      int64 // total demerits until the end of the paragraph
	next      int
	fitness   Fitness
	line      LineFit
}

// findOptimalBreakPoints finds the sequence of break points with the least total demerits whose lines all have a badness within the threshold of the pass. Each line ends at a later break point than the previous, and no line passes a forced break. Of equally good continuations the one with the earliest break is kept. It returns false if no such sequence exists.
//
// The search is a dynamic program over the break points from last to first, where the state is the break point, the fitness class of the line ending there, and the line number up to the last line with a special shape. The chosen break points are activated with the fitness class of their line, all others are passive.
func findOptimalBreakPoints(bps BreakPoints, p searchParams) (*Breaks, bool) {
	for i := range bps {
		bps[i].deactivate()
	}
	if len(bps) < 2 {
		return nil, false
	} else if Infeasible <= p.threshold {
		return forcedBreaks(bps, p), true
	}

	last := len(bps) - 1
	special := min(p.shape.Lines(), last) // a paragraph has no more lines than break points
	n := special + 1
	index := func(k int, f Fitness, l int) int {
		return (k*4+int(f))*n + l
	}

	states := make([]searchState, len(bps)*4*n)
	for i := last - 1; 0 <= i; i-- {
		for f := VeryLoose; f <= Tight; f++ {
			for l := 0; l < n; l++ {
				if i == 0 && (f != Decent || l != 0) {
					continue // the paragraph starts as if after a decent line
				}
				s := &states[index(i, f, l)]
				length := p.length(l)
				nextLine := min(l+1, special)
				widths := WideGlue{}
				for j := i + 1; j <= last; j++ {
					widths = widths.AddWide(bps[j].Width)
					w := p.background.AddWide(lineMaterial(bps, i, j, widths))
					badness, fitness, overfull := computeDemerits(w, length, p.threshold)
					if badness != Infeasible {
						d := p.demerits(bps, i, j, badness, f, fitness)
						cost, reachable := d, true
						if j != last {
							next := states[index(j, fitness, nextLine)]
							cost, reachable = cost+next.cost, next.reachable
						}
						if reachable && (!s.reachable || cost < s.cost) {
							*s = searchState{
								reachable: true,
								cost:      cost,
								next:      j,
								fitness:   fitness,
								line:      LineFit{badness, fitness, d},
							}
						}
					}
					if overfull || bps[j].Forced {
						break
					}
				}
			}
		}
	}

	start := states[index(0, Decent, 0)]
	if !start.reachable {
		return nil, false
	}

	breaks := &Breaks{TotalDemerits: start.cost}
	k, f, l := 0, Decent, 0
	for k != last {
		s := states[index(k, f, l)]
		breaks.Positions = append(breaks.Positions, s.next)
		breaks.Lines = append(breaks.Lines, s.line)
		bps[s.next].activate(s.fitness)
		k, f, l = s.next, s.fitness, min(l+1, special)
	}
	return breaks, true
}

// forcedBreaks breaks only at the forced breaks, regardless of how bad the lines become.
func forcedBreaks(bps BreakPoints, p searchParams) *Breaks {
	breaks := &Breaks{}
	i, prev := 0, Decent
	for j := 1; j < len(bps); j++ {
		if !bps[j].Forced && j != len(bps)-1 {
			continue
		}
		badness, fitness := rateLine(p.background.AddWide(lineContent(bps, i, j)), p.length(len(breaks.Positions)))
		d := p.demerits(bps, i, j, min(badness, InfBad), prev, fitness)
		breaks.TotalDemerits += d
		breaks.Positions = append(breaks.Positions, j)
		breaks.Lines = append(breaks.Lines, LineFit{badness, fitness, d})
		bps[j].activate(fitness)
		i, prev = j, fitness
	}
	return breaks
}
