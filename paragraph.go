package linebreak

// Hyphenator inserts discretionaries into the words of a horizontal list. It may modify the list in place and returns the result.
type Hyphenator interface {
	Hyphenate(Atoms) Atoms
}

// finishParagraph ends the paragraph as TeX does: trailing glue is removed, and an unbreakable penalty, the parfillskip, and a forced break are appended. The input is not modified.
func finishParagraph(atoms Atoms, parFillSkip Glue) Atoms {
	n := len(atoms)
	if 0 < n && atoms[n-1].Kind == GlueKind {
		n--
	}
	par := make(Atoms, n, n+3)
	copy(par, atoms[:n])
	return par.Penalty(InfPenalty).Glue(parFillSkip).Penalty(EjectPenalty)
}

// Break breaks the paragraph into lines of the given shape, or of the shape implied by the options if shape is nil. It tries up to three passes: with the pretolerance and without hyphenation, with the tolerance after hyphenating the paragraph if hyph is not nil, and with the tolerance and the emergency stretch if it is positive. If all passes fail, the paragraph is broken only at its forced breaks and the result may be overfull. An error is returned only for an invalid shape or invalid options.
func Break(atoms Atoms, shape Shape, opts Options, hyph Hyphenator) (VList, error) {
	if shape == nil {
		shape = opts.Shape()
	}
	if err := ValidateShape(shape); err != nil {
		return nil, err
	} else if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	atoms = finishParagraph(atoms, opts.ParFillSkip)
	bps := makeBreakPoints(atoms, opts.HyphenPenalty, opts.ExHyphenPenalty)

	var breaks *Breaks
	ok := false
	if 0 <= opts.Pretolerance {
		breaks, ok = findOptimalBreakPoints(bps, newSearchParams(opts, shape, opts.Pretolerance, false))
		if !ok {
			log.Debug("first pass failed", "pretolerance", opts.Pretolerance, "breakpoints", len(bps))
		}
	}
	if !ok {
		if hyph != nil {
			log.Debug("hyphenating paragraph", "atoms", len(atoms))
			atoms = hyph.Hyphenate(atoms)
			bps = makeBreakPoints(atoms, opts.HyphenPenalty, opts.ExHyphenPenalty)
		}
		breaks, ok = findOptimalBreakPoints(bps, newSearchParams(opts, shape, opts.Tolerance, false))
		if !ok && 0.0 < opts.EmergencyStretch {
			log.Debug("second pass failed", "tolerance", opts.Tolerance, "breakpoints", len(bps))
			log.Info("emergency pass", "emergencystretch", opts.EmergencyStretch)
			breaks, ok = findOptimalBreakPoints(bps, newSearchParams(opts, shape, opts.Tolerance, true))
		}
	}

	params := newSearchParams(opts, shape, Infeasible, false)
	if !ok {
		breaks = forcedBreaks(bps, params)
		log.Warn("no feasible breaks, paragraph set overfull", "tolerance", opts.Tolerance, "lines", len(breaks.Positions))
	}
	return splitNodeList(atoms, bps, breaks, params), nil
}

////////////////////////////////////////////////////////////////

// Typesetter breaks consecutive paragraphs with the same options. The shape set by SetShape applies to the next paragraph only, as do ParShape, HangIndent, and HangAfter of the options.
type Typesetter struct {
	Options
	Hyphenator Hyphenator // optional

	shape Shape
}

// NewTypesetter returns a typesetter with the given options and optional hyphenator.
func NewTypesetter(opts Options, hyph Hyphenator) *Typesetter {
	return &Typesetter{
		Options:    opts,
		Hyphenator: hyph,
	}
}

// SetShape sets the shape of the next paragraph.
func (t *Typesetter) SetShape(shape Shape) {
	t.shape = shape
}

// Shape returns the shape of the next paragraph.
func (t *Typesetter) Shape() Shape {
	if t.shape != nil {
		return t.shape
	}
	return t.Options.Shape()
}

// Paragraph breaks a paragraph into lines. Afterwards, also when it fails, the shape is reset.
func (t *Typesetter) Paragraph(atoms Atoms) (VList, error) {
	defer t.resetShape()
	return Break(atoms, t.Shape(), t.Options, t.Hyphenator)
}

func (t *Typesetter) resetShape() {
	t.shape = nil
	t.ParShape = nil
	t.HangIndent = 0.0
	t.HangAfter = 1
}
