package linebreak

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidOption is returned for option values that cannot be used, ErrUnknownOption for option names that do not exist.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrUnknownOption = errors.New("unknown option")
)

// Options are the typesetting parameters that influence line breaking. They are read once at the start of breaking a paragraph and are never modified by it.
type Options struct {
	Pretolerance         int // badness threshold of the first pass, negative skips the pass
	Tolerance            int // badness threshold of the second and third pass
	HyphenPenalty        int // penalty for breaking at a discretionary with pre-break material
	ExHyphenPenalty      int // penalty for breaking at a discretionary without pre-break material
	LinePenalty          int // added to the badness of every line
	AdjDemerits          int // demerits for consecutive lines with non-adjacent fitness classes
	DoubleHyphenDemerits int // demerits for consecutive lines ending in a discretionary
	FinalHyphenDemerits  int // demerits for a penultimate line ending in a discretionary
	HangAfter            int

	LeftSkip, RightSkip, ParFillSkip Glue

	HSize, HangIndent, EmergencyStretch float64
	ParShape                            ParShape
}

// DefaultOptions are the plain TeX defaults, with a line length of 345pt.
var DefaultOptions = Options{
	Pretolerance:         100,
	Tolerance:            200,
	HyphenPenalty:        50,
	ExHyphenPenalty:      50,
	LinePenalty:          10,
	AdjDemerits:          0,
	DoubleHyphenDemerits: 10000,
	FinalHyphenDemerits:  5000,
	HangAfter:            1,
	ParFillSkip:          Glue{Stretch: Fils(1.0)},
	HSize:                345.0,
}

var intOptions = map[string]func(*Options) *int{
	"pretolerance":         func(o *Options) *int { return &o.Pretolerance },
	"tolerance":            func(o *Options) *int { return &o.Tolerance },
	"hyphenpenalty":        func(o *Options) *int { return &o.HyphenPenalty },
	"exhyphenpenalty":      func(o *Options) *int { return &o.ExHyphenPenalty },
	"linepenalty":          func(o *Options) *int { return &o.LinePenalty },
	"adjdemerits":          func(o *Options) *int { return &o.AdjDemerits },
	"doublehyphendemerits": func(o *Options) *int { return &o.DoubleHyphenDemerits },
	"finalhyphendemerits":  func(o *Options) *int { return &o.FinalHyphenDemerits },
	"hangafter":            func(o *Options) *int { return &o.HangAfter },
}

var glueOptions = map[string]func(*Options) *Glue{
	"leftskip":    func(o *Options) *Glue { return &o.LeftSkip },
	"rightskip":   func(o *Options) *Glue { return &o.RightSkip },
	"parfillskip": func(o *Options) *Glue { return &o.ParFillSkip },
}

var lengthOptions = map[string]func(*Options) *float64{
	"hsize":            func(o *Options) *float64 { return &o.HSize },
	"hangindent":       func(o *Options) *float64 { return &o.HangIndent },
	"emergencystretch": func(o *Options) *float64 { return &o.EmergencyStretch },
}

// OptionKind is the value type of a named option.
type OptionKind int

// see OptionKind
const (
	UnknownOption OptionKind = iota
	IntOption
	GlueOption
	LengthOption
)

// OptionKindOf returns the value type of the named option.
func OptionKindOf(name string) OptionKind {
	if _, ok := intOptions[name]; ok {
		return IntOption
	} else if _, ok := glueOptions[name]; ok {
		return GlueOption
	} else if _, ok := lengthOptions[name]; ok {
		return LengthOption
	}
	return UnknownOption
}

// OptionNames returns the names of all named options in alphabetical order.
func OptionNames() []string {
	names := []string{}
	for name := range intOptions {
		names = append(names, name)
	}
	for name := range glueOptions {
		names = append(names, name)
	}
	for name := range lengthOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Int returns the named integer option.
func (o Options) Int(name string) (int, bool) {
	if f, ok := intOptions[name]; ok {
		return *f(&o), true
	}
	return 0, false
}

// GlueOf returns the named glue option.
func (o Options) GlueOf(name string) (Glue, bool) {
	if f, ok := glueOptions[name]; ok {
		return *f(&o), true
	}
	return Glue{}, false
}

// Length returns the named length option.
func (o Options) Length(name string) (float64, bool) {
	if f, ok := lengthOptions[name]; ok {
		return *f(&o), true
	}
	return 0.0, false
}

// SetInt sets the named integer option.
func (o *Options) SetInt(name string, v int) error {
	f, ok := intOptions[name]
	if !ok {
		return fmt.Errorf("%w: %s is not an integer option", ErrUnknownOption, name)
	}
	*f(o) = v
	return nil
}

// SetGlue sets the named glue option.
func (o *Options) SetGlue(name string, g Glue) error {
	f, ok := glueOptions[name]
	if !ok {
		return fmt.Errorf("%w: %s is not a glue option", ErrUnknownOption, name)
	}
	*f(o) = g
	return nil
}

// SetLength sets the named length option.
func (o *Options) SetLength(name string, v float64) error {
	f, ok := lengthOptions[name]
	if !ok {
		return fmt.Errorf("%w: %s is not a length option", ErrUnknownOption, name)
	}
	*f(o) = v
	return nil
}

// Shape returns the paragraph shape implied by the options: the parshape if set, otherwise hanging indentation if set, otherwise a fixed line length of HSize.
func (o Options) Shape() Shape {
	if 0 < len(o.ParShape) {
		return o.ParShape
	} else if o.HangIndent != 0.0 {
		return HangingShape{HSize: o.HSize, Indent: o.HangIndent, After: o.HangAfter}
	}
	return FixedShape(o.HSize)
}

// Validate returns an error for options that cannot be used to break a paragraph.
func (o Options) Validate() error {
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative", ErrInvalidOption)
	} else if o.EmergencyStretch < 0.0 {
		return fmt.Errorf("%w: emergencystretch must be non-negative", ErrInvalidOption)
	} else if o.LinePenalty < 0 || o.AdjDemerits < 0 || o.DoubleHyphenDemerits < 0 || o.FinalHyphenDemerits < 0 {
		return fmt.Errorf("%w: demerits must be non-negative", ErrInvalidOption)
	}
	for _, g := range []Glue{o.LeftSkip, o.RightSkip, o.ParFillSkip} {
		if g.Stretch.Value < 0.0 || g.Shrink.Value < 0.0 {
			return fmt.Errorf("%w: skip %v has negative stretch or shrink", ErrInvalidOption, g)
		}
	}
	return nil
}
