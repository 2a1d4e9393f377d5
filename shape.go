package linebreak

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when a paragraph shape yields unusable line lengths.
var ErrInvalidShape = errors.New("invalid paragraph shape")

// Shape supplies the indentation and length of every line of a paragraph, where i is the zero-based line index.
type Shape interface {
	Line(i int) (indent, length float64)

	// Lines returns the number of lines with a special shape, after which all lines are equal to the last.
	Lines() int
}

// FixedShape gives all lines the same length without indentation.
type FixedShape float64

func (s FixedShape) Line(int) (float64, float64) {
	return 0.0, float64(s)
}

func (s FixedShape) Lines() int {
	return 0
}

// HangingShape hangs lines by Indent, measured from the left if Indent is positive and from the right if negative. If After is non-negative, lines after the first After lines are hung, otherwise the first -After lines are hung.
type HangingShape struct {
	HSize  float64
	Indent float64
	After  int
}

func (s HangingShape) hung(i int) bool {
	if s.After < 0 {
		return i < -s.After
	}
	return s.After <= i
}

func (s HangingShape) Line(i int) (float64, float64) {
	if s.Indent == 0.0 || !s.hung(i) {
		return 0.0, s.HSize
	} else if s.Indent < 0.0 {
		return 0.0, s.HSize + s.Indent
	}
	return s.Indent, s.HSize - s.Indent
}

func (s HangingShape) Lines() int {
	if s.After < 0 {
		return -s.After
	}
	return s.After
}

// LineSpec is the indentation and length of a single line.
type LineSpec struct {
	Indent, Length float64
}

// ParShape gives each line its own indentation and length, the last entry repeats for all following lines.
type ParShape []LineSpec

func (s ParShape) Line(i int) (float64, float64) {
	if len(s) == 0 {
		return 0.0, 0.0
	} else if len(s) <= i {
		i = len(s) - 1
	}
	return s[i].Indent, s[i].Length
}

func (s ParShape) Lines() int {
	return len(s)
}

// ValidateShape checks that every distinct line of the shape has a positive length.
func ValidateShape(shape Shape) error {
	if shape == nil {
		return fmt.Errorf("%w: no shape", ErrInvalidShape)
	}
	if s, ok := shape.(ParShape); ok && len(s) == 0 {
		return fmt.Errorf("%w: empty parshape", ErrInvalidShape)
	}
	for i := 0; i <= shape.Lines(); i++ {
		if _, length := shape.Line(i); length <= 0.0 {
			return fmt.Errorf("%w: line %d has length %v", ErrInvalidShape, i+1, num(length))
		}
	}
	return nil
}
