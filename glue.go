package linebreak

import (
	"fmt"
	"strings"
)

// Order is the order of infinity of a stretch or shrink amount. Amounts of a higher order dominate those of a lower order completely.
type Order int

// see Order
const (
	Finite Order = iota
	Fil
	Fill
	Filll
)

func (o Order) String() string {
	switch o {
	case Finite:
		return "pt"
	case Fil:
		return "fil"
	case Fill:
		return "fill"
	case Filll:
		return "filll"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Amount is a stretch or shrink amount of a given order.
type Amount struct {
	Value float64
	Order
}

// Fils returns an amount of first order infinity.
func Fils(v float64) Amount {
	return Amount{v, Fil}
}

// Pts returns a finite amount.
func Pts(v float64) Amount {
	return Amount{v, Finite}
}

// IsZero returns true if the amount has no influence.
func (a Amount) IsZero() bool {
	return a.Value == 0.0
}

// Add adds two amounts. Amounts of equal order are summed, otherwise the amount of the higher order is returned unchanged.
func (a Amount) Add(b Amount) Amount {
	if b.IsZero() {
		return a
	} else if a.IsZero() {
		return b
	} else if a.Order == b.Order {
		return Amount{a.Value + b.Value, a.Order}
	} else if a.Order < b.Order {
		return b
	}
	return a
}

// Sub subtracts b from a following the same dominance rule as Add.
func (a Amount) Sub(b Amount) Amount {
	return a.Add(b.Neg())
}

// Neg negates the amount.
func (a Amount) Neg() Amount {
	return Amount{-a.Value, a.Order}
}

func (a Amount) String() string {
	return num(a.Value).String() + a.Order.String()
}

// Glue is a length with stretchability and shrinkability.
type Glue struct {
	Width   float64
	Stretch Amount
	Shrink  Amount
}

// NewGlue returns glue with finite stretch and shrink.
func NewGlue(width, stretch, shrink float64) Glue {
	return Glue{width, Pts(stretch), Pts(shrink)}
}

// Length returns rigid glue of the given width.
func Length(width float64) Glue {
	return Glue{Width: width}
}

// Add adds glue g and h, see Amount.Add for how stretch and shrink of different orders combine.
func (g Glue) Add(h Glue) Glue {
	return Glue{
		Width:   g.Width + h.Width,
		Stretch: g.Stretch.Add(h.Stretch),
		Shrink:  g.Shrink.Add(h.Shrink),
	}
}

// Sub subtracts h from g.
func (g Glue) Sub(h Glue) Glue {
	return g.Add(h.Neg())
}

// Neg negates all components.
func (g Glue) Neg() Glue {
	return Glue{-g.Width, g.Stretch.Neg(), g.Shrink.Neg()}
}

// Scale scales all components by f.
func (g Glue) Scale(f float64) Glue {
	return Glue{g.Width * f, Amount{g.Stretch.Value * f, g.Stretch.Order}, Amount{g.Shrink.Value * f, g.Shrink.Order}}
}

// IsZero returns true for glue without width, stretch, or shrink.
func (g Glue) IsZero() bool {
	return g.Width == 0.0 && g.Stretch.IsZero() && g.Shrink.IsZero()
}

// Equals returns true if both glues are equal within Epsilon.
func (g Glue) Equals(h Glue) bool {
	return equal(g.Width, h.Width) && equal(g.Stretch.Value, h.Stretch.Value) && equal(g.Shrink.Value, h.Shrink.Value) &&
		(g.Stretch.Order == h.Stretch.Order || g.Stretch.IsZero()) && (g.Shrink.Order == h.Shrink.Order || g.Shrink.IsZero())
}

func (g Glue) String() string {
	sb := strings.Builder{}
	sb.WriteString(num(g.Width).String())
	sb.WriteString("pt")
	if !g.Stretch.IsZero() {
		sb.WriteString(" plus ")
		sb.WriteString(g.Stretch.String())
	}
	if !g.Shrink.IsZero() {
		sb.WriteString(" minus ")
		sb.WriteString(g.Shrink.String())
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// WideGlue accumulates glue without losing the lower order amounts, so that subtractions later on restore them exactly. It collapses to Glue by keeping the highest non-zero order.
type WideGlue struct {
	Width   float64
	Stretch [4]float64
	Shrink  [4]float64
}

// Wide converts g into an accumulator.
func (g Glue) Wide() WideGlue {
	w := WideGlue{Width: g.Width}
	w.Stretch[g.Stretch.Order] = g.Stretch.Value
	w.Shrink[g.Shrink.Order] = g.Shrink.Value
	return w
}

// Add returns w with glue g added.
func (w WideGlue) Add(g Glue) WideGlue {
	w.Width += g.Width
	w.Stretch[g.Stretch.Order] += g.Stretch.Value
	w.Shrink[g.Shrink.Order] += g.Shrink.Value
	return w
}

// Sub returns w with glue g subtracted.
func (w WideGlue) Sub(g Glue) WideGlue {
	w.Width -= g.Width
	w.Stretch[g.Stretch.Order] -= g.Stretch.Value
	w.Shrink[g.Shrink.Order] -= g.Shrink.Value
	return w
}

// AddWide returns the sum of both accumulators.
func (w WideGlue) AddWide(v WideGlue) WideGlue {
	w.Width += v.Width
	for i := range w.Stretch {
		w.Stretch[i] += v.Stretch[i]
		w.Shrink[i] += v.Shrink[i]
	}
	return w
}

// SubWide returns the difference of both accumulators.
func (w WideGlue) SubWide(v WideGlue) WideGlue {
	w.Width -= v.Width
	for i := range w.Stretch {
		w.Stretch[i] -= v.Stretch[i]
		w.Shrink[i] -= v.Shrink[i]
	}
	return w
}

// StretchAmount returns the dominant stretch amount.
func (w WideGlue) StretchAmount() Amount {
	return collapse(w.Stretch)
}

// ShrinkAmount returns the dominant shrink amount.
func (w WideGlue) ShrinkAmount() Amount {
	return collapse(w.Shrink)
}

// Glue collapses the accumulator.
func (w WideGlue) Glue() Glue {
	return Glue{w.Width, w.StretchAmount(), w.ShrinkAmount()}
}

func (w WideGlue) String() string {
	return w.Glue().String()
}

func collapse(v [4]float64) Amount {
	for o := Filll; Finite < o; o-- {
		if Epsilon < v[o] || v[o] < -Epsilon {
			return Amount{v[o], o}
		}
	}
	return Amount{v[Finite], Finite}
}
