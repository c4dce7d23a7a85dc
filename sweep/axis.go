package sweep

import (
	"math"

	"github.com/isoschem/polysulf/isoref"
)

// NewAxis builds an evenly spaced axis of n points over [lo, hi], inclusive
// of both endpoints. The first and last elements are set to lo and hi
// exactly (no accumulated step drift), interior points at lo + i·step with
// step = (hi−lo)/(n−1).
//
// Errors: ErrAxisLength when n < 2; ErrAxisBounds when a bound is
// non-finite or lo ≥ hi.
func NewAxis(lo, hi float64, n int) (Axis, error) {
	if n < 2 {
		return nil, ErrAxisLength
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return nil, ErrAxisBounds
	}

	ax := make(Axis, n)
	step := (hi - lo) / float64(n-1)
	for i := range ax {
		ax[i] = lo + float64(i)*step
	}
	// Pin the upper endpoint exactly; the degenerate q = d4_in corner of the
	// default grid relies on hitting the bound bit-for-bit.
	ax[n-1] = hi

	return ax, nil
}

// Step returns the (uniform) spacing between consecutive axis values.
func (a Axis) Step() float64 {
	return (a[len(a)-1] - a[0]) / float64(len(a)-1)
}

// DefaultAxes builds the canonical axes for a reference dataset: q spans
// QBounds at QSteps resolution, p spans [PMin, PMax] at PSteps resolution.
func DefaultAxes(ref isoref.Values) (q, p Axis) {
	qlo, qhi := ref.QBounds()

	// The published dataset always yields valid bounds; a malformed custom
	// dataset surfaces here rather than mid-sweep.
	q, err := NewAxis(qlo, qhi, QSteps)
	if err != nil {
		panic(err)
	}
	p, err = NewAxis(PMin, PMax, PSteps)
	if err != nil {
		panic(err)
	}

	return q, p
}
