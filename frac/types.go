// Package frac defines the value types shared by the coefficient solver,
// the position model and the diagnostics engine.
package frac

import (
	"errors"
	"math"
)

// Chain lengths covered by the model.
const (
	// MinChainLen is the shortest modeled polysulfide chain (S4²⁻).
	MinChainLen = 4
	// MaxChainLen is the longest modeled polysulfide chain (S9²⁻).
	MaxChainLen = 9
)

// ErrChainLength indicates a chain length outside the modeled range 4–9,
// or a Chain of unexpected length passed where a specific one is required.
var ErrChainLength = errors.New("frac: chain length outside modeled range 4..9")

// Coefficients holds the four fractionation coefficients solved for one
// (q, p) parameter pair: eb is the additive per-bond offset of the b
// position; fc, fd, fe are multipliers on eb for the c, d, e positions.
type Coefficients struct {
	Eb float64
	Fc float64
	Fd float64
	Fe float64
}

// Finite reports whether all four coefficients are finite. A degenerate
// grid point (eb == 0, hence fc, fd, fe divided by zero) reports false.
func (c Coefficients) Finite() bool {
	return IsFinite(c.Eb) && IsFinite(c.Fc) && IsFinite(c.Fd) && IsFinite(c.Fe)
}

// Plausible reports whether fc, fd and fe satisfy the model's physical
// expectation of being ≥ 1. The solver never enforces this — implausible
// coefficients are values, not errors; filtering is a downstream decision.
func (c Coefficients) Plausible() bool {
	return c.Finite() && c.Fc >= 1 && c.Fd >= 1 && c.Fe >= 1
}

// Chain is the position-resolved composition of one polysulfide chain.
// Positions run outermost-first (role a, then b, ...), one entry per
// distinct symmetric role; Bulk is the abundance-weighted chain average.
type Chain struct {
	N         int
	Positions []float64
	Bulk      float64
}

// Pyrite returns the pyrite-forming composition of the chain: the mean of
// its two outermost positions, modeling pyrite nucleating from the
// chain's terminal sulfur pair.
func (c Chain) Pyrite() float64 {
	return (c.Positions[0] + c.Positions[1]) / 2
}

// Diagnostics bundles the derived scalar quantities for one grid point.
type Diagnostics struct {
	// PyriteS4..PyriteS6 are the pyrite-forming compositions of the
	// S4, S5 and S6 chains.
	PyriteS4 float64
	PyriteS5 float64
	PyriteS6 float64

	// S8Disp is the post-disproportionation S8 composition derived from
	// the S9 chain (one terminal sulfur lost).
	S8Disp float64

	// DiffS8Pyrite is the primary diagnostic: S8Disp minus the S5-derived
	// pyrite composition.
	DiffS8Pyrite float64

	// DiffS8PyriteAlt is the secondary variant: the plain S8 bulk average
	// minus the S6-derived pyrite composition. It is reported under its
	// own name and never substituted for the primary.
	DiffS8PyriteAlt float64

	// ABGap..DEGap are adjacent-position differences within the S9 chain.
	// Under the model's linear structure they are identical for every
	// chain length that carries the pair.
	ABGap float64
	BCGap float64
	CDGap float64
	DEGap float64
}

// IsFinite reports whether x is neither NaN nor ±Inf. Degenerate grid
// points surface as non-finite values throughout the model, so callers
// mask with this predicate rather than handling errors.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
