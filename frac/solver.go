package frac

import "github.com/isoschem/polysulf/isoref"

// SolveCoefficients computes the four fractionation coefficients for one
// (q, p) parameter pair by closed-form back-substitution. The system is
// exactly determined; no iteration is involved.
//
// Derivation order (each step feeds the next):
//
//  1. eb from the two-position S4 chain-average equation:
//     eb = 2·d4_in − 2·q
//  2. fc from the three-position S5 chain-average equation:
//     fc = (5·d5_in − 2·eb − 5·q − 5·p) / eb
//  3. fd from the four-position S7 chain-average equation:
//     fd = (7·d7_in − 7·q − 21·p − 2·eb − 2·fc·eb) / eb
//  4. fe from the S9→S8 disproportionation mass balance:
//     fe = (8·S8HSOffset − 2·eb − 2·fc·eb − 2·fd·eb) / eb
//
// When q equals d4_in exactly, eb is 0 and fc, fd, fe come out non-finite.
// That is deliberate: the degenerate point is surfaced as ±Inf/NaN values
// for the caller to mask, never as an error or a panic.
func SolveCoefficients(ref isoref.Values, q, p float64) Coefficients {
	eb := 2*ref.D4In() - 2*q
	fc := (5*ref.D5In() - 2*eb - 5*q - 5*p) / eb
	fd := (7*ref.D7In() - 7*q - 21*p - 2*eb - 2*fc*eb) / eb
	fe := (8*ref.S8HSOffset - 2*eb - 2*fc*eb - 2*fd*eb) / eb

	return Coefficients{Eb: eb, Fc: fc, Fd: fd, Fe: fe}
}

// Evaluate runs the full model for one grid point: solve the coefficients,
// expand all chain compositions, derive the diagnostics. It is a pure
// function of (ref, q, p) — grid points are mutually independent, which is
// what lets the sweep driver parallelize without coordination.
//
// The same call serves the single highlighted (q1, p1) profile: re-run it
// once at the point of interest instead of reading grids.
func Evaluate(ref isoref.Values, q, p float64) (Coefficients, []Chain, Diagnostics) {
	coef := SolveCoefficients(ref, q, p)
	chains := AllChains(q, p, coef)

	// AllChains returns exactly the lengths Derive expects, so the error
	// path is unreachable here.
	diag, _ := Derive(chains)

	return coef, chains, diag
}
