// Package polysulf models steady-state sulfur-isotope fractionation in a
// polysulfide–sulfide–pyrite system, from closed-form coefficient solving
// to dense parameter-sweep result grids.
//
// 🚀 What is polysulf?
//
//	A pure-Go model of δ34S partitioning along polysulfide chains (S4²⁻–S9²⁻):
//		• Reference data: measured & extrapolated isotopic compositions
//		• Coefficient solver: closed-form back-substitution for eb, fc, fd, fe
//		• Position model: position-resolved and bulk δ34S per chain length 4–9
//		• Diagnostics: pyrite-forming compositions, S9→S8 disproportionation,
//		  adjacent-position gaps
//		• Sweep driver: evaluates the whole model over a dense (q, p) grid,
//		  optionally in parallel, into named 2D result grids
//
// ✨ Why choose polysulf?
//
//   - Deterministic — every grid point is a pure function of (q, p) and the
//     reference values; serial and parallel sweeps agree cell for cell
//   - Permissive by design — degenerate (eb = 0) and physically implausible
//     (fc, fd, fe < 1) points are tagged, never rejected
//   - Pure Go — no cgo, minimal deps
//
// Everything is organized under three subpackages:
//
//	isoref/ — reference constants: measured & extrapolated δ34S values
//	frac/   — the core: coefficient solver, position model, diagnostics
//	sweep/  — grid axes, dense result grids, (parallel) sweep driver
//
// Quick sketch of a chain of length 7 (positions symmetric from both ends):
//
//	a─b─c─d─c─b─a
//
// where positions carry δ34S = q + 3p + {0, eb, fc·eb, fd·eb} for roles a..d.
//
// Dive into examples/ for a full sweep and a single-point profile walkthrough.
//
//	go get github.com/isoschem/polysulf
package polysulf
