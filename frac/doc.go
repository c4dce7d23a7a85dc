// Package frac is the core of the polysulfide fractionation model: it solves
// the closed-form fractionation coefficients for a single (q, p) parameter
// pair, expands them into position-resolved chain compositions, and derives
// the cross-checking diagnostics.
//
// 🚀 What does frac compute?
//
//	For a baseline offset q and per-bond increment p:
//	  • SolveCoefficients — eb, fc, fd, fe by algebraic back-substitution
//	    through the S4, S5, S7 chain-average equations and the S9→S8
//	    disproportionation mass balance (order matters; no iteration).
//	  • BuildChain / AllChains — position values a..e and abundance-weighted
//	    bulk δ34S for chain lengths 4–9.
//	  • DisproportionateS8 — the post-disproportionation S8 composition,
//	    an 8-atom weighted average over the 9 original chain positions.
//	  • Derive — pyrite-forming compositions (terminal pair of S4/S5/S6),
//	    the S8-vs-pyrite offset, and adjacent-position gaps.
//	  • Evaluate — the full bundle for one grid point, as a pure function.
//
// ⚙️ Usage:
//
//	ref := isoref.Default()
//	coef, chains, diag := frac.Evaluate(ref, -0.5, 0.65)
//	fmt.Println(coef.Eb, diag.DiffS8Pyrite)
//
// Numeric policy:
//
//   - q == d4_in makes eb zero and fc, fd, fe non-finite; the solver never
//     errors or special-cases this — probe with Coefficients.Finite and mask
//     downstream.
//   - fc, fd, fe < 1 is physically implausible but permitted; probe with
//     Coefficients.Plausible. Filtering is the caller's decision.
//
// Complexity: every operation is O(1) in time and memory (chains hold at
// most five distinct positions).
//
// Errors:
//
//   - ErrChainLength: chain length outside the modeled range 4–9, or a
//     composition of the wrong length handed to DisproportionateS8 / Derive.
package frac
