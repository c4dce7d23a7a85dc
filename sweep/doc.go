// Package sweep evaluates the polysulfide fractionation model over a dense
// two-dimensional (q, p) parameter grid and collects every derived quantity
// into named result grids for a downstream plotting/analysis collaborator.
//
// What:
//
//   - Axis: an evenly spaced, endpoint-inclusive sequence of parameter values.
//   - Grid: a dense row-major 2D array of float64, indexed (q-index, p-index).
//   - Results: one Grid per named quantity — coefficients, bulk compositions
//     per chain length, pyrite-forming compositions, the S8-vs-pyrite
//     diagnostics, and the adjacent-position gaps — plus the two axes.
//   - Run: the driver. Every grid point is a pure, independent evaluation of
//     frac.Evaluate, so workers partition the q rows with zero coordination;
//     each point writes only its own disjoint cells.
//
// ⚙️ Usage:
//
//	ref := isoref.Default()
//	qAxis, pAxis := sweep.DefaultAxes(ref)
//	res, err := sweep.Run(ref, qAxis, pAxis, nil)
//	if err != nil { ... }
//	fmt.Println(res.DiffS8Pyrite.At(10, 42))
//
// Degenerate points (q equal to d4_in, where eb collapses to zero) produce
// non-finite cells; the sweep never aborts on them. Count them with
// Grid.CountNonFinite and mask before rendering. The optional physical-domain
// constraint fc, fd, fe ≥ 1 is exposed as Results.PlausibleMask, never
// enforced.
//
// Cancellation: pass a context through Options for interactive early abort;
// workers check it between q rows.
//
// Complexity: O(len(q)·len(p)) evaluations, each O(1); memory is the result
// grids themselves.
//
// Errors:
//
//   - ErrAxisLength, ErrAxisBounds — axis construction.
//   - ErrGridShape — non-positive grid dimensions.
//   - ErrEmptyAxis — Run handed an empty axis.
//   - context errors — sweep canceled before completion.
package sweep
