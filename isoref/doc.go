// Package isoref holds the measured and extrapolated δ34S reference values
// the polysulfide fractionation model is anchored to.
//
// What:
//
//   - Values bundles the bulk system composition, the extrapolated sulfide
//     (HS⁻) and S8/S9 endmember compositions, the observed bulk compositions
//     of the S4–S7 chains, and the S8–sulfide offset constant.
//   - Default returns the published dataset; D4In..D7In derive the
//     system-relative chain offsets the solver consumes.
//
// Why:
//
//   - Every downstream quantity (coefficients, positions, diagnostics) is a
//     function of these scalars and the two free parameters (q, p); keeping
//     them in one immutable value makes grid points pure and reproducible.
//
// Values are data, not policy: no cross-validation is performed — an
// inconsistent dataset propagates silently into the result grids, by the
// model's permissive design.
package isoref
