package sweep

import "github.com/isoschem/polysulf/frac"

// Results is the long-lived output of a sweep: the two axes and one dense
// grid per derived quantity, all shaped len(QAxis)×len(PAxis). It is the
// sole hand-off to the plotting/analysis collaborator.
type Results struct {
	QAxis Axis
	PAxis Axis

	// Solved fractionation coefficients.
	Eb, Fc, Fd, Fe *Grid

	// Bulk (chain-average) compositions per chain length.
	Bulk4, Bulk5, Bulk6, Bulk7, Bulk8, Bulk9 *Grid

	// Pyrite-forming compositions (terminal pair) of the short chains.
	PyriteS4, PyriteS5, PyriteS6 *Grid

	// S8Disp is the post-disproportionation S8 composition;
	// DiffS8Pyrite the primary S8-vs-pyrite diagnostic and
	// DiffS8PyriteAlt its secondary variant.
	S8Disp, DiffS8Pyrite, DiffS8PyriteAlt *Grid

	// Adjacent-position gaps of the S9 chain (chain-length invariant).
	ABGap, BCGap, CDGap, DEGap *Grid
}

// newResults allocates every grid at the axes' shape.
func newResults(q, p Axis) *Results {
	r := &Results{QAxis: q, PAxis: p}
	for _, g := range []**Grid{
		&r.Eb, &r.Fc, &r.Fd, &r.Fe,
		&r.Bulk4, &r.Bulk5, &r.Bulk6, &r.Bulk7, &r.Bulk8, &r.Bulk9,
		&r.PyriteS4, &r.PyriteS5, &r.PyriteS6,
		&r.S8Disp, &r.DiffS8Pyrite, &r.DiffS8PyriteAlt,
		&r.ABGap, &r.BCGap, &r.CDGap, &r.DEGap,
	} {
		// Axis lengths are validated by Run; shape errors cannot occur here.
		*g, _ = NewGrid(len(q), len(p))
	}

	return r
}

// setPoint folds one grid-point evaluation into the result cells at
// (qi, pi). Each point owns disjoint cells, so concurrent calls on
// distinct (qi, pi) need no locking.
func (r *Results) setPoint(qi, pi int, coef frac.Coefficients, chains []frac.Chain, diag frac.Diagnostics) {
	r.Eb.Set(qi, pi, coef.Eb)
	r.Fc.Set(qi, pi, coef.Fc)
	r.Fd.Set(qi, pi, coef.Fd)
	r.Fe.Set(qi, pi, coef.Fe)

	r.Bulk4.Set(qi, pi, chains[0].Bulk)
	r.Bulk5.Set(qi, pi, chains[1].Bulk)
	r.Bulk6.Set(qi, pi, chains[2].Bulk)
	r.Bulk7.Set(qi, pi, chains[3].Bulk)
	r.Bulk8.Set(qi, pi, chains[4].Bulk)
	r.Bulk9.Set(qi, pi, chains[5].Bulk)

	r.PyriteS4.Set(qi, pi, diag.PyriteS4)
	r.PyriteS5.Set(qi, pi, diag.PyriteS5)
	r.PyriteS6.Set(qi, pi, diag.PyriteS6)

	r.S8Disp.Set(qi, pi, diag.S8Disp)
	r.DiffS8Pyrite.Set(qi, pi, diag.DiffS8Pyrite)
	r.DiffS8PyriteAlt.Set(qi, pi, diag.DiffS8PyriteAlt)

	r.ABGap.Set(qi, pi, diag.ABGap)
	r.BCGap.Set(qi, pi, diag.BCGap)
	r.CDGap.Set(qi, pi, diag.CDGap)
	r.DEGap.Set(qi, pi, diag.DEGap)
}

// Grids returns every result grid keyed by its quantity name, for
// collaborators that iterate rather than pick fields.
func (r *Results) Grids() map[string]*Grid {
	return map[string]*Grid{
		"eb": r.Eb, "fc": r.Fc, "fd": r.Fd, "fe": r.Fe,
		"bulk4": r.Bulk4, "bulk5": r.Bulk5, "bulk6": r.Bulk6,
		"bulk7": r.Bulk7, "bulk8": r.Bulk8, "bulk9": r.Bulk9,
		"pyrite_s4": r.PyriteS4, "pyrite_s5": r.PyriteS5, "pyrite_s6": r.PyriteS6,
		"s8_disp": r.S8Disp, "diff_s8_pyrite": r.DiffS8Pyrite,
		"diff_s8_pyrite_alt": r.DiffS8PyriteAlt,
		"ab_gap":             r.ABGap, "bc_gap": r.BCGap, "cd_gap": r.CDGap, "de_gap": r.DEGap,
	}
}

// PlausibleMask returns a 1/0 grid marking the cells whose solved fc, fd
// and fe are finite and ≥ 1 — the model's physical-domain assumption,
// exposed as an optional post-hoc filter rather than enforced anywhere.
func (r *Results) PlausibleMask() *Grid {
	m, _ := NewGrid(r.Eb.Rows(), r.Eb.Cols())
	for qi := 0; qi < m.Rows(); qi++ {
		for pi := 0; pi < m.Cols(); pi++ {
			c := frac.Coefficients{
				Eb: r.Eb.At(qi, pi),
				Fc: r.Fc.At(qi, pi),
				Fd: r.Fd.At(qi, pi),
				Fe: r.Fe.At(qi, pi),
			}
			if c.Plausible() {
				m.Set(qi, pi, 1)
			}
		}
	}

	return m
}
