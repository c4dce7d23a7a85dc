package sweep

import (
	"golang.org/x/sync/errgroup"

	"github.com/isoschem/polysulf/frac"
	"github.com/isoschem/polysulf/isoref"
)

// Run sweeps the model over the outer product of the two axes, evaluating
// frac.Evaluate at every (q, p) point and writing each derived quantity
// into its grid cell at (q-index, p-index).
//
// Parallelism: points are mutually independent, so the driver partitions
// q rows over opts.Workers goroutines (interleaved, row i handled by worker
// i mod W); each worker writes only its own rows' cells, so no locking is
// needed and serial and parallel runs produce identical grids. Workers
// check opts.Ctx between rows for interactive early abort; on cancellation
// Run returns the context's error and the partial results are discarded.
//
// Degenerate points — q equal to d4_in makes eb zero — write non-finite
// cells and never abort the sweep; see Grid.CountNonFinite.
//
// A nil opts means DefaultOptions.
func Run(ref isoref.Values, qAxis, pAxis Axis, opts *Options) (*Results, error) {
	if len(qAxis) == 0 || len(pAxis) == 0 {
		return nil, ErrEmptyAxis
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	workers, ctx := o.normalize()
	if workers > len(qAxis) {
		workers = len(qAxis)
	}

	res := newResults(qAxis, pAxis)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for qi := w; qi < len(qAxis); qi += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				q := qAxis[qi]
				for pi, p := range pAxis {
					coef, chains, diag := frac.Evaluate(ref, q, p)
					res.setPoint(qi, pi, coef, chains, diag)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// RunDefault sweeps the canonical grid: DefaultAxes at QSteps×PSteps
// resolution with DefaultOptions.
func RunDefault(ref isoref.Values) (*Results, error) {
	qAxis, pAxis := DefaultAxes(ref)

	return Run(ref, qAxis, pAxis, nil)
}
