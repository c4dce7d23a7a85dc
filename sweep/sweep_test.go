package sweep_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoschem/polysulf/frac"
	"github.com/isoschem/polysulf/isoref"
	"github.com/isoschem/polysulf/sweep"
)

// TestRun_GridShape: every result grid must match the axes' outer-product
// shape of 90×100.
func TestRun_GridShape(t *testing.T) {
	ref := isoref.Default()

	res, err := sweep.RunDefault(ref)
	require.NoError(t, err)

	for name, g := range res.Grids() {
		require.NotNil(t, g, "grid %q missing", name)
		assert.Equal(t, sweep.QSteps, g.Rows(), "rows of %q", name)
		assert.Equal(t, sweep.PSteps, g.Cols(), "cols of %q", name)
	}
}

// TestRun_DegenerateRowTagged: the q axis ends exactly at d4_in, so the
// last row is the eb = 0 singularity — eb cells must be exactly zero and
// every dependent quantity non-finite, not silently wrong.
func TestRun_DegenerateRowTagged(t *testing.T) {
	ref := isoref.Default()

	res, err := sweep.RunDefault(ref)
	require.NoError(t, err)

	last := sweep.QSteps - 1
	for pi := 0; pi < sweep.PSteps; pi++ {
		require.Zero(t, res.Eb.At(last, pi), "eb must be exactly 0 at q = d4_in, pi=%d", pi)
		assert.False(t, frac.IsFinite(res.Fc.At(last, pi)), "fc at pi=%d", pi)
		assert.False(t, frac.IsFinite(res.Fd.At(last, pi)), "fd at pi=%d", pi)
		assert.False(t, frac.IsFinite(res.DiffS8Pyrite.At(last, pi)), "diagnostic at pi=%d", pi)
	}

	// The singularity is confined to that one row.
	assert.Equal(t, sweep.PSteps, res.Fc.CountNonFinite(), "only the last q row is degenerate")
	assert.Zero(t, res.Eb.CountNonFinite(), "eb itself is finite everywhere")
}

// TestRun_Bulk4RoundTrip: by the solver's derivation the S4 bulk average
// reconstructs d4_in at every grid point, degenerate row included.
func TestRun_Bulk4RoundTrip(t *testing.T) {
	ref := isoref.Default()

	res, err := sweep.RunDefault(ref)
	require.NoError(t, err)

	for qi := 0; qi < sweep.QSteps; qi++ {
		for pi := 0; pi < sweep.PSteps; pi++ {
			assert.InDelta(t, ref.D4In(), res.Bulk4.At(qi, pi), 1e-9,
				"bulk4 at (%d,%d)", qi, pi)
		}
	}
}

// TestRun_GapGridsMatchCoefficients: the ab gap grid is the eb grid, and
// bc reconstructs (fc−1)·eb, cell for cell.
func TestRun_GapGridsMatchCoefficients(t *testing.T) {
	ref := isoref.Default()

	res, err := sweep.RunDefault(ref)
	require.NoError(t, err)

	for qi := 0; qi < sweep.QSteps-1; qi++ { // skip the degenerate row: NaN ≠ NaN
		for pi := 0; pi < sweep.PSteps; pi += 7 {
			eb := res.Eb.At(qi, pi)
			assert.InDelta(t, eb, res.ABGap.At(qi, pi), 1e-9)
			assert.InDelta(t, (res.Fc.At(qi, pi)-1)*eb, res.BCGap.At(qi, pi), 1e-9)
			assert.InDelta(t, (res.Fd.At(qi, pi)-res.Fc.At(qi, pi))*eb, res.CDGap.At(qi, pi), 1e-9)
			assert.InDelta(t, (res.Fe.At(qi, pi)-res.Fd.At(qi, pi))*eb, res.DEGap.At(qi, pi), 1e-9)
		}
	}
}

// TestRun_SerialParallelIdentical: partitioning by q rows with disjoint
// writes must leave no trace — one worker and eight workers produce the
// same grids, NaN cells included.
func TestRun_SerialParallelIdentical(t *testing.T) {
	ref := isoref.Default()
	qAxis, pAxis := sweep.DefaultAxes(ref)

	serial, err := sweep.Run(ref, qAxis, pAxis, &sweep.Options{Workers: 1})
	require.NoError(t, err)

	parallel, err := sweep.Run(ref, qAxis, pAxis, &sweep.Options{Workers: 8})
	require.NoError(t, err)

	diff := cmp.Diff(serial, parallel,
		cmp.AllowUnexported(sweep.Grid{}), cmpopts.EquateNaNs())
	assert.Empty(t, diff, "serial and parallel sweeps must agree cell for cell")
}

// TestRun_WorkerOversubscription: more workers than q rows must still
// cover every row exactly once.
func TestRun_WorkerOversubscription(t *testing.T) {
	ref := isoref.Default()
	qAxis, err := sweep.NewAxis(-2.0, -1.0, 3)
	require.NoError(t, err)
	pAxis, err := sweep.NewAxis(0, 1.2, 4)
	require.NoError(t, err)

	res, err := sweep.Run(ref, qAxis, pAxis, &sweep.Options{Workers: 64})
	require.NoError(t, err)

	for qi := 0; qi < 3; qi++ {
		for pi := 0; pi < 4; pi++ {
			want := frac.SolveCoefficients(ref, qAxis[qi], pAxis[pi])
			assert.Equal(t, want.Eb, res.Eb.At(qi, pi))
		}
	}
}

// TestRun_EmptyAxisRejected covers ErrEmptyAxis.
func TestRun_EmptyAxisRejected(t *testing.T) {
	ref := isoref.Default()
	_, pAxis := sweep.DefaultAxes(ref)

	_, err := sweep.Run(ref, nil, pAxis, nil)
	assert.ErrorIs(t, err, sweep.ErrEmptyAxis)

	_, err = sweep.Run(ref, pAxis, sweep.Axis{}, nil)
	assert.ErrorIs(t, err, sweep.ErrEmptyAxis)
}

// TestRun_CanceledContext: an already-canceled context aborts before any
// work and surfaces the context error.
func TestRun_CanceledContext(t *testing.T) {
	ref := isoref.Default()
	qAxis, pAxis := sweep.DefaultAxes(ref)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := sweep.Run(ref, qAxis, pAxis, &sweep.Options{Workers: 4, Ctx: ctx})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res, "partial results are discarded on abort")
}

// TestResults_PlausibleMask: mask must be 0 on the degenerate row and on
// out-of-domain cells, 1 elsewhere, and hold nothing but zeros and ones.
func TestResults_PlausibleMask(t *testing.T) {
	ref := isoref.Default()

	res, err := sweep.RunDefault(ref)
	require.NoError(t, err)

	mask := res.PlausibleMask()
	require.Equal(t, sweep.QSteps, mask.Rows())
	require.Equal(t, sweep.PSteps, mask.Cols())

	var ones int
	for qi := 0; qi < mask.Rows(); qi++ {
		for pi := 0; pi < mask.Cols(); pi++ {
			v := mask.At(qi, pi)
			require.Contains(t, []float64{0, 1}, v, "mask cell (%d,%d)", qi, pi)
			if v == 1 {
				ones++

				c := frac.Coefficients{
					Eb: res.Eb.At(qi, pi),
					Fc: res.Fc.At(qi, pi),
					Fd: res.Fd.At(qi, pi),
					Fe: res.Fe.At(qi, pi),
				}
				assert.True(t, c.Plausible(), "masked-in cell (%d,%d)", qi, pi)
			}
		}
	}

	// The degenerate last row can never be plausible.
	last := sweep.QSteps - 1
	for pi := 0; pi < sweep.PSteps; pi++ {
		assert.Zero(t, mask.At(last, pi), "degenerate row must be masked out")
	}

	assert.Greater(t, ones, 0, "some physically plausible zone must exist")
	assert.Less(t, ones, sweep.QSteps*sweep.PSteps, "not every cell is plausible")
}
