// Package sweep defines axes, grids, options and sentinel errors for the
// parameter-sweep driver.
package sweep

import (
	"context"
	"errors"
	"runtime"
)

// Sentinel errors for sweep operations.
var (
	// ErrAxisLength indicates an axis length below two points.
	ErrAxisLength = errors.New("sweep: axis needs at least two points")
	// ErrAxisBounds indicates non-finite or non-increasing axis bounds.
	ErrAxisBounds = errors.New("sweep: axis bounds must be finite with lo < hi")
	// ErrGridShape indicates non-positive grid dimensions.
	ErrGridShape = errors.New("sweep: grid dimensions must be positive")
	// ErrEmptyAxis indicates Run was handed an empty axis.
	ErrEmptyAxis = errors.New("sweep: both axes must be non-empty")
)

// Default grid configuration: resolution of the two parameter axes, the p
// domain, and the single highlighted profile point. The q domain comes from
// the reference dataset (isoref.Values.QBounds).
const (
	// QSteps is the resolution of the baseline-offset axis.
	QSteps = 90
	// PSteps is the resolution of the per-bond-increment axis.
	PSteps = 100

	// PMin and PMax bound the per-bond-increment axis.
	PMin = 0.0
	PMax = 1.2

	// Q1 and P1 are the highlighted parameter pair used for the
	// single-point profile; re-run frac.Evaluate there instead of reading
	// grid cells.
	Q1 = -0.5
	P1 = 0.65
)

// Axis is an ordered, evenly spaced, endpoint-inclusive sequence of
// parameter values. Build with NewAxis; treat as read-only afterwards.
type Axis []float64

// Options configures a sweep run.
//   - Workers: number of goroutines partitioning the q rows; 0 (or negative)
//     means GOMAXPROCS. Workers=1 forces a serial sweep.
//   - Ctx: optional cancellation context, checked between q rows; nil means
//     context.Background().
type Options struct {
	Workers int
	Ctx     context.Context
}

// DefaultOptions returns the canonical configuration: one worker per
// available CPU, no cancellation.
func DefaultOptions() Options {
	return Options{Workers: 0, Ctx: nil}
}

// normalize resolves zero values to their effective defaults.
func (o *Options) normalize() (workers int, ctx context.Context) {
	workers = o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ctx = o.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	return workers, ctx
}
