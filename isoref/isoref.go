package isoref

// Default dataset: measured and extrapolated δ34S values (‰ vs V-CDT).
const (
	// DefaultSystemD34S is the bulk isotopic composition of the whole system.
	DefaultSystemD34S = 16.5

	// DefaultExtrapD34SHS is the extrapolated sulfide (HS⁻) composition.
	DefaultExtrapD34SHS = 13.8

	// DefaultExtrapD34SS9 is the extrapolated S9²⁻ bulk composition.
	DefaultExtrapD34SS9 = 21.0

	// DefaultExtrapD34SS8 is the extrapolated elemental-S8 composition.
	DefaultExtrapD34SS8 = 20.4

	// DefaultObsS4..DefaultObsS7 are the observed bulk compositions of the
	// S4²⁻–S7²⁻ chains.
	DefaultObsS4 = 16.9
	DefaultObsS5 = 18.1
	DefaultObsS6 = 19.0
	DefaultObsS7 = 19.9

	// DefaultS8HSOffset is the isotopic offset between disproportionated S8
	// and sulfide entering the S9→S8 mass balance.
	DefaultS8HSOffset = 2.3
)

// Values is the immutable set of reference scalars the model is solved
// against. Copy by value; never mutate a shared instance after construction.
//
// Values performs no cross-field validation (e.g. ExtrapD34SS9 > ExtrapD34SS8
// is assumed, not checked); malformed datasets propagate silently.
type Values struct {
	// SystemD34S is the bulk system composition; all "In" offsets are
	// measured relative to it.
	SystemD34S float64

	// ExtrapD34SHS, ExtrapD34SS9, ExtrapD34SS8 are extrapolated endmember
	// compositions for sulfide, S9²⁻ and elemental S8 respectively.
	ExtrapD34SHS float64
	ExtrapD34SS9 float64
	ExtrapD34SS8 float64

	// ObsS4..ObsS7 are observed bulk chain compositions.
	ObsS4 float64
	ObsS5 float64
	ObsS6 float64
	ObsS7 float64

	// S8HSOffset closes the disproportionation mass balance for fe.
	S8HSOffset float64
}

// Default returns the published reference dataset.
func Default() Values {
	return Values{
		SystemD34S:   DefaultSystemD34S,
		ExtrapD34SHS: DefaultExtrapD34SHS,
		ExtrapD34SS9: DefaultExtrapD34SS9,
		ExtrapD34SS8: DefaultExtrapD34SS8,
		ObsS4:        DefaultObsS4,
		ObsS5:        DefaultObsS5,
		ObsS6:        DefaultObsS6,
		ObsS7:        DefaultObsS7,
		S8HSOffset:   DefaultS8HSOffset,
	}
}

// D4In returns the system-relative offset of the observed S4 composition.
func (v Values) D4In() float64 { return v.ObsS4 - v.SystemD34S }

// D5In returns the system-relative offset of the observed S5 composition.
func (v Values) D5In() float64 { return v.ObsS5 - v.SystemD34S }

// D6In returns the system-relative offset of the observed S6 composition.
// It is carried for completeness; the active solver equations use S4, S5
// and S7 only.
func (v Values) D6In() float64 { return v.ObsS6 - v.SystemD34S }

// D7In returns the system-relative offset of the observed S7 composition.
func (v Values) D7In() float64 { return v.ObsS7 - v.SystemD34S }

// QBounds returns the domain of the baseline-offset parameter q:
// from the system-relative sulfide composition up to D4In.
func (v Values) QBounds() (lo, hi float64) {
	return v.ExtrapD34SHS - v.SystemD34S, v.D4In()
}
