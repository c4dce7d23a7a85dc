package frac

// chainShape captures the symmetric-position bookkeeping for one chain
// length: how many distinct roles (a..e) it carries and the multiplicity of
// each role in the full chain. The multiplicities always sum to n.
type chainShape struct {
	roles   int
	weights []float64
}

// shapes is the single source of truth for per-chain weighting, keyed by
// chain length. Positions are indexed symmetrically from both ends inward:
// terminal pairs count twice, an odd chain's center position counts once.
var shapes = map[int]chainShape{
	4: {roles: 2, weights: []float64{2, 2}},
	5: {roles: 3, weights: []float64{2, 2, 1}},
	6: {roles: 3, weights: []float64{2, 2, 2}},
	7: {roles: 4, weights: []float64{2, 2, 2, 1}},
	8: {roles: 4, weights: []float64{2, 2, 2, 2}},
	9: {roles: 5, weights: []float64{2, 2, 2, 2, 1}},
}

// dispWeights is the S9→S8 disproportionation weighting: the nine-atom
// multiplicities (2,2,2,2,1) minus one terminal sulfur, averaged over the
// eight atoms that remain. Distinct from the plain S8 chain average.
var dispWeights = []float64{1, 2, 2, 2, 1}

// BuildChain computes the position-resolved composition of the length-n
// chain for one (q, p) pair and its solved coefficients.
//
// Position values:
//
//	a = q + (n−4)·p      (baseline, shifted once per extra chain atom)
//	b = a + eb
//	c = a + fc·eb
//	d = a + fd·eb
//	e = a + fe·eb
//
// truncated to the chain's distinct roles. Bulk is the multiplicity-weighted
// mean over all n atoms.
//
// Returns ErrChainLength when n is outside 4..9.
func BuildChain(n int, q, p float64, c Coefficients) (Chain, error) {
	shape, ok := shapes[n]
	if !ok {
		return Chain{}, ErrChainLength
	}

	base := q + float64(n-MinChainLen)*p
	full := [5]float64{
		base,
		base + c.Eb,
		base + c.Fc*c.Eb,
		base + c.Fd*c.Eb,
		base + c.Fe*c.Eb,
	}
	positions := make([]float64, shape.roles)
	copy(positions, full[:shape.roles])

	var sum float64
	for i, w := range shape.weights {
		sum += w * positions[i]
	}

	return Chain{N: n, Positions: positions, Bulk: sum / float64(n)}, nil
}

// AllChains builds the compositions for every modeled chain length, 4
// through 9 in order. Inputs are assumed in-range by construction, so the
// BuildChain error path cannot trigger.
func AllChains(q, p float64, c Coefficients) []Chain {
	chains := make([]Chain, 0, MaxChainLen-MinChainLen+1)
	for n := MinChainLen; n <= MaxChainLen; n++ {
		ch, _ := BuildChain(n, q, p, c)
		chains = append(chains, ch)
	}

	return chains
}

// DisproportionateS8 computes the composition of elemental S8 produced by
// S9²⁻ disproportionation: one terminal sulfur leaves, and the remaining
// eight atoms average with multiplicities (1,2,2,2,1) over the original
// five S9 roles. This is not a renormalization of the S8 chain.
//
// Returns ErrChainLength unless c9 is a length-9 composition.
func DisproportionateS8(c9 Chain) (float64, error) {
	if c9.N != MaxChainLen || len(c9.Positions) != len(dispWeights) {
		return 0, ErrChainLength
	}

	var sum float64
	for i, w := range dispWeights {
		sum += w * c9.Positions[i]
	}

	return sum / 8, nil
}
