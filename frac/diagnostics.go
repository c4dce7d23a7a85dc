package frac

// Derive computes the cross-checking diagnostics from a full set of chain
// compositions, as produced by AllChains: chains must hold lengths 4..9 in
// order, or ErrChainLength is returned.
//
// Quantities:
//
//   - PyriteS4..PyriteS6 — terminal-pair mean of the S4/S5/S6 chains.
//   - S8Disp             — post-disproportionation S8 from the S9 chain.
//   - DiffS8Pyrite       — S8Disp − PyriteS5 (the primary consistency
//     diagnostic between disproportionated S8 and
//     pyrite formed via the S5 pathway).
//   - DiffS8PyriteAlt    — S8 bulk − PyriteS6, the secondary variant.
//   - ABGap..DEGap       — adjacent-position differences within the S9
//     chain. The model is linear in the position roles, so these equal the
//     corresponding gaps of every shorter chain carrying the pair (the b−a
//     gap of any chain is exactly eb, and so on); computing them once from
//     S9 covers all lengths.
//
// Non-finite inputs (degenerate eb) flow straight through into non-finite
// diagnostics; no masking happens here.
func Derive(chains []Chain) (Diagnostics, error) {
	if len(chains) != MaxChainLen-MinChainLen+1 {
		return Diagnostics{}, ErrChainLength
	}
	for i, ch := range chains {
		if ch.N != MinChainLen+i {
			return Diagnostics{}, ErrChainLength
		}
	}

	var (
		c4 = chains[0]
		c5 = chains[1]
		c6 = chains[2]
		c8 = chains[4]
		c9 = chains[5]
	)

	s8disp, err := DisproportionateS8(c9)
	if err != nil {
		return Diagnostics{}, err
	}

	d := Diagnostics{
		PyriteS4: c4.Pyrite(),
		PyriteS5: c5.Pyrite(),
		PyriteS6: c6.Pyrite(),
		S8Disp:   s8disp,
	}
	d.DiffS8Pyrite = d.S8Disp - d.PyriteS5
	d.DiffS8PyriteAlt = c8.Bulk - d.PyriteS6

	d.ABGap = c9.Positions[1] - c9.Positions[0]
	d.BCGap = c9.Positions[2] - c9.Positions[1]
	d.CDGap = c9.Positions[3] - c9.Positions[2]
	d.DEGap = c9.Positions[4] - c9.Positions[3]

	return d, nil
}
