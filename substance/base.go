// SPDX-License-Identifier: MIT

package substance

// BaseRecognizer accepts metal hydroxides (NaOH, Al(OH)3) and ammonium
// hydroxide.
type BaseRecognizer struct{}

// Name returns "base".
func (BaseRecognizer) Name() string { return Base.String() }

// Recognize splits the input into a cation and OH units.
func (BaseRecognizer) Recognize(in Multiset) (Substance, bool) {
	if len(in) != 3 {
		return Substance{}, false
	}
	o, okO := in[Oxygen]
	h, okH := in[Hydrogen]
	if !okO || !okH {
		return Substance{}, false
	}
	var x Block
	for sym, b := range in {
		if sym != Oxygen && sym != Hydrogen {
			x = b
		}
	}

	if x.Symbol == Nitrogen && x.Index == 1 && o.Index == 1 && h.Index == 5 {
		return newSubstance(BaseForm{
			Cation:    ammonium(x, h),
			Hydroxide: hydroxide(o, h, 1),
		}), true
	}

	if o.Index != h.Index || !x.Element.IsMetal() {
		return Substance{}, false
	}
	state, ok := balance(x, o.Index)
	if !ok {
		return Substance{}, false
	}

	return newSubstance(BaseForm{
		Cation:    x.withState(state),
		Hydroxide: hydroxide(o, h, o.Index),
	}), true
}

// hydroxide builds n OH units from the oxygen and hydrogen blocks.
func hydroxide(o, h Block, n int) Block {
	return newComposite(HydroxideName, n,
		o.withIndex(1).withState(oxideState),
		h.withIndex(1).withState(protonState),
	)
}

// ammonium builds one NH4 unit (N −3, H +1 ×4).
func ammonium(n, h Block) Block {
	return newComposite(AmmoniumName, 1,
		n.withIndex(1).withState(ammoniaState),
		h.withIndex(4).withState(protonState),
	)
}
