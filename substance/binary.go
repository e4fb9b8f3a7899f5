// SPDX-License-Identifier: MIT

package substance

// SimpleRecognizer accepts single-element substances (O2, Fe, S8).
type SimpleRecognizer struct{}

// Name returns "simple".
func (SimpleRecognizer) Name() string { return Simple.String() }

// Recognize accepts exactly one distinct element in state 0.
func (SimpleRecognizer) Recognize(in Multiset) (Substance, bool) {
	if len(in) != 1 {
		return Substance{}, false
	}
	for _, b := range in {
		return newSubstance(SimpleForm{Element: b.withState(0)}), true
	}

	return Substance{}, false
}

// HydrideRecognizer accepts hydrogen bound to a less electronegative element
// (NaH, CaH2, AlH3).
type HydrideRecognizer struct{}

// Name returns "hydride".
func (HydrideRecognizer) Name() string { return Hydride.String() }

// Recognize assigns H −1 and solves the partner state from the hydrogen count.
func (HydrideRecognizer) Recognize(in Multiset) (Substance, bool) {
	h, partner, ok := pair(in, Hydrogen)
	if !ok || partner.Element.Electronegativity >= h.Element.Electronegativity {
		return Substance{}, false
	}
	state, ok := balance(partner, h.Index)
	if !ok {
		return Substance{}, false
	}

	return newSubstance(HydrideForm{
		Partner:  partner.withState(state),
		Hydrogen: h.withState(hydrideState),
	}), true
}

// PeroxideRecognizer accepts alkali and alkaline-earth peroxides (Na2O2,
// BaO2). It runs before OxideRecognizer, which would otherwise reject them.
type PeroxideRecognizer struct{}

// Name returns "peroxide".
func (PeroxideRecognizer) Name() string { return Peroxide.String() }

// Recognize assigns O −1 to an O2 pair and the metal its first valency.
func (PeroxideRecognizer) Recognize(in Multiset) (Substance, bool) {
	o, metal, ok := pair(in, Oxygen)
	if !ok || o.Index != 2 {
		return Substance{}, false
	}
	e := metal.Element
	if !e.IsMetal() || e.Group > 2 || e.Group == e.Period || len(e.Valencies) == 0 {
		return Substance{}, false
	}
	v := e.Valencies[0]
	if v*metal.Index != o.Index {
		return Substance{}, false
	}

	return newSubstance(PeroxideForm{
		Metal:  metal.withState(v),
		Oxygen: o.withState(peroxideState),
	}), true
}

// OxideRecognizer accepts binary compounds of oxygen in state −2 (Fe2O3,
// CO2, H2O).
type OxideRecognizer struct{}

// Name returns "oxide".
func (OxideRecognizer) Name() string { return Oxide.String() }

// Recognize assigns O −2 and solves the partner state from the oxygen count.
func (OxideRecognizer) Recognize(in Multiset) (Substance, bool) {
	o, partner, ok := pair(in, Oxygen)
	if !ok {
		return Substance{}, false
	}
	state, ok := balance(partner, -oxideState*o.Index)
	if !ok {
		return Substance{}, false
	}

	return newSubstance(OxideForm{
		Partner: partner.withState(state),
		Oxygen:  o.withState(oxideState),
	}), true
}

// pair splits a two-element multiset into the block of symbol and its partner.
func pair(in Multiset, symbol string) (fixed, partner Block, ok bool) {
	if len(in) != 2 {
		return Block{}, Block{}, false
	}
	fixed, ok = in[symbol]
	if !ok {
		return Block{}, Block{}, false
	}
	for sym, b := range in {
		if sym != symbol {
			partner = b
		}
	}

	return fixed, partner, true
}

// balance returns the state s with s × b.Index == total, if it is one of b's
// valencies.
func balance(b Block, total int) (int, bool) {
	if total%b.Index != 0 {
		return 0, false
	}
	s := total / b.Index
	if !b.Element.HasValency(s) {
		return 0, false
	}

	return s, true
}
