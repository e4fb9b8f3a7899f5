// SPDX-License-Identifier: MIT

// Package substance classifies inorganic substances and assigns oxidation
// states to their constituent elements.
//
// 🚀 What does it do?
//
//	Given a Multiset (element symbol → Block{Element, Index}), Classify
//	decides which class the substance belongs to and returns a Substance whose
//	blocks carry resolved oxidation states:
//	  • Simple   : one element, state 0 (O2, Fe)
//	  • Hydride  : metal + H(−1) (CaH2)
//	  • Peroxide : alkali/alkaline-earth metal + O2(−1) (Na2O2)
//	  • Oxide    : element + O(−2) (Fe2O3, H2O)
//	  • Base     : metal + OH groups, NH4OH (Al(OH)3)
//	  • Salt     : cations + residue, acidic/basic variants (NaHCO3, Al(OH)CO3)
//	  • Acid     : H(+1) + opaque residue (H2SO4)
//
// ✨ How?
//
//	An ordered pipeline of Recognizers is tried in fixed precedence:
//	simple → hydride → peroxide → oxide → base → salt → acid. Each recognizer
//	either returns a complete Substance or rejects; a rejecting recognizer
//	never touches its input, so the next one starts from a clean slate.
//	The salt recognizer runs a bounded Cartesian search over the valencies of
//	every cation and residue member until the positive and negative charge
//	totals meet.
//
// Guarantees of every classified Substance:
//   - Charge() == 0 (weighted sum of oxidation_state × index).
//   - every resolved element state is one of its valencies (O and H follow
//     fixed conventions: O −2 or −1 in peroxides, H +1 or −1 in hydrides).
//   - Me and AntiMe keys are disjoint and their flattened atoms reproduce the
//     input exactly; Elements() feeds back into Classify with the same result.
//
// ⚙️ Usage:
//
//	s, err := substance.Classify(ms)
//	if errors.Is(err, substance.ErrUnknownSubstance) { ... }
//	fmt.Println(s.Class, s.Formula())
//
// Classification is pure and allocation-light; independent inputs may be
// classified concurrently with ClassifyAll.
package substance
