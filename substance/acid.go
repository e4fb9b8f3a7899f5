// SPDX-License-Identifier: MIT

package substance

import (
	"strconv"
	"strings"
)

// AcidRecognizer accepts hydrogen bound to non-metals with at least one
// oxidant (HCl, H2SO4, HNO3). It is the last resort of the pipeline.
type AcidRecognizer struct{}

// Name returns "acid".
func (AcidRecognizer) Name() string { return Acid.String() }

// Recognize assigns H +1 and keeps the rest as one opaque residue whose
// charge balances the hydrogen.
func (AcidRecognizer) Recognize(in Multiset) (Substance, bool) {
	h, ok := in[Hydrogen]
	if !ok || len(in) < 2 {
		return Substance{}, false
	}

	members := make([]Block, 0, len(in)-1)
	oxidant := false
	var name strings.Builder
	for _, b := range in.Sorted() {
		if b.Symbol == Hydrogen {
			continue
		}
		if b.Element.Group < 3 {
			return Substance{}, false
		}
		oxidant = oxidant || b.Element.IsOxidant()
		members = append(members, b.withState(0))
		name.WriteString(b.Symbol)
		name.WriteString(strconv.Itoa(b.Index))
	}
	if !oxidant {
		return Substance{}, false
	}

	return newSubstance(AcidForm{
		Hydrogen: h.withState(protonState),
		Residue: Block{
			Symbol:         name.String(),
			Index:          1,
			OxidationState: -h.Index,
			Members:        members,
			Opaque:         true,
		},
	}), true
}
