// SPDX-License-Identifier: MIT

package substance

import (
	"maps"
	"slices"
	"strings"
)

// newSubstance assembles a Substance from a class form.
func newSubstance(f Form) Substance {
	me, anti := f.split()
	s := Substance{
		Class:  f.Class(),
		Me:     make(map[string]Block, len(me)),
		AntiMe: make(map[string]Block, len(anti)),
		Form:   f,
	}
	for _, b := range me {
		s.Me[b.Symbol] = b
	}
	for _, b := range anti {
		s.AntiMe[b.Symbol] = b
	}

	return s
}

// Blocks returns all blocks of s, Me first, each side ordered by key.
func (s Substance) Blocks() []Block {
	out := make([]Block, 0, len(s.Me)+len(s.AntiMe))
	for _, k := range slices.Sorted(maps.Keys(s.Me)) {
		out = append(out, s.Me[k])
	}
	for _, k := range slices.Sorted(maps.Keys(s.AntiMe)) {
		out = append(out, s.AntiMe[k])
	}

	return out
}

// Charge returns Σ OxidationState × Index over all blocks.
// It is 0 for every classified substance.
func (s Substance) Charge() int {
	total := 0
	for _, b := range s.Blocks() {
		total += b.OxidationState * b.Index
	}

	return total
}

// Elements returns the flattened element multiset of s with all states reset
// to 0. Classify(s.Elements()) yields a substance Equal to s.
func (s Substance) Elements() Multiset {
	acc := make(Multiset)
	for _, b := range s.Blocks() {
		b.flatten(1, acc)
	}

	return acc
}

// Equal reports whether s and other share the class and the set of element
// symbols present; indices and states are ignored.
func (s Substance) Equal(other Substance) bool {
	if s.Class != other.Class {
		return false
	}
	a, b := s.Elements(), other.Elements()
	if len(a) != len(b) {
		return false
	}
	for sym := range a {
		if _, ok := b[sym]; !ok {
			return false
		}
	}

	return true
}

// OxidationState returns the resolved state of symbol inside s.
// Returns false when the element is absent or only present inside an opaque
// residue.
func (s Substance) OxidationState(symbol string) (int, bool) {
	for _, b := range s.Blocks() {
		if !b.IsComposite() {
			if b.Symbol == symbol {
				return b.OxidationState, true
			}
			continue
		}
		if b.Opaque {
			continue
		}
		for _, m := range b.Members {
			if m.Symbol == symbol {
				return m.OxidationState, true
			}
		}
	}

	return 0, false
}

// Formula renders s in conventional order: "Al(OH)3", "NaHCO3", "Fe2(SO4)3".
func (s Substance) Formula() string {
	if s.Form == nil {
		return ""
	}
	blocks := s.Form.ordered()
	var sb strings.Builder
	for i, b := range blocks {
		f := b.Formula()
		if b.Symbol == HydroxideName && b.Index == 1 && i < len(blocks)-1 {
			f = "(" + f + ")"
		}
		sb.WriteString(f)
	}

	return sb.String()
}

// String returns "formula (class)".
func (s Substance) String() string {
	return s.Formula() + " (" + s.Class.String() + ")"
}
