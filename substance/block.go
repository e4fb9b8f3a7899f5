// SPDX-License-Identifier: MIT

package substance

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/alchemy/element"
)

// NewBlock returns an elementary block of e with the given index and state 0.
func NewBlock(e element.Element, index int) Block {
	return Block{Symbol: e.Symbol, Element: e, Index: index}
}

// IsComposite reports whether b is a named group of member blocks.
func (b Block) IsComposite() bool {
	return len(b.Members) > 0
}

// Formula renders b with its index: "Fe2", "(OH)3", "SO4", "(SO4)3".
func (b Block) Formula() string {
	if !b.IsComposite() {
		return b.Symbol + count(b.Index)
	}
	unit := unitFormula(b.Members)
	if b.Index == 1 {
		return unit
	}
	if len(b.Members) == 1 && b.Members[0].Index == 1 {
		return unit + count(b.Index)
	}

	return "(" + unit + ")" + count(b.Index)
}

// withState returns a copy of b in the given oxidation state.
func (b Block) withState(state int) Block {
	b.OxidationState = state
	return b
}

// withIndex returns a copy of b with the given index.
func (b Block) withIndex(index int) Block {
	b.Index = index
	return b
}

// flatten adds the atoms of b, multiplied by mult, to acc.
func (b Block) flatten(mult int, acc Multiset) {
	if !b.IsComposite() {
		acc.Add(b.Element, b.Index*mult)
		return
	}
	for _, m := range b.Members {
		m.flatten(b.Index*mult, acc)
	}
}

// newComposite builds a composite block whose per-unit charge is the sum of
// its members' charges.
func newComposite(name string, index int, members ...Block) Block {
	net := 0
	for _, m := range members {
		net += m.OxidationState * m.Index
	}

	return Block{Symbol: name, Index: index, OxidationState: net, Members: members}
}

// unitFormula concatenates member symbols with counts above one.
func unitFormula(members []Block) string {
	var sb strings.Builder
	for _, m := range members {
		sb.WriteString(m.Symbol)
		sb.WriteString(count(m.Index))
	}

	return sb.String()
}

func count(n int) string {
	if n == 1 {
		return ""
	}

	return strconv.Itoa(n)
}

// byElectronegativity orders blocks by ascending electronegativity, then symbol.
func byElectronegativity(a, b Block) int {
	if c := cmp.Compare(a.Element.Electronegativity, b.Element.Electronegativity); c != 0 {
		return c
	}

	return cmp.Compare(a.Symbol, b.Symbol)
}

// NewMultiset builds a multiset from elementary blocks, merging repeated
// symbols. Oxidation states are reset to 0.
func NewMultiset(blocks ...Block) Multiset {
	m := make(Multiset, len(blocks))
	for _, b := range blocks {
		m.Add(b.Element, b.Index)
	}

	return m
}

// Add merges n atoms of e into m.
func (m Multiset) Add(e element.Element, n int) {
	b, ok := m[e.Symbol]
	if !ok {
		b = NewBlock(e, 0)
	}
	b.Index += n
	m[e.Symbol] = b
}

// Clone returns an independent copy of m.
func (m Multiset) Clone() Multiset {
	return maps.Clone(m)
}

// Equal reports whether m and other hold the same symbols with the same
// indices, states and element charges.
func (m Multiset) Equal(other Multiset) bool {
	return maps.EqualFunc(m, other, func(a, b Block) bool {
		return a.Symbol == b.Symbol &&
			a.Index == b.Index &&
			a.OxidationState == b.OxidationState &&
			a.Element.Charge == b.Element.Charge &&
			len(a.Members) == 0 && len(b.Members) == 0
	})
}

// Validate checks that m is a classifiable input: non-empty, elementary
// blocks only, every index ≥ 1, every state 0, keys equal to symbols.
func (m Multiset) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: empty multiset", ErrInvalidInput)
	}
	for key, b := range m {
		switch {
		case b.IsComposite():
			return fmt.Errorf("%w: %s is a composite block", ErrInvalidInput, key)
		case b.Index < 1:
			return fmt.Errorf("%w: %s has index %d", ErrInvalidInput, key, b.Index)
		case b.OxidationState != 0:
			return fmt.Errorf("%w: %s already has state %d", ErrInvalidInput, key, b.OxidationState)
		case key != b.Symbol || key != b.Element.Symbol:
			return fmt.Errorf("%w: key %q holds %q/%q", ErrInvalidInput, key, b.Symbol, b.Element.Symbol)
		}
	}

	return nil
}

// Sorted returns the blocks of m ordered by ascending electronegativity.
func (m Multiset) Sorted() []Block {
	return slices.SortedFunc(maps.Values(m), byElectronegativity)
}

// Formula renders m in ascending electronegativity order: "NaCl", "H2SO4".
func (m Multiset) Formula() string {
	var sb strings.Builder
	for _, b := range m.Sorted() {
		sb.WriteString(b.Formula())
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (m Multiset) String() string {
	return m.Formula()
}
