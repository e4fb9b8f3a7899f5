// SPDX-License-Identifier: MIT

package reaction

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/alchemy/element"
	"github.com/katalvlaran/alchemy/periodic"
	"github.com/katalvlaran/alchemy/substance"
)

// predictor carries the state of one Predict call.
type predictor struct {
	table periodic.Lookup
	opts  Options
}

// Predict returns the reaction between two classified reagents.
//
// Errors:
//   - ErrWrongArity unless len(reagents) == 2.
//   - ErrUnknownReaction for unsupported reagent pairs.
//   - ErrProduct if a product cannot be built or classified.
//
// A supported pair that does not react yields Kind None and no products.
func Predict(reagents []substance.Substance, table periodic.Lookup, opts ...Option) (Reaction, error) {
	if len(reagents) != 2 {
		return Reaction{}, fmt.Errorf("%w: got %d", ErrWrongArity, len(reagents))
	}
	p := predictor{table: table}
	for _, opt := range opts {
		opt(&p.opts)
	}

	r := Reaction{
		Reagents: slices.Clone(reagents),
		Heating:  p.opts.Heating,
	}

	metal, other, ok := splitMetal(reagents)
	if !ok {
		return Reaction{}, fmt.Errorf("%w: %s + %s", ErrUnknownReaction,
			reagents[0].Formula(), reagents[1].Formula())
	}

	water, err := p.water()
	if err != nil {
		return Reaction{}, err
	}

	var products []substance.Substance
	switch {
	case other.Class == substance.Simple && len(other.AntiMe) == 1:
		products, r.Kind, err = p.combine(metal, single(other.AntiMe).Element)
	case other.Equal(water):
		products, r.Kind, err = p.metalWater(metal)
	case other.Class == substance.Acid:
		products, r.Kind, err = p.metalAcid(metal, other)
	default:
		return Reaction{}, fmt.Errorf("%w: %s + %s", ErrUnknownReaction,
			reagents[0].Formula(), reagents[1].Formula())
	}
	if err != nil {
		return Reaction{}, err
	}
	r.Products = products

	return r, nil
}

// combine joins a metal with a non-metal.
func (p predictor) combine(metal, nonMetal element.Element) ([]substance.Substance, Kind, error) {
	if nonMetal.Symbol == substance.Oxygen && slices.Contains(nobleMetals, metal.Symbol) {
		return nil, None, nil
	}

	ms, ok := metalState(metal, p.opts.Heating)
	if !ok {
		return nil, None, nil
	}
	ns := -nonMetal.NonMetalState()
	if ns == 0 {
		return nil, None, fmt.Errorf("%w: %s has no anion state", ErrUnknownReaction, nonMetal.Symbol)
	}

	mi, ni := indices(ms, ns)
	if metal.Symbol == sodium && nonMetal.Symbol == substance.Oxygen {
		mi, ni = 2, 2
	}

	product, err := p.classify(substance.NewMultiset(
		substance.NewBlock(metal, mi),
		substance.NewBlock(nonMetal, ni),
	))
	if err != nil {
		return nil, None, err
	}

	return []substance.Substance{product}, Combination, nil
}

// metalWater reacts a metal with water.
func (p predictor) metalWater(metal element.Element) ([]substance.Substance, Kind, error) {
	switch {
	case slices.Contains(activeMetals, metal.Symbol):
		o, h, err := p.oxygenHydrogen()
		if err != nil {
			return nil, None, err
		}
		mi, n := indices(metal.Group, 1)
		base, err := p.classify(substance.NewMultiset(
			substance.NewBlock(metal, mi),
			substance.NewBlock(o, n),
			substance.NewBlock(h, n),
		))
		if err != nil {
			return nil, None, err
		}
		return p.withHydrogen(base)

	case slices.Contains(mediumMetals, metal.Symbol) && p.opts.Heating:
		o, err := p.lookup(substance.Oxygen)
		if err != nil {
			return nil, None, err
		}
		oxide, _, err := p.combine(metal, o)
		if err != nil {
			return nil, None, err
		}
		if len(oxide) == 0 {
			return nil, None, nil
		}
		return p.withHydrogen(oxide[0])

	default:
		return nil, None, nil
	}
}

// metalAcid replaces the hydrogen of an acid with a metal.
func (p predictor) metalAcid(metal element.Element, acid substance.Substance) ([]substance.Substance, Kind, error) {
	if !slices.Contains(activeMetals, metal.Symbol) && !slices.Contains(mediumMetals, metal.Symbol) {
		return nil, None, nil
	}
	form, ok := acid.Form.(substance.AcidForm)
	if !ok || len(metal.Valencies) == 0 {
		return nil, None, fmt.Errorf("%w: %s is not an acid", ErrUnknownReaction, acid.Formula())
	}

	mi, ri := indices(metal.Valencies[0], form.Hydrogen.Index)
	blocks := []substance.Block{substance.NewBlock(metal, mi)}
	for _, m := range form.Residue.Members {
		blocks = append(blocks, substance.NewBlock(m.Element, m.Index*form.Residue.Index*ri))
	}
	salt, err := p.classify(substance.NewMultiset(blocks...))
	if err != nil {
		return nil, None, err
	}

	return p.withHydrogen(salt)
}

// withHydrogen appends H2 to a substitution product.
func (p predictor) withHydrogen(product substance.Substance) ([]substance.Substance, Kind, error) {
	h, err := p.lookup(substance.Hydrogen)
	if err != nil {
		return nil, None, err
	}
	h2, err := p.classify(substance.NewMultiset(substance.NewBlock(h, 2)))
	if err != nil {
		return nil, None, err
	}

	return []substance.Substance{product, h2}, Substitution, nil
}

// water classifies H2O against the current table.
func (p predictor) water() (substance.Substance, error) {
	o, h, err := p.oxygenHydrogen()
	if err != nil {
		return substance.Substance{}, err
	}

	return p.classify(substance.NewMultiset(substance.NewBlock(h, 2), substance.NewBlock(o, 1)))
}

func (p predictor) oxygenHydrogen() (element.Element, element.Element, error) {
	o, err := p.lookup(substance.Oxygen)
	if err != nil {
		return element.Element{}, element.Element{}, err
	}
	h, err := p.lookup(substance.Hydrogen)
	if err != nil {
		return element.Element{}, element.Element{}, err
	}

	return o, h, nil
}

func (p predictor) lookup(symbol string) (element.Element, error) {
	e, err := p.table.Lookup(symbol)
	if err != nil {
		return element.Element{}, fmt.Errorf("%w: %w", ErrProduct, err)
	}

	return e, nil
}

func (p predictor) classify(ms substance.Multiset) (substance.Substance, error) {
	s, err := substance.Classify(ms, p.opts.Classify...)
	if err != nil {
		return substance.Substance{}, fmt.Errorf("%w: %s: %w", ErrProduct, ms.Formula(), err)
	}

	return s, nil
}

// metalState guesses the state a metal takes in a combination.
func metalState(metal element.Element, heating bool) (int, bool) {
	n := len(metal.Valencies)
	switch {
	case metal.Group <= 2:
		return metal.Group, true
	case !heating || n == 0:
		return 0, false
	case metal.Group <= 5:
		return metal.Group, true
	case metal.Group == 6:
		return metal.Valencies[(n-1)/2], true
	default:
		return metal.Valencies[n-1], true
	}
}

// splitMetal finds a simple metal among the reagents and returns its element
// with the other reagent.
func splitMetal(reagents []substance.Substance) (element.Element, substance.Substance, bool) {
	for i, r := range reagents {
		if r.Class == substance.Simple && len(r.Me) == 1 {
			return single(r.Me).Element, reagents[1-i], true
		}
	}

	return element.Element{}, substance.Substance{}, false
}

func single(m map[string]substance.Block) substance.Block {
	for _, b := range m {
		return b
	}

	return substance.Block{}
}

// indices returns the smallest indices balancing magnitudes a and b.
func indices(a, b int) (int, int) {
	l := a / gcd(a, b) * b

	return l / a, l / b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// String renders the reaction: "Na + H2O -> NaOH + H2".
func (r Reaction) String() string {
	var sb strings.Builder
	for i, s := range r.Reagents {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(s.Formula())
	}
	if r.Heating {
		sb.WriteString(" -(t)->")
	} else {
		sb.WriteString(" ->")
	}
	if len(r.Products) == 0 {
		sb.WriteString(" no reaction")
		return sb.String()
	}
	for i, s := range r.Products {
		if i > 0 {
			sb.WriteString(" +")
		}
		sb.WriteString(" ")
		sb.WriteString(s.Formula())
	}

	return sb.String()
}
