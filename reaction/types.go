// SPDX-License-Identifier: MIT

package reaction

import (
	"errors"

	"github.com/katalvlaran/alchemy/substance"
)

// Sentinel errors for reaction prediction.
var (
	// ErrWrongArity indicates a reagent count other than two.
	ErrWrongArity = errors.New("reaction: exactly two reagents are supported")

	// ErrUnknownReaction indicates a reagent pair outside the supported
	// families.
	ErrUnknownReaction = errors.New("reaction: unknown class of reaction")

	// ErrProduct indicates a predicted product that failed classification or
	// an element missing from the table.
	ErrProduct = errors.New("reaction: cannot build product")
)

// Kind is the type of a reaction.
type Kind int

const (
	// None means the reagents do not react under the given conditions.
	None Kind = iota
	// Combination joins reagents into one product.
	Combination
	// Decomposition splits one reagent into several products.
	Decomposition
	// Exchange swaps parts between two compounds.
	Exchange
	// Substitution replaces one element of a compound by a simple substance.
	Substitution
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Combination:
		return "combination"
	case Decomposition:
		return "decomposition"
	case Exchange:
		return "exchange"
	case Substitution:
		return "substitution"
	default:
		return "none"
	}
}

// Reaction is a predicted reaction. Products is empty when Kind is None.
type Reaction struct {
	Reagents []substance.Substance
	Products []substance.Substance
	Heating  bool
	Kind     Kind
}

// Option configures Predict.
type Option func(*Options)

// Options holds the reaction conditions.
type Options struct {
	// Heating enables reactions of less active metals.
	Heating bool

	// Classify is passed to substance.Classify for every product.
	Classify []substance.Option
}

// WithHeating sets the heating condition.
func WithHeating(on bool) Option {
	return func(o *Options) {
		o.Heating = on
	}
}

// WithClassifyOptions forwards options to product classification.
func WithClassifyOptions(opts ...substance.Option) Option {
	return func(o *Options) {
		o.Classify = append(o.Classify, opts...)
	}
}

// Electrochemical activity series, ordered by rising standard potential.
var (
	activeMetals = []string{"Li", "Cs", "Rb", "K", "Ba", "Sr", "Ca", "Na"}
	mediumMetals = []string{"Mg", "Al", "Ti", "Mn", "Zn", "Cr", "Fe", "Cd", "Co", "Ni", "Sn", "Pb"}

	// nobleMetals do not burn in oxygen.
	nobleMetals = []string{"Ag", "Pt", "Au"}
)

const sodium = "Na"
