// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all Validate calls; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// IsMetal reports whether e lies left of the metal / non-metal staircase.
//
// For periods 1–5 the border moves one group right per period
// (group < 11 + period: B, Si, As, Te are the first non-metals); from period 6
// on it stays at group 16 (Po). Hydrogen (group 1, period 1) counts as a
// metal here, matching its place in the electrochemical series.
// Complexity: O(1).
func (e Element) IsMetal() bool {
	if e.Period < heavyPeriod {
		return e.Group < staircaseBase+e.Period
	}

	return e.Group < heavyBorderGroup
}

// IsAmphoteric reports whether e is a metal that may act either as a cation
// or as the acid-forming centre of a residue (Al, Cr, Mn, Fe, Zn, Ti …).
// Alkali and alkaline-earth metals are never amphoteric.
func (e Element) IsAmphoteric() bool {
	return e.Group > alkalineGroup && e.IsMetal()
}

// IsOxidant reports whether e is strongly electronegative: group > 15 or
// electronegativity > 2.8 (O, S, halogens, N).
func (e Element) IsOxidant() bool {
	return e.Group > oxidantGroup || e.Electronegativity > oxidantElectronegativity
}

// HasValency reports whether |state| is one of e's permitted valencies.
func (e Element) HasValency(state int) bool {
	if state < 0 {
		state = -state
	}

	return slices.Contains(e.Valencies, state)
}

// NonMetalState returns the anchored oxidation state group − 18 of a
// non-metal acting as a monatomic anion (Cl → −1, S → −2, N → −3).
func (e Element) NonMetalState() int {
	return e.Group - 18
}

// Validate checks e against its struct constraints.
// Returns ErrInvalidElement wrapped with the offending field on failure.
func (e Element) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidElement, e.Symbol, err)
	}

	return nil
}

// String returns the element symbol.
func (e Element) String() string {
	return e.Symbol
}
