// SPDX-License-Identifier: MIT

package element

import "errors"

// ErrInvalidElement is returned by Validate when a record violates the
// physical constraints of an element (group 1–18, period 1–7, positive mass,
// non-empty valencies ≤ 8, non-negative electronegativity).
var ErrInvalidElement = errors.New("element: invalid element record")

// Staircase boundaries of the analytic metal test.
const (
	// staircaseBase is added to the period to obtain the first non-metal
	// group for periods 1–5 (B, Si, As, Te sit exactly on the border).
	staircaseBase = 11

	// heavyPeriod is the first period where the border stops moving right.
	heavyPeriod = 6

	// heavyBorderGroup is the first non-metal group for periods 6–7 (Po).
	heavyBorderGroup = 16

	// oxidantGroup: elements of groups above it are always oxidants.
	oxidantGroup = 15

	// oxidantElectronegativity: elements above it are oxidants in any group.
	oxidantElectronegativity = 2.8

	// alkalineGroup is the last group of unconditional cations.
	alkalineGroup = 2
)

// Element is the immutable record of one chemical element.
//
// Charge is the atomic number and the unique key of the element in a table.
// Valencies lists, in ascending order, the magnitudes of the oxidation states
// the element may take; noble gases carry a single 0.
type Element struct {
	Symbol             string  `yaml:"symbol" validate:"required,max=3"`
	Charge             int     `yaml:"charge" validate:"gt=0"`
	Group              int     `yaml:"group" validate:"min=1,max=18"`
	Period             int     `yaml:"period" validate:"min=1,max=7"`
	RelativeAtomicMass float64 `yaml:"a_rm" validate:"gt=0"`
	Valencies          []int   `yaml:"valencies" validate:"required,min=1,dive,min=0,max=8"`
	Electronegativity  float64 `yaml:"electronegativity" validate:"gte=0"`
}
