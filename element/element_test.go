// SPDX-License-Identifier: MIT

package element_test

import (
	"testing"

	"github.com/katalvlaran/alchemy/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func el(symbol string, charge, group, period int, en float64, valencies ...int) element.Element {
	return element.Element{
		Symbol:             symbol,
		Charge:             charge,
		Group:              group,
		Period:             period,
		RelativeAtomicMass: float64(charge) * 2,
		Valencies:          valencies,
		Electronegativity:  en,
	}
}

// TestElement_IsMetal walks the staircase border on both sides.
func TestElement_IsMetal(t *testing.T) {
	cases := []struct {
		e    element.Element
		want bool
	}{
		{el("H", 1, 1, 1, 2.2, 1), true},
		{el("Na", 11, 1, 3, 0.93, 1), true},
		{el("Be", 4, 2, 2, 1.57, 1, 2), true},
		{el("B", 5, 13, 2, 2.04, 3), false},
		{el("Al", 13, 13, 3, 1.61, 3), true},
		{el("Si", 14, 14, 3, 1.9, 2, 4), false},
		{el("Ge", 32, 14, 4, 2.01, 2, 4), true},
		{el("As", 33, 15, 4, 2.18, 3, 5), false},
		{el("Sb", 51, 15, 5, 2.05, 3, 5), true},
		{el("Te", 52, 16, 5, 2.1, 2, 4, 6), false},
		{el("Cs", 55, 1, 6, 0.79, 1), true},
		{el("Bi", 83, 15, 6, 2.02, 3, 5), true},
		{el("Po", 84, 16, 6, 2.0, 2, 4, 6), false},
		{el("O", 8, 16, 2, 3.44, 2), false},
		{el("Ne", 10, 18, 2, 0, 0), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.e.IsMetal(), "IsMetal(%s)", tc.e.Symbol)
	}
}

func TestElement_IsAmphoteric(t *testing.T) {
	assert.False(t, el("Na", 11, 1, 3, 0.93, 1).IsAmphoteric())
	assert.False(t, el("Ca", 20, 2, 4, 1.0, 2).IsAmphoteric())
	assert.True(t, el("Al", 13, 13, 3, 1.61, 3).IsAmphoteric())
	assert.True(t, el("Cr", 24, 6, 4, 1.66, 2, 3, 6).IsAmphoteric())
	assert.False(t, el("S", 16, 16, 3, 2.58, 2, 4, 6).IsAmphoteric())
}

func TestElement_IsOxidant(t *testing.T) {
	assert.True(t, el("O", 8, 16, 2, 3.44, 2).IsOxidant())
	assert.True(t, el("Cl", 17, 17, 3, 3.16, 1, 3, 5, 7).IsOxidant())
	assert.True(t, el("N", 7, 15, 2, 3.04, 1, 2, 3, 4).IsOxidant(), "N qualifies by electronegativity")
	assert.False(t, el("P", 15, 15, 3, 2.19, 3, 5).IsOxidant())
	assert.False(t, el("C", 6, 14, 2, 2.55, 2, 4).IsOxidant())
}

func TestElement_HasValencyAndNonMetalState(t *testing.T) {
	s := el("S", 16, 16, 3, 2.58, 2, 4, 6)
	assert.True(t, s.HasValency(6))
	assert.True(t, s.HasValency(-2))
	assert.False(t, s.HasValency(3))
	assert.Equal(t, -2, s.NonMetalState())
	assert.Equal(t, -1, el("Cl", 17, 17, 3, 3.16, 1, 3, 5, 7).NonMetalState())
}

// TestElement_Validate covers every struct constraint.
func TestElement_Validate(t *testing.T) {
	good := el("Fe", 26, 8, 4, 1.83, 2, 3)
	require.NoError(t, good.Validate())

	bad := map[string]func(e *element.Element){
		"no symbol":      func(e *element.Element) { e.Symbol = "" },
		"zero charge":    func(e *element.Element) { e.Charge = 0 },
		"group 19":       func(e *element.Element) { e.Group = 19 },
		"period 0":       func(e *element.Element) { e.Period = 0 },
		"zero mass":      func(e *element.Element) { e.RelativeAtomicMass = 0 },
		"no valencies":   func(e *element.Element) { e.Valencies = nil },
		"valency 9":      func(e *element.Element) { e.Valencies = []int{2, 9} },
		"negative EN":    func(e *element.Element) { e.Electronegativity = -0.1 },
		"symbol too big": func(e *element.Element) { e.Symbol = "Abcd" },
	}
	for name, mutate := range bad {
		e := good
		e.Valencies = append([]int(nil), good.Valencies...)
		mutate(&e)
		assert.ErrorIs(t, e.Validate(), element.ErrInvalidElement, name)
	}
}
