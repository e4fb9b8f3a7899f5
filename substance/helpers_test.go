// SPDX-License-Identifier: MIT

package substance_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/alchemy/formula"
	"github.com/katalvlaran/alchemy/periodic"
	"github.com/katalvlaran/alchemy/substance"
	"github.com/stretchr/testify/require"
)

var (
	parserOnce sync.Once
	parser     *formula.Parser
	parserErr  error
)

// sharedParser returns a parser over the default table.
func sharedParser(t testing.TB) *formula.Parser {
	t.Helper()
	parserOnce.Do(func() {
		var tbl *periodic.Table
		tbl, parserErr = periodic.Default()
		parser = formula.NewParser(tbl)
	})
	require.NoError(t, parserErr)

	return parser
}

// ms parses a single-term formula.
func ms(t testing.TB, f string) substance.Multiset {
	t.Helper()
	terms, err := sharedParser(t).Parse(f)
	require.NoError(t, err, f)
	require.Len(t, terms, 1, f)

	return terms[0]
}

// classify parses and classifies f, failing the test on error.
func classify(t testing.TB, f string, opts ...substance.Option) substance.Substance {
	t.Helper()
	s, err := substance.Classify(ms(t, f), opts...)
	require.NoError(t, err, f)

	return s
}

// corpus holds formulas every recognizer must survive.
var corpus = []string{
	"O2", "Fe", "S8", "Na",
	"NaH", "CaH2", "AlH3",
	"Na2O2", "BaO2", "K2O2",
	"H2O", "CO2", "Fe2O3", "FeO", "Cl2O7", "SO3", "Al2O3", "P2O5",
	"NaOH", "Al(OH)3", "Ca(OH)2", "Fe(OH)3", "NH4OH",
	"NaCl", "CaCl2", "KBr", "Al2S3", "FeCl3",
	"CaCO3", "Na2SO4", "Fe2(SO4)3", "FeSO4", "Cu2SO4", "KMnO4", "K2Cr2O7",
	"CuTiO3", "NaAlO2", "ZnAl2O4", "KNO3", "AgNO3", "Ca3(PO4)2", "KClO3",
	"Fe2(CrO4)3",
	"NaHCO3", "Ca(HCO3)2", "NaH2PO4", "NaHSO4", "NaHS",
	"Al(OH)CO3", "Mg(OH)Cl", "Al(OH)2Cl", "Cu2(OH)2CO3",
	"HCl", "H2SO4", "HNO3", "H3PO4", "H2CO3", "HClO4", "H2S",
}

// failures holds formulas no recognizer accepts.
var failures = []string{"NaCl2", "NaK", "CH4", "FeCu", "NaCO"}
