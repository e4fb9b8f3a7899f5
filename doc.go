// SPDX-License-Identifier: MIT

// Package alchemy is an in-memory toolkit for inorganic chemistry: it parses
// formulas, classifies substances, resolves oxidation states and predicts
// simple reactions.
//
// 🚀 What is inside?
//
//	element/  : the immutable Element record and its metal / oxidant tests
//	periodic/ : thread-safe periodic table (embedded YAML, user tables)
//	formula/  : formula strings → element multisets ("Fe2(SO4)3", "H₂O")
//	substance/: the classifier: simple substances, hydrides, oxides,
//	             peroxides, bases, acids and salts with resolved states
//	reaction/ : metal + non-metal, metal + water and metal + acid products
//	cmd/alchemy: command line front end
//
// ✨ Guarantees
//
//   - every classified substance is neutral
//   - every resolved state is an allowed valency of its element
//   - recognizers never mutate their input; classification is pure and
//     safe to run concurrently
//
// Quick start:
//
//	tbl, _ := periodic.Default()
//	s, err := substance.FromString("K2Cr2O7", formula.NewParser(tbl))
//	// s.Class == substance.Salt, Cr +6
//
//	go install github.com/katalvlaran/alchemy/cmd/alchemy@latest
//	alchemy classify "NaHCO3, Al(OH)3"
package alchemy
