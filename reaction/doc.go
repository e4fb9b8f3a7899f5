// SPDX-License-Identifier: MIT

// Package reaction predicts the products of simple two-reagent inorganic
// reactions over classified substances.
//
// Supported families:
//
//	metal + non-metal  → binary compound      (combination)
//	  2Na + O2   → Na2O2, 4Li + O2 → 2Li2O, Ag + O2 → no reaction
//	metal + water      → hydroxide + H2       (substitution, active metals)
//	                   → oxide + H2           (medium-active metals, heating)
//	metal + acid       → salt + H2            (substitution)
//	  Zn + HCl → ZnCl2 + H2, Cu + HCl → no reaction
//
// Oxidation states of combination products follow coarse rules: alkali and
// alkaline-earth metals take their group; other metals react only when
// heated and take the group (groups 3–5), the middle valency (group 6) or the
// highest valency. The non-metal takes group − 18. Indices come from the
// least common multiple of both magnitudes. Every product is built as an
// element multiset and classified with substance.Classify, so products carry
// the same guarantees as any classified substance.
//
// Coefficients are not balanced; Products lists distinct substances only.
package reaction
