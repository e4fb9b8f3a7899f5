// SPDX-License-Identifier: MIT

// Package formula parses chemical formulas into element multisets.
//
// A formula string holds one or more terms separated by '+', ',' or white
// space; every term becomes one substance.Multiset:
//
//	"H2SO4"            → {H:2, S:1, O:4}
//	"Al(OH)3"          → {Al:1, O:3, H:3}
//	"K4[Fe(CN)6]"      → {K:4, Fe:1, C:6, N:6}
//	"Na + H₂O"         → {Na:1}, {H:2, O:1}
//
// Groups in (), [] or {} nest arbitrarily and multiply their contents.
// Counts are ASCII or Unicode subscript digits in 1..255. Repeated elements
// are merged. Element records come from a periodic.Lookup, so the parser
// works with any table, including user-extended ones.
package formula
