// SPDX-License-Identifier: MIT

// Package periodic provides the periodic-table lookup consumed by the formula
// parser and the reaction layer.
//
// A Table maps element symbols to element.Element records. The default table
// (H … Fm) is embedded in the binary as YAML and decoded once per Default
// call; custom tables are loaded from YAML files with the same schema:
//
//	elements:
//	  - {symbol: "Na", charge: 11, group: 1, period: 3, a_rm: 22.98977,
//	     valencies: [1], electronegativity: 0.93}
//
// Every record is validated (element.Validate) and symbols and charges must be
// unique. Tables are safe for concurrent use: lookups take a read lock,
// Insert/Remove take the write lock.
//
//	t, err := periodic.Default()
//	cr, err := t.Lookup("Cr")
package periodic
