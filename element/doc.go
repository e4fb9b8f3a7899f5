// SPDX-License-Identifier: MIT

// Package element defines the immutable chemical Element record consumed by
// the substance classifier, together with the analytic predicates that place
// an element on the metal / non-metal staircase of the periodic table.
//
// What lives here:
//
//	Element        : charge, group, period, relative atomic mass,
//	                  valencies and electronegativity of one element.
//	IsMetal        : period/group staircase (B-Si-As-Te-Po border).
//	IsAmphoteric   : metals outside groups 1–2 (Al, Cr, Ti, Fe, Zn …).
//	IsOxidant      : group > 15 or electronegativity > 2.8.
//	Validate       : field validation via go-playground/validator.
//
// Elements are plain values. Copying an Element copies its Valencies slice
// header only; callers must treat Valencies as read-only.
//
//	na := element.Element{Symbol: "Na", Charge: 11, Group: 1, Period: 3,
//		RelativeAtomicMass: 22.98977, Valencies: []int{1}, Electronegativity: 0.93}
//	na.IsMetal() // true
package element
