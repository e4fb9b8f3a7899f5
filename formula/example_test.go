// SPDX-License-Identifier: MIT

package formula_test

import (
	"fmt"

	"github.com/katalvlaran/alchemy/formula"
	"github.com/katalvlaran/alchemy/periodic"
)

// ExampleParse splits a reaction-style string into element multisets.
func ExampleParse() {
	tbl, err := periodic.Default()
	if err != nil {
		fmt.Println(err)
		return
	}

	terms, err := formula.Parse("Zn + 2HCl", tbl)
	fmt.Println(len(terms), err)

	terms, err = formula.Parse("Zn + HCl + Fe2(SO4)3", tbl)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, ms := range terms {
		fmt.Println(ms.Formula())
	}
	// Output:
	// 0 formula: malformed formula: count without element in "2HCl"
	// Zn
	// HCl
	// Fe2S3O12
}
