// SPDX-License-Identifier: MIT

package reaction_test

import (
	"fmt"

	"github.com/katalvlaran/alchemy/formula"
	"github.com/katalvlaran/alchemy/periodic"
	"github.com/katalvlaran/alchemy/reaction"
	"github.com/katalvlaran/alchemy/substance"
)

// ExamplePredict burns iron and dissolves zinc in hydrochloric acid.
func ExamplePredict() {
	tbl, err := periodic.Default()
	if err != nil {
		fmt.Println(err)
		return
	}
	p := formula.NewParser(tbl)

	for _, pair := range [][2]string{{"Fe", "O2"}, {"Zn", "HCl"}} {
		a, _ := substance.FromString(pair[0], p)
		b, _ := substance.FromString(pair[1], p)
		r, err := reaction.Predict([]substance.Substance{a, b}, tbl, reaction.WithHeating(true))
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r, "|", r.Kind)
	}
	// Output:
	// Fe + O2 -(t)-> Fe2O3 | combination
	// Zn + HCl -(t)-> ZnCl2 + H2 | substitution
}
