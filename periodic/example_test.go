// SPDX-License-Identifier: MIT

package periodic_test

import (
	"fmt"

	"github.com/katalvlaran/alchemy/periodic"
)

// ExampleTable_Lookup reads two records from the embedded table.
func ExampleTable_Lookup() {
	tbl, err := periodic.Default()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, sym := range []string{"Fe", "S"} {
		e, _ := tbl.Lookup(sym)
		fmt.Printf("%s charge=%d group=%d valencies=%v\n", e.Symbol, e.Charge, e.Group, e.Valencies)
	}
	// Output:
	// Fe charge=26 group=8 valencies=[2 3]
	// S charge=16 group=16 valencies=[2 4 6]
}
