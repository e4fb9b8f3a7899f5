// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newElementCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "element [SYMBOL...]",
		Short: "Print periodic table records",
		Long: `Print the record of every given element symbol. Without arguments, list
all symbols of the active table in order of atomic number.`,
		Example: `  alchemy element Fe Cr
  alchemy element --table ./my-table.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runElement(args)
		},
	}
}

func (e *env) runElement(symbols []string) error {
	if len(symbols) == 0 {
		all := e.table.Symbols()
		e.out.Info("%d elements: %s\n", len(all), strings.Join(all, " "))
		return nil
	}

	var missing []string
	for _, sym := range symbols {
		el, err := e.table.Lookup(sym)
		if err != nil {
			missing = append(missing, sym)
			continue
		}
		e.out.Success("%s\n", el.Symbol)
		e.out.Field("charge", el.Charge)
		e.out.Field("group", el.Group)
		e.out.Field("period", el.Period)
		e.out.Field("mass", el.RelativeAtomicMass)
		e.out.Field("valencies", el.Valencies)
		e.out.Field("electronegativity", el.Electronegativity)
		e.out.Field("metal", el.IsMetal())
		e.out.Field("amphoteric", el.IsAmphoteric())
		e.out.Field("oxidant", el.IsOxidant())
	}
	if len(missing) > 0 {
		return e.out.Error(
			fmt.Sprintf("Unknown element: %s", strings.Join(missing, ", ")),
			"", []string{"run 'alchemy element' to list the known symbols"})
	}

	return nil
}
