// SPDX-License-Identifier: MIT

package commands

import (
	"strings"

	"github.com/katalvlaran/alchemy/reaction"
	"github.com/katalvlaran/alchemy/substance"
	"github.com/spf13/cobra"
)

func newReactCmd(e *env) *cobra.Command {
	var heat bool

	cmd := &cobra.Command{
		Use:   "react A B",
		Short: "Predict the products of a two-reagent reaction",
		Long: `Predict the products of metal + non-metal, metal + water and metal + acid
reactions. Less active metals only react when --heat is given.`,
		Example: `  alchemy react Na H2O
  alchemy react "Fe + O2" --heat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("heat") {
				heat = e.cfg.Heating
			}
			return e.runReact(args, heat)
		},
	}
	cmd.Flags().BoolVar(&heat, "heat", false, "React under heating")

	return cmd
}

func (e *env) runReact(args []string, heat bool) error {
	inputs, err := e.parser.Parse(strings.Join(args, " "))
	if err != nil {
		return e.out.Error("Invalid formula", err.Error(), nil)
	}

	classify := substance.WithLogger(e.logger)
	reagents := make([]substance.Substance, 0, len(inputs))
	for _, in := range inputs {
		s, err := substance.Classify(in, classify)
		if err != nil {
			return e.out.Error("Unknown reagent", err.Error(), nil)
		}
		reagents = append(reagents, s)
	}

	r, err := reaction.Predict(reagents, e.table,
		reaction.WithHeating(heat),
		reaction.WithClassifyOptions(classify))
	if err != nil {
		return e.out.Error("Cannot predict reaction", err.Error(), []string{
			"supported: metal + non-metal, metal + water, metal + acid",
			"pass exactly two reagents",
		})
	}

	if r.Kind == reaction.None {
		e.out.Warning("%s\n", r)
		return nil
	}
	e.out.Success("%s\n", r)
	e.out.Field("kind", r.Kind)
	for _, p := range r.Products {
		e.out.Field(p.Formula(), p.Class)
	}

	return nil
}
