// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/alchemy/substance"
	"github.com/spf13/cobra"
)

func newClassifyCmd(e *env) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "classify FORMULA...",
		Short: "Classify substances and resolve oxidation states",
		Long: `Classify every formula and print its class and the oxidation state of
each block. Formulas may be separate arguments or one argument separated by
'+' or ','.

Exits with a non-zero status if any formula cannot be classified.`,
		Example: `  alchemy classify NaCl "Al(OH)3" K2Cr2O7
  alchemy classify "NaHCO3, Fe2(SO4)3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runClassify(cmd, args, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Parallel classifications (default: config concurrency or GOMAXPROCS)")

	return cmd
}

func (e *env) runClassify(cmd *cobra.Command, args []string, jobs int) error {
	inputs, err := e.parser.Parse(strings.Join(args, " "))
	if err != nil {
		return e.out.Error("Invalid formula", err.Error(), []string{
			`element symbols are case sensitive: "NaCl", not "NACL"`,
		})
	}

	opts := []substance.Option{substance.WithLogger(e.logger)}
	if jobs == 0 {
		jobs = e.cfg.Concurrency
	}
	if jobs > 0 {
		opts = append(opts, substance.WithConcurrency(jobs))
	}

	results, err := substance.ClassifyAll(cmd.Context(), inputs, opts...)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			e.out.Warning("%s: %v\n", r.Input.Formula(), r.Err)
			continue
		}
		e.printSubstance(r.Substance)
	}
	if failed > 0 {
		return e.out.Error(
			fmt.Sprintf("%d of %d substances could not be classified", failed, len(results)),
			"", nil)
	}

	return nil
}

// printSubstance prints the class line and one field per block.
func (e *env) printSubstance(s substance.Substance) {
	class := s.Class.String()
	if f, ok := s.Form.(substance.SaltForm); ok {
		class += " (" + f.Kind.String() + ")"
	}
	e.out.Success("%s: %s\n", s.Formula(), class)
	for _, b := range s.Blocks() {
		e.out.Field(b.Symbol, describe(b))
	}
}

// describe renders a block's states: "+3", "-2 ×3 [S +6, O -2]".
func describe(b substance.Block) string {
	if !b.IsComposite() {
		return fmt.Sprintf("%+d", b.OxidationState)
	}
	if b.Opaque {
		return fmt.Sprintf("%+d ×%d (residue)", b.OxidationState, b.Index)
	}
	members := make([]string, len(b.Members))
	for i, m := range b.Members {
		members[i] = fmt.Sprintf("%s %+d", m.Formula(), m.OxidationState)
	}

	return fmt.Sprintf("%+d ×%d [%s]", b.OxidationState, b.Index, strings.Join(members, ", "))
}
