package main

import (
	"github.com/spf13/cobra"
	"github.com/yangl1996/codelab/experiments"
)

func newCostCmd(a *app) *cobra.Command {
	var bits []int
	var trials int
	var maxAttempts uint64
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Measure brute-force cost against modulus size, as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("bits") {
				a.cfg.Cost.Bits = bits
			}
			if cmd.Flags().Changed("trials") {
				a.cfg.Cost.Trials = trials
			}
			if cmd.Flags().Changed("max-attempts") {
				a.cfg.Cost.MaxAttempts = maxAttempts
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rows, err := experiments.RunCost(a.cfg.Cost, a.rng(), a.logger)
			if err != nil {
				return err
			}
			return experiments.WriteCSV(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().IntSliceVarP(&bits, "bits", "b", nil, "modulus sizes in bits")
	cmd.Flags().IntVarP(&trials, "trials", "t", 0, "exchanges to break per size")
	cmd.Flags().Uint64Var(&maxAttempts, "max-attempts", 0, "cap on each search, 0 for none")
	return cmd
}
