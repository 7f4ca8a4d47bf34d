package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yangl1996/codelab/experiments"
	"github.com/yangl1996/codelab/rle"
)

func newRLECmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rle",
		Short: "Run-length encoding",
	}

	encode := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text, e.g. AABCCCDEEEE -> A2BC3DE4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := experiments.EncodeText(args[0], a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.Encoded)
			return nil
		},
	}

	decode := &cobra.Command{
		Use:   "decode [encoded]",
		Short: "Decode a canonical run-length encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rle.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	var dist, alphabet string
	var runs int
	random := &cobra.Command{
		Use:   "random",
		Short: "Encode random text with run lengths drawn from a distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dist") {
				a.cfg.RLE.Distribution = dist
			}
			if cmd.Flags().Changed("runs") {
				a.cfg.RLE.Runs = runs
			}
			if cmd.Flags().Changed("alphabet") {
				a.cfg.RLE.Alphabet = alphabet
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rep, err := experiments.RunRLE(a.cfg.RLE, a.rng(), a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "input:  ", rep.Input)
			fmt.Fprintln(out, "encoded:", rep.Encoded)
			fmt.Fprintf(out, "ratio:   %.3f\n", rep.Ratio)
			return nil
		},
	}
	random.Flags().StringVarP(&dist, "dist", "d", "", "run-length distribution: u(n) constant, s(k) soliton, rs(k,c,delta) robust soliton")
	random.Flags().IntVarP(&runs, "runs", "n", 0, "number of runs")
	random.Flags().StringVar(&alphabet, "alphabet", "", "symbols to draw from, no digits")

	cmd.AddCommand(encode, decode, random)
	return cmd
}
