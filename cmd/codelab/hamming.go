package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yangl1996/codelab/experiments"
	"github.com/yangl1996/codelab/hamming"
	"go.uber.org/zap"
)

func newHammingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamming",
		Short: "Hamming single-error-correcting codes",
	}

	encode := &cobra.Command{
		Use:   "encode [bits]",
		Short: "Insert parity bits into a string of 0s and 1s",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := hamming.ParityBits(len(args[0]))
			if err != nil {
				return err
			}
			w, err := hamming.Encode(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("encoded", zap.Int("data_bits", len(args[0])), zap.Int("parity_bits", p))
			fmt.Fprintln(cmd.OutOrStdout(), w)
			return nil
		},
	}

	correct := &cobra.Command{
		Use:   "correct [word]",
		Short: "Locate and fix a single flipped bit, then print the data bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixed, pos, err := hamming.Correct(args[0])
			if err != nil {
				return err
			}
			data, err := hamming.Extract(fixed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if pos == 0 {
				fmt.Fprintln(out, "no error")
			} else {
				fmt.Fprintln(out, "error at position", pos)
			}
			fmt.Fprintln(out, "codeword:", fixed)
			fmt.Fprintln(out, "data:    ", data)
			return nil
		},
	}

	var payload string
	var flipProb float64
	send := &cobra.Command{
		Use:   "send",
		Short: "Send a payload as Hamming(7,4) codewords over a noisy channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("payload") {
				a.cfg.Hamming.Payload = payload
			}
			if cmd.Flags().Changed("flip-prob") {
				a.cfg.Hamming.FlipProb = flipProb
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rep, err := experiments.RunHamming(a.cfg.Hamming, a.rng(), a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "sent:    ", strings.Join(rep.Words, " "))
			fmt.Fprintln(out, "received:", strings.Join(rep.Received, " "))
			fmt.Fprintf(out, "flipped %d of %d codewords, corrected %d\n", rep.Flips, len(rep.Words), rep.Corrected)
			fmt.Fprintf(out, "decoded: %q\n", rep.Decoded)
			return nil
		},
	}
	send.Flags().StringVarP(&payload, "payload", "p", "", "text to send")
	send.Flags().Float64VarP(&flipProb, "flip-prob", "f", 0, "probability that a codeword has one bit flipped")

	cmd.AddCommand(encode, correct, send)
	return cmd
}
