package main

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/yangl1996/codelab/dhke"
	"go.uber.org/zap"
)

// largeGroupAttempts caps the search when the group is too large to exhaust
// and no cap was given.
const largeGroupAttempts = 1 << 24

type dhFlags struct {
	prime, generator uint64
	bits             int
	alice, bob       uint64
	maxAttempts      uint64
}

func (f *dhFlags) params() (dhke.Params, error) {
	if f.bits != 0 {
		return dhke.GenerateParams(f.bits)
	}
	p := dhke.Params{Prime: f.prime, Generator: f.generator}
	return p, p.Validate()
}

func party(params dhke.Params, private uint64, rng *rand.Rand) (*dhke.Party, error) {
	if private == 0 {
		return dhke.NewParty(params, rng)
	}
	return dhke.NewPartyWithKey(params, private)
}

func newDHCmd(a *app) *cobra.Command {
	f := &dhFlags{}
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Run a toy Diffie-Hellman exchange and break it by brute force",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := f.params()
			if err != nil {
				return err
			}
			small := params.Prime < 1<<dhke.MaxParamBits
			if small && !params.IsPrimitiveRoot() {
				a.logger.Warn("generator is not a primitive root", zap.Stringer("group", params))
			}
			maxAttempts := f.maxAttempts
			if !small && maxAttempts == 0 {
				maxAttempts = largeGroupAttempts
				a.logger.Info("capping eavesdropper search", zap.Stringer("group", params), zap.Uint64("max_attempts", maxAttempts))
			}
			rng := a.rng()
			alice, err := party(params, f.alice, rng)
			if err != nil {
				return fmt.Errorf("alice: %w", err)
			}
			bob, err := party(params, f.bob, rng)
			if err != nil {
				return fmt.Errorf("bob: %w", err)
			}
			tr, err := dhke.Exchange(params, alice, bob)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "group:        ", params)
			fmt.Fprintln(out, "alice public: ", tr.AlicePublic)
			fmt.Fprintln(out, "bob public:   ", tr.BobPublic)
			fmt.Fprintln(out, "shared secret:", tr.Secret)
			fmt.Fprintln(out, "session key:  ", hex.EncodeToString(tr.SessionKey[:]))

			eve := &dhke.Eavesdropper{Params: params, MaxAttempts: maxAttempts}
			start := time.Now()
			rec, err := eve.Recover(tr.AlicePublic, tr.BobPublic)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Fprintf(out, "eavesdropper failed after %d attempts\n", rec.Attempts)
				return nil
			}
			a.logger.Debug("eavesdropper finished", zap.Uint64("attempts", rec.Attempts), zap.Duration("elapsed", elapsed))
			fmt.Fprintf(out, "eavesdropper:  exponent %d, secret %d after %d attempts\n", rec.Exponent, rec.Secret, rec.Attempts)
			if rec.SessionKey == tr.SessionKey {
				fmt.Fprintln(out, "eavesdropper holds the session key")
			}
			return nil
		},
	}
	cmd.Flags().Uint64VarP(&f.prime, "prime", "p", dhke.DefaultParams.Prime, "prime modulus")
	cmd.Flags().Uint64VarP(&f.generator, "generator", "g", dhke.DefaultParams.Generator, "generator")
	cmd.Flags().IntVarP(&f.bits, "bits", "b", 0, "generate a group of this size instead of using -p and -g")
	cmd.Flags().Uint64Var(&f.alice, "alice", 0, "alice's private exponent, 0 for random")
	cmd.Flags().Uint64Var(&f.bob, "bob", 0, "bob's private exponent, 0 for random")
	cmd.Flags().Uint64Var(&f.maxAttempts, "max-attempts", 0, "cap on the eavesdropper's search, 0 for none below 2^40 and 2^24 above")
	return cmd
}
