// Command codelab runs the run-length coding, Hamming code and toy
// Diffie-Hellman demonstrations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yangl1996/codelab/experiments"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose    bool
	configPath string
	seed       int64

	cfg    experiments.Config
	logger *zap.Logger
}

// rng returns a generator seeded from the config, or from the clock when the
// seed is 0.
func (a *app) rng() *rand.Rand {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("seeding RNG", zap.Int64("seed", seed))
	return rand.New(rand.NewSource(seed))
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "codelab",
		Short: "Run-length codes, Hamming codes and toy Diffie-Hellman",
		Long: `codelab demonstrates three textbook algorithms:

  rle      run-length encoding and decoding
  hamming  single-error-correcting Hamming codes over bit strings
  dh       a Diffie-Hellman exchange over a tiny prime, broken by brute force
  cost     how the brute-force cost grows with the modulus size`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if a.configPath != "" {
				a.cfg, err = experiments.LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				a.logger.Debug("loaded config", zap.String("path", a.configPath))
			} else {
				a.cfg = experiments.DefaultConfig()
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed = a.seed
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "read config from `file`; flags override its values")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 1, "seed for the RNG, 0 to seed with time")

	root.AddCommand(newRLECmd(a), newHammingCmd(a), newDHCmd(a), newCostCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
