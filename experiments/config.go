package experiments

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/yangl1996/codelab/dhke"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of every demo. A zero Seed means seeding from
// the clock.
type Config struct {
	Seed    int64         `yaml:"seed"`
	RLE     RLEConfig     `yaml:"rle"`
	Hamming HammingConfig `yaml:"hamming"`
	Cost    CostConfig    `yaml:"cost"`
}

type RLEConfig struct {
	Distribution string `yaml:"distribution"` // u(n), s(k) or rs(k,c,delta)
	Runs         int    `yaml:"runs"`
	Alphabet     string `yaml:"alphabet"`
}

type HammingConfig struct {
	FlipProb float64 `yaml:"flip_prob"`
	Payload  string  `yaml:"payload"`
}

type CostConfig struct {
	Bits        []int  `yaml:"bits"`
	Trials      int    `yaml:"trials"`
	MaxAttempts uint64 `yaml:"max_attempts"` // 0 for exhaustive search
}

// DefaultConfig returns the parameters used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		RLE: RLEConfig{
			Distribution: "rs(20,0.03,0.5)",
			Runs:         40,
			Alphabet:     "ABCDEFGH",
		},
		Hamming: HammingConfig{
			FlipProb: 0.3,
			Payload:  "hello, hamming",
		},
		Cost: CostConfig{
			Bits:   []int{8, 10, 12, 14, 16, 18, 20},
			Trials: 50,
		},
	}
}

// Validate rejects parameters the demos cannot run with.
func (c Config) Validate() error {
	if c.RLE.Runs < 0 {
		return errors.New("rle.runs must not be negative")
	}
	if c.RLE.Alphabet == "" {
		return errors.New("rle.alphabet must not be empty")
	}
	if strings.IndexFunc(c.RLE.Alphabet, unicode.IsDigit) >= 0 {
		return errors.New("rle.alphabet must not contain digits")
	}
	if c.Hamming.FlipProb < 0 || c.Hamming.FlipProb > 1 {
		return errors.New("hamming.flip_prob not in [0, 1]")
	}
	if c.Cost.Trials <= 0 {
		return errors.New("cost.trials must be positive")
	}
	for _, b := range c.Cost.Bits {
		if b < 2 || b > dhke.MaxParamBits {
			return fmt.Errorf("cost.bits: %d not in [2, %d]", b, dhke.MaxParamBits)
		}
	}
	return nil
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
