package experiments

import (
	"bytes"
	"errors"
	"math/rand"

	"github.com/yangl1996/codelab/hamming"
	"go.uber.org/zap"
)

// HammingReport summarises sending a payload over a noisy channel.
type HammingReport struct {
	Words     []string
	Received  []string
	Flips     int
	Corrected int
	Decoded   []byte
}

// RunHamming frames cfg.Payload with Hamming(7,4), flips at most one bit per
// codeword with probability cfg.FlipProb, and decodes the result.
func RunHamming(cfg HammingConfig, rng *rand.Rand, logger *zap.Logger) (HammingReport, error) {
	payload := []byte(cfg.Payload)
	ch := &hamming.Channel{Rand: rng, FlipProb: cfg.FlipProb}
	words := hamming.EncodeBytes(payload)
	received, flips := ch.TransmitAll(words)
	decoded, corrected, err := hamming.DecodeBytes(received)
	if err != nil {
		return HammingReport{}, err
	}
	logger.Debug("transmitted payload",
		zap.Int("bytes", len(payload)),
		zap.Int("codewords", len(words)),
		zap.Int("flips", flips),
		zap.Int("corrected", corrected))
	if !bytes.Equal(decoded, payload) {
		return HammingReport{}, errors.New("decoded payload differs from input")
	}
	return HammingReport{
		Words:     words,
		Received:  received,
		Flips:     flips,
		Corrected: corrected,
		Decoded:   decoded,
	}, nil
}
