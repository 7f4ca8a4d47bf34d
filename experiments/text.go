package experiments

import (
	"errors"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/yangl1996/codelab/rle"
	"go.uber.org/zap"
)

// RandomText builds nruns runs of symbols from alphabet with lengths drawn
// from dist. Adjacent runs never share a symbol, so the text has exactly
// nruns maximal runs when the alphabet has at least two symbols.
func RandomText(rng *rand.Rand, dist RunLengthDist, alphabet []rune, nruns int) string {
	b := strings.Builder{}
	last := -1
	for i := 0; i < nruns; i++ {
		idx := rng.Intn(len(alphabet))
		if idx == last && len(alphabet) > 1 {
			idx = (idx + 1 + rng.Intn(len(alphabet)-1)) % len(alphabet)
		}
		last = idx
		n := dist.Uint64()
		for k := uint64(0); k < n; k++ {
			b.WriteRune(alphabet[idx])
		}
	}
	return b.String()
}

// RLEReport summarises one run-length coding round.
type RLEReport struct {
	Input   string
	Encoded string
	Ratio   float64
}

// RunRLE encodes random text drawn as configured, checks that it decodes back
// and reports the compression ratio.
func RunRLE(cfg RLEConfig, rng *rand.Rand, logger *zap.Logger) (RLEReport, error) {
	dist, err := NewDistribution(cfg.Distribution, rng)
	if err != nil {
		return RLEReport{}, err
	}
	alphabet := []rune(cfg.Alphabet)
	if len(alphabet) == 0 {
		return RLEReport{}, errors.New("empty alphabet")
	}
	text := RandomText(rng, dist, alphabet, cfg.Runs)
	return EncodeText(text, logger)
}

// EncodeText run-length encodes text and verifies the round trip.
func EncodeText(text string, logger *zap.Logger) (RLEReport, error) {
	enc, err := rle.Encode(text)
	if err != nil {
		return RLEReport{}, err
	}
	dec, err := rle.Decode(enc)
	if err != nil {
		return RLEReport{}, err
	}
	if dec != text {
		return RLEReport{}, errors.New("decoded text differs from input")
	}
	ratio, err := rle.Ratio(text)
	if err != nil {
		return RLEReport{}, err
	}
	logger.Debug("encoded text",
		zap.Int("symbols", utf8.RuneCountInString(text)),
		zap.Int("encoded_symbols", utf8.RuneCountInString(enc)),
		zap.Float64("ratio", ratio))
	return RLEReport{text, enc, ratio}, nil
}
