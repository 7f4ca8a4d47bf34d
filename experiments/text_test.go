package experiments

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yangl1996/codelab/rle"
	"go.uber.org/zap/zaptest"
)

func TestRandomTextHasExactRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	text := RandomText(rng, ConstantLength{3}, []rune("AB"), 25)
	runs := rle.Runs(text)
	require.Len(t, runs, 25)
	for _, r := range runs {
		assert.Equal(t, 3, r.Length)
	}
}

func TestRunRLE(t *testing.T) {
	cfg := DefaultConfig()
	rep, err := RunRLE(cfg.RLE, rand.New(rand.NewSource(cfg.Seed)), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Len(t, rle.Runs(rep.Input), cfg.RLE.Runs)
	d, err := rle.Decode(rep.Encoded)
	require.NoError(t, err)
	assert.Equal(t, rep.Input, d)
	assert.Greater(t, rep.Ratio, 0.0)
}

func TestEncodeTextExample(t *testing.T) {
	rep, err := EncodeText("AABCCCDEEEE", zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "A2BC3DE4", rep.Encoded)
	assert.InDelta(t, 8.0/11.0, rep.Ratio, 1e-9)

	_, err = EncodeText("A1", zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestRunHamming(t *testing.T) {
	cfg := DefaultConfig().Hamming
	cfg.FlipProb = 1
	rep, err := RunHamming(cfg, rand.New(rand.NewSource(2)), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, len(rep.Words), rep.Flips)
	assert.Equal(t, rep.Flips, rep.Corrected)
	assert.Equal(t, cfg.Payload, string(rep.Decoded))
}
