package experiments

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yangl1996/soliton"
)

func TestParseConstantDistribution(t *testing.T) {
	d, err := NewDistribution("u( 3  )", rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	u, ok := d.(ConstantLength)
	require.True(t, ok)
	assert.Equal(t, uint64(3), u.Uint64())
}

func checkSoliton(t *testing.T, d RunLengthDist, ref *soliton.Soliton, k uint64) {
	t.Helper()
	s, ok := d.(*soliton.Soliton)
	require.True(t, ok)
	assert.Equal(t, ref.PMF(), s.PMF())
	for i := 0; i < 1000; i++ {
		v := s.Uint64()
		require.GreaterOrEqual(t, v, uint64(1))
		require.LessOrEqual(t, v, k)
	}
}

func TestParseSolitonDistribution(t *testing.T) {
	d, err := NewDistribution("s( 10  )", rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	checkSoliton(t, d, soliton.NewSoliton(rand.New(rand.NewSource(0)), 10), 10)
}

func TestParseRobustSolitonDistribution(t *testing.T) {
	d, err := NewDistribution("rs( 10, 0.1, 0.001  )", rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	ref := soliton.NewRobustSoliton(rand.New(rand.NewSource(0)), 10, 0.1, 0.001)
	checkSoliton(t, d, ref, 10)

	// a different delta gives a different distribution
	other := soliton.NewRobustSoliton(rand.New(rand.NewSource(0)), 10, 0.1, 0.5)
	assert.NotEqual(t, other.PMF(), ref.PMF())
}

func TestParseDistributionErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for _, s := range []string{"u(0)", "u(x)", "s(0)", "rs(10,0.1)", "rs(10,0.1,1)", "b(1,2)", ""} {
		_, err := NewDistribution(s, rng)
		assert.Error(t, err, s)
	}
}
