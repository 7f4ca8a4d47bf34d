package dhke

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExpMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 2000; i++ {
		m := rng.Uint64() | 1
		b := rng.Uint64()
		e := rng.Uint64() >> uint(rng.Intn(64))
		want := new(big.Int).Exp(new(big.Int).SetUint64(b), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m))
		require.Equal(t, want.Uint64(), ModExp(b, e, m), "%d^%d mod %d", b, e, m)
	}
	assert.Equal(t, uint64(0), ModExp(5, 3, 1))
	assert.Equal(t, uint64(1), ModExp(5, 0, 23))
}

// TestTextbookExchange uses the classic example: p=23, g=5, a=4, b=3.
func TestTextbookExchange(t *testing.T) {
	alice, err := NewPartyWithKey(DefaultParams, 4)
	require.NoError(t, err)
	bob, err := NewPartyWithKey(DefaultParams, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), alice.Public())
	assert.Equal(t, uint64(10), bob.Public())

	tr, err := Exchange(DefaultParams, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(18), tr.Secret)
	assert.Equal(t, SessionKey(DefaultParams, 4, 10, 18), tr.SessionKey)
	assert.Equal(t, ConfirmationTag(tr.SessionKey, 4, 10), tr.Tag)
}

func TestSharedSecretsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	groups := []Params{DefaultParams, {Prime: 23, Generator: 2}, {Prime: 7919, Generator: 7}}
	for bits := 3; bits <= 32; bits++ {
		p, err := GenerateParams(bits)
		require.NoError(t, err)
		groups = append(groups, p)
	}
	for _, params := range groups {
		for i := 0; i < 20; i++ {
			alice, err := NewParty(params, rng)
			require.NoError(t, err)
			bob, err := NewParty(params, rng)
			require.NoError(t, err)
			tr, err := Exchange(params, alice, bob)
			require.NoError(t, err, params.String())

			sb, err := bob.Shared(tr.AlicePublic)
			require.NoError(t, err)
			assert.Equal(t, tr.Secret, sb)
		}
	}
}

func TestGenerateParams(t *testing.T) {
	tests := []struct {
		bits int
		want Params
	}{
		{2, Params{3, 2}},
		{3, Params{7, 3}},
		{8, Params{251, 6}},
		{16, Params{65521, 17}},
		{20, Params{1048573, 2}},
	}
	for _, tt := range tests {
		p, err := GenerateParams(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p)
		assert.NoError(t, p.Validate())
		assert.True(t, p.IsPrimitiveRoot())
	}
	_, err := GenerateParams(1)
	assert.ErrorIs(t, err, ErrInvalidParams)
	_, err = GenerateParams(MaxParamBits + 1)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Params{Prime: 21, Generator: 2}.Validate(), ErrInvalidParams)
	assert.ErrorIs(t, Params{Prime: 2, Generator: 1}.Validate(), ErrInvalidParams)
	assert.ErrorIs(t, Params{Prime: 23, Generator: 23}.Validate(), ErrInvalidParams)
	assert.ErrorIs(t, Params{Prime: 23, Generator: 1}.Validate(), ErrInvalidParams)
	assert.NoError(t, DefaultParams.Validate())
	assert.True(t, DefaultParams.IsPrimitiveRoot())
	assert.False(t, Params{Prime: 23, Generator: 2}.IsPrimitiveRoot())
}

func TestPartyErrors(t *testing.T) {
	_, err := NewPartyWithKey(DefaultParams, 0)
	assert.Error(t, err)
	_, err = NewPartyWithKey(DefaultParams, 22)
	assert.Error(t, err)

	alice, err := NewPartyWithKey(DefaultParams, 6)
	require.NoError(t, err)
	_, err = alice.Shared(0)
	assert.ErrorIs(t, err, ErrInvalidPublic)
	_, err = alice.Shared(23)
	assert.ErrorIs(t, err, ErrInvalidPublic)

	other, err := NewPartyWithKey(Params{Prime: 29, Generator: 2}, 5)
	require.NoError(t, err)
	_, err = Exchange(DefaultParams, alice, other)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestConfirmDetectsMismatch(t *testing.T) {
	key, tag, err := confirm(DefaultParams, 4, 10, 18, 18)
	require.NoError(t, err)
	assert.Equal(t, SessionKey(DefaultParams, 4, 10, 18), key)
	assert.Equal(t, ConfirmationTag(key, 4, 10), tag)

	_, _, err = confirm(DefaultParams, 4, 10, 18, 19)
	assert.ErrorIs(t, err, ErrSecretMismatch)
}

// TestLargePrime uses 2^64-59, the largest 64-bit prime.
func TestLargePrime(t *testing.T) {
	params := Params{Prime: 18446744073709551557, Generator: 2}
	require.NoError(t, params.Validate())
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		alice, err := NewParty(params, rng)
		require.NoError(t, err)
		bob, err := NewParty(params, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, alice.private, uint64(1))
		assert.LessOrEqual(t, alice.private, params.Prime-2)

		tr, err := Exchange(params, alice, bob)
		require.NoError(t, err)
		sb, err := bob.Shared(tr.AlicePublic)
		require.NoError(t, err)
		assert.Equal(t, tr.Secret, sb)
	}

	// the eavesdropper gives up within its cap instead of searching 2^64 values
	eve := &Eavesdropper{Params: params, MaxAttempts: 1000}
	alice, err := NewPartyWithKey(params, params.Prime-2)
	require.NoError(t, err)
	_, err = eve.Recover(alice.Public(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEavesdropperRecoversSecret(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, bits := range []int{5, 10, 16} {
		params, err := GenerateParams(bits)
		require.NoError(t, err)
		alice, err := NewParty(params, rng)
		require.NoError(t, err)
		bob, err := NewParty(params, rng)
		require.NoError(t, err)
		tr, err := Exchange(params, alice, bob)
		require.NoError(t, err)

		eve := &Eavesdropper{Params: params}
		rec, err := eve.Recover(tr.AlicePublic, tr.BobPublic)
		require.NoError(t, err)
		assert.Equal(t, tr.Secret, rec.Secret)
		assert.Equal(t, tr.SessionKey, rec.SessionKey)
		assert.Equal(t, tr.Tag, ConfirmationTag(rec.SessionKey, tr.AlicePublic, tr.BobPublic))
		// with a primitive root the exponent is unique in [1, p-1]
		assert.Equal(t, alice.private, rec.Exponent)
		assert.LessOrEqual(t, rec.Attempts, params.Prime-1)
	}
}

// TestEavesdropperSmallSubgroup uses g=2 mod 23, which has order 11. The
// recovered exponent may differ from Alice's, the secret may not.
func TestEavesdropperSmallSubgroup(t *testing.T) {
	params := Params{Prime: 23, Generator: 2}
	alice, err := NewPartyWithKey(params, 15)
	require.NoError(t, err)
	bob, err := NewPartyWithKey(params, 7)
	require.NoError(t, err)
	tr, err := Exchange(params, alice, bob)
	require.NoError(t, err)

	eve := &Eavesdropper{Params: params}
	rec, err := eve.Recover(tr.AlicePublic, tr.BobPublic)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), rec.Exponent)
	assert.Equal(t, tr.Secret, rec.Secret)
}

func TestEavesdropperGivesUp(t *testing.T) {
	params := Params{Prime: 23, Generator: 2}
	eve := &Eavesdropper{Params: params}
	// 5 is not a power of 2 mod 23
	rec, err := eve.Recover(5, 4)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, uint64(22), rec.Attempts)

	eve = &Eavesdropper{Params: DefaultParams, MaxAttempts: 3}
	alice, err := NewPartyWithKey(DefaultParams, 20)
	require.NoError(t, err)
	_, err = eve.Recover(alice.Public(), 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func BenchmarkRecover(b *testing.B) {
	params, err := GenerateParams(20)
	if err != nil {
		b.Fatal(err)
	}
	alice, _ := NewPartyWithKey(params, params.Prime-2)
	eve := &Eavesdropper{Params: params}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eve.Recover(alice.Public(), 2)
	}
}
