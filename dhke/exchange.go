package dhke

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Transcript records a completed exchange. Secret and SessionKey are what both
// parties agreed on; an eavesdropper sees only Params and the public values.
type Transcript struct {
	Params
	AlicePublic uint64
	BobPublic   uint64
	Secret      uint64
	SessionKey  [blake2b.Size256]byte
	Tag         uint64
}

// SessionKey derives a symmetric key from the shared secret, bound to the
// group and both public values.
func SessionKey(params Params, alicePub, bobPub, secret uint64) [blake2b.Size256]byte {
	var buf [40]byte
	binary.BigEndian.PutUint64(buf[0:8], params.Prime)
	binary.BigEndian.PutUint64(buf[8:16], params.Generator)
	binary.BigEndian.PutUint64(buf[16:24], alicePub)
	binary.BigEndian.PutUint64(buf[24:32], bobPub)
	binary.BigEndian.PutUint64(buf[32:40], secret)
	return blake2b.Sum256(buf[:])
}

// ConfirmationTag is a SipHash MAC over the public values, keyed with the
// first 16 bytes of the session key. Parties compare tags to confirm they hold
// the same key without revealing it.
func ConfirmationTag(key [blake2b.Size256]byte, alicePub, bobPub uint64) uint64 {
	k0 := binary.LittleEndian.Uint64(key[0:8])
	k1 := binary.LittleEndian.Uint64(key[8:16])
	var msg [16]byte
	binary.LittleEndian.PutUint64(msg[0:8], alicePub)
	binary.LittleEndian.PutUint64(msg[8:16], bobPub)
	return siphash.Hash(k0, k1, msg[:])
}

// confirm derives each side's session key from its own view of the secret and
// compares only the confirmation tags, as two parties would over the wire.
func confirm(params Params, pa, pb, sa, sb uint64) ([blake2b.Size256]byte, uint64, error) {
	ka := SessionKey(params, pa, pb, sa)
	ta := ConfirmationTag(ka, pa, pb)
	kb := SessionKey(params, pa, pb, sb)
	tb := ConfirmationTag(kb, pa, pb)
	if ta != tb {
		return ka, 0, fmt.Errorf("%w: confirmation tags %x and %x differ", ErrSecretMismatch, ta, tb)
	}
	return ka, ta, nil
}

// Exchange runs the protocol between alice and bob. Each side computes the
// secret from the other's public value and derives its own session key; the
// exchange fails with ErrSecretMismatch if their confirmation tags disagree.
func Exchange(params Params, alice, bob *Party) (Transcript, error) {
	if err := params.Validate(); err != nil {
		return Transcript{}, err
	}
	if alice.Params != params || bob.Params != params {
		return Transcript{}, fmt.Errorf("%w: parties use different groups", ErrInvalidParams)
	}
	pa := alice.Public()
	pb := bob.Public()

	sa, err := alice.Shared(pb)
	if err != nil {
		return Transcript{}, err
	}
	sb, err := bob.Shared(pa)
	if err != nil {
		return Transcript{}, err
	}
	key, tag, err := confirm(params, pa, pb, sa, sb)
	if err != nil {
		return Transcript{}, err
	}

	return Transcript{
		Params:      params,
		AlicePublic: pa,
		BobPublic:   pb,
		Secret:      sa,
		SessionKey:  key,
		Tag:         tag,
	}, nil
}
