// Package poly1305 computes and checks Poly1305 one-time authenticators.
//
// The accumulator is evaluated with math/big directly over the prime
// 2^130 - 5. It is not constant time; a key must authenticate one message only.
package poly1305

import (
	"crypto/subtle"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

const (
	// KeySize is the one-time key size: 16 bytes of r followed by 16 bytes of s.
	KeySize = 32
	// TagSize is the authenticator size.
	TagSize = 16

	blockSize = 16
)

// ErrInvalidKeySize is returned for keys that are not KeySize bytes long.
var ErrInvalidKeySize = errors.New("poly1305: key must be 32 bytes (64 hex characters)")

var (
	prime  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 130), big.NewInt(5))
	tagMod = new(big.Int).Lsh(big.NewInt(1), 8*TagSize)
)

// ParseKey decodes a key given as 64 hex characters.
func ParseKey(s string) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(s) != 2*KeySize {
		return key, errors.Wrapf(ErrInvalidKeySize, "got %d characters", len(s))
	}
	if _, err := hex.Decode(key[:], []byte(s)); err != nil {
		return key, errors.Wrap(err, "poly1305: decoding key")
	}
	return key, nil
}

// Sum returns the tag of msg under key.
func Sum(key, msg []byte) ([TagSize]byte, error) {
	var tag [TagSize]byte
	if len(key) != KeySize {
		return tag, errors.Wrapf(ErrInvalidKeySize, "got %d bytes", len(key))
	}

	r := leInt(clamp(key[:16]))
	s := leInt(key[16:])

	acc := new(big.Int)
	var block [blockSize + 1]byte
	for len(msg) > 0 {
		k := copy(block[:], msg[:min(blockSize, len(msg))])
		block[k] = 0x01
		acc.Add(acc, leInt(block[:k+1]))
		acc.Mul(acc, r)
		acc.Mod(acc, prime)
		msg = msg[k:]
	}

	acc.Add(acc, s)
	acc.Mod(acc, tagMod)

	be := acc.FillBytes(make([]byte, TagSize))
	for i := range tag {
		tag[i] = be[TagSize-1-i]
	}
	return tag, nil
}

// Verify reports whether tag authenticates msg under key.
func Verify(key, msg, tag []byte) (bool, error) {
	want, err := Sum(key, msg)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want[:], tag) == 1, nil
}

// clamp clears the bits of r that the Poly1305 definition requires to be zero.
func clamp(r []byte) []byte {
	c := make([]byte, len(r))
	copy(c, r)
	c[3] &= 15
	c[7] &= 15
	c[11] &= 15
	c[15] &= 15
	c[4] &= 252
	c[8] &= 252
	c[12] &= 252
	return c
}

// leInt interprets b as a little-endian unsigned integer.
func leInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
