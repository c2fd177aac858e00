// Package shake128 implements the SHAKE128 extendable-output function
// (FIPS 202) on a pure-Go Keccak-f[1600] permutation.
//
// The whole message is hashed in one call: Sum absorbs the input in 168-byte
// blocks, applies the SHAKE padding (domain suffix 0x1F, pad10*1) and squeezes
// as many bytes as requested. Output of a shorter request is always a prefix
// of a longer one for the same message.
//
// Each round step is a function from State to State, so the permutation can be
// inspected one transformation at a time. No attempt is made to run in
// constant time.
package shake128

import "github.com/pkg/errors"

const (
	// Rate is the SHAKE128 sponge rate in bytes: (1600 - 2*128) / 8.
	Rate = 168

	rateLanes = Rate / 8
)

// ErrInvalidLength is returned when a negative output length is requested.
var ErrInvalidLength = errors.New("shake128: invalid output length")

// Sum returns n bytes of SHAKE128 output for data. data is not modified.
func Sum(data []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%d bytes requested", n)
	}
	var s sponge
	s.absorb(data)
	out := make([]byte, n)
	s.squeeze(out)
	return out, nil
}

// MustSum is like Sum but panics on a negative length.
func MustSum(data []byte, n int) []byte {
	out, err := Sum(data, n)
	if err != nil {
		panic(err)
	}
	return out
}

// sponge carries one SHAKE128 computation. The zero value is the initial
// all-zero state.
type sponge struct {
	state State
}

// absorb consumes the full message, including the padding block. It must be
// called exactly once, before squeeze.
func (s *sponge) absorb(data []byte) {
	for len(data) >= Rate {
		s.state.xorIn(data[:Rate])
		s.state = permute(s.state)
		data = data[Rate:]
	}

	// The padding block is absorbed even when data is empty here.
	s.state.xorIn(pad(data, Rate))
	s.state = permute(s.state)
}

// squeeze fills out from the rate part of the state, permuting between
// blocks only while more output is needed.
func (s *sponge) squeeze(out []byte) {
	for len(out) > 0 {
		b := s.state.Bytes()
		n := copy(out, b[:Rate])
		out = out[n:]
		if len(out) > 0 {
			s.state = permute(s.state)
		}
	}
}
