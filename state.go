package shake128

import "encoding/hex"

const (
	// Lanes is the number of 64-bit lanes in the Keccak-f[1600] state.
	Lanes = 25
	// Size is the state size in bytes.
	Size = Lanes * 8
)

// State is the 5x5 lane matrix. Lane i sits at column i%5, row i/5.
type State [Lanes]uint64

// bytesToState reads b as little-endian lanes. A short final group is
// zero-padded on the high side. Bytes beyond Size are ignored.
func bytesToState(b []byte) State {
	var a State
	if len(b) > Size {
		b = b[:Size]
	}
	n := len(b) >> 3
	for i := 0; i < n; i++ {
		a[i] = le64(b[8*i:])
	}
	if tail := b[n<<3:]; len(tail) > 0 {
		var buf [8]byte
		copy(buf[:], tail)
		a[n] = le64(buf[:])
	}
	return a
}

// Bytes serializes all 25 lanes little-endian.
func (a State) Bytes() [Size]byte {
	var b [Size]byte
	for i, lane := range a {
		putLE64(b[8*i:], lane)
	}
	return b
}

// String returns the serialized state as lowercase hex.
func (a State) String() string {
	b := a.Bytes()
	return hex.EncodeToString(b[:])
}

// xorIn XORs block into the leading lanes of the state. Lanes past
// ceil(len(block)/8) are left as they are.
func (a *State) xorIn(block []byte) {
	lanes := (len(block) + 7) >> 3
	b := bytesToState(block)
	for i := 0; i < lanes && i < Lanes; i++ {
		a[i] ^= b[i]
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
