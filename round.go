package shake128

import "math/bits"

// roundConstants are the iota constants for Keccak-f[1600] (FIPS 202, 3.2.5).
var roundConstants = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rhoOffsets is the left rotation applied to each lane by rho.
var rhoOffsets = [Lanes]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piIndices maps each destination lane to the source lane it takes after pi.
var piIndices = [Lanes]int{
	0, 6, 12, 18, 24,
	3, 9, 10, 16, 22,
	1, 7, 13, 19, 20,
	4, 5, 11, 17, 23,
	2, 8, 14, 15, 21,
}

// theta XORs every lane with the parities of two neighbouring columns.
func theta(a State) State {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for i := range a {
		a[i] ^= d[i%5]
	}
	return a
}

// rho rotates each lane by its fixed offset.
func rho(a State) State {
	for i := range a {
		a[i] = bits.RotateLeft64(a[i], rhoOffsets[i])
	}
	return a
}

// pi relocates lanes; no bits change.
func pi(a State) State {
	var b State
	for i, src := range piIndices {
		b[i] = a[src]
	}
	return b
}

// chi is the only non-linear step, applied row by row.
func chi(a State) State {
	var b State
	for y := 0; y < Lanes; y += 5 {
		for x := 0; x < 5; x++ {
			b[y+x] = a[y+x] ^ (^a[y+(x+1)%5] & a[y+(x+2)%5])
		}
	}
	return b
}

// iotaStep mixes the round constant into lane 0.
func iotaStep(a State, round int) State {
	a[0] ^= roundConstants[round]
	return a
}
