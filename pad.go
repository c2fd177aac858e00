package shake128

import "fmt"

const (
	// dsByte is the SHAKE suffix 1111 followed by the first pad10*1 bit.
	dsByte = 0x1F
	// lastBit is the closing pad10*1 bit in the final byte of the block.
	lastBit = 0x80
)

// pad returns the final rate-sized block for a remainder shorter than rate.
// When the remainder is rate-1 bytes long both marks land in the last byte
// and combine to 0x9F.
func pad(remainder []byte, rate int) []byte {
	if len(remainder) >= rate {
		panic(fmt.Sprintf("shake128: pad remainder of %d bytes, rate %d", len(remainder), rate))
	}
	block := make([]byte, rate)
	copy(block, remainder)
	block[len(remainder)] ^= dsByte
	block[rate-1] ^= lastBit
	return block
}
