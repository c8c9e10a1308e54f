package hufftext

import (
	"fmt"
)

// NibbleBits is the number of bits packed into each output byte.
const NibbleBits = 4

// Pack splits bits into 4-bit chunks and turns each chunk into one byte, so
// the high 4 bits of every output byte are zero.  There is no padding: Pack
// fails with ErrMisaligned if len(bits) is not a multiple of 4.
func Pack(bits string) ([]byte, error) {
	if len(bits)%NibbleBits != 0 {
		return nil, fmt.Errorf("%w: got %d bits", ErrMisaligned, len(bits))
	}

	out := make([]byte, 0, len(bits)/NibbleBits)
	for i := 0; i < len(bits); i += NibbleBits {
		v, ok := parseBits(bits[i : i+NibbleBits])
		if !ok {
			return nil, fmt.Errorf("%w: chunk %q at bit %d", ErrInvalidBit, bits[i:i+NibbleBits], i)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Unpack reverses Pack.  It fails with ErrInvalidNibble if any byte is
// greater than 15.
func Unpack(data []byte) (string, error) {
	buf := make([]byte, 0, len(data)*NibbleBits)
	for i, b := range data {
		if b > 0x0f {
			return "", fmt.Errorf("%w: byte %d is 0x%02x", ErrInvalidNibble, i, b)
		}
		for j := NibbleBits - 1; j >= 0; j-- {
			buf = append(buf, '0'+(b>>uint(j))&1)
		}
	}
	return string(buf), nil
}
