package hufftext

import (
	"strings"
)

// appendBits writes the low width bits of v to buf, most significant bit
// first.
func appendBits(buf *strings.Builder, v uint64, width uint) {
	for i := width; i > 0; i-- {
		if (v>>(i-1))&1 != 0 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
}

// parseBits interprets bits as an unsigned base-2 numeral.  It returns false
// if bits contains anything other than '0' and '1'.
func parseBits(bits string) (uint64, bool) {
	var v uint64
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			v <<= 1
		case '1':
			v = (v << 1) | 1
		default:
			return 0, false
		}
	}
	return v, true
}
