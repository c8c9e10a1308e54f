package hufftext

import (
	"fmt"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	countBits  = 32
	sizeBits   = 8
	symbolBits = 8
	entryBits  = sizeBits + symbolBits
)

// HeaderEntry is one code table entry as it appears in the header.
type HeaderEntry struct {
	Size   byte
	Symbol byte
}

// EncodeBits serializes ct as a header, then appends the code of every
// symbol of text in order.  The result is a string of '0' and '1'.
func EncodeBits(ct CodeTable, text string) (string, error) {
	numEntries := ct.Len()
	assert.Assertf(uint64(numEntries) <= math.MaxUint32, "%d code table entries do not fit in %d bits", numEntries, countBits)

	var buf strings.Builder
	buf.Grow(countBits + numEntries*entryBits + len(text))

	appendBits(&buf, uint64(numEntries), countBits)
	for _, e := range ct.entries {
		size := e.Code.Size()
		assert.Assertf(size <= MaxCodeSize, "code size %d > MaxCodeSize %d", size, MaxCodeSize)
		appendBits(&buf, uint64(size), sizeBits)
		appendBits(&buf, uint64(e.Symbol.Byte()), symbolBits)
	}

	for offset, ch := range text {
		hc, found := ct.Lookup(Symbol(ch))
		if !found {
			return "", fmt.Errorf("%w: %q at byte offset %d", ErrUnknownSymbol, ch, offset)
		}
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}

// ParseHeader reads the header at the start of bits.  It returns the entries
// in serialization order and the offset at which the message body begins.
// It does not interpret the body.
func ParseHeader(bits string) ([]HeaderEntry, int, error) {
	if len(bits) < countBits {
		return nil, 0, fmt.Errorf("%w: need %d bits for entry count, have %d", ErrTruncated, countBits, len(bits))
	}
	count, ok := parseBits(bits[:countBits])
	if !ok {
		return nil, 0, ErrInvalidBit
	}

	offset := countBits
	if need := uint64(offset) + count*entryBits; need > uint64(len(bits)) {
		return nil, 0, fmt.Errorf("%w: need %d bits for %d entries, have %d", ErrTruncated, need, count, len(bits))
	}

	entries := make([]HeaderEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		size, ok1 := parseBits(bits[offset : offset+sizeBits])
		offset += sizeBits
		sym, ok2 := parseBits(bits[offset : offset+symbolBits])
		offset += symbolBits
		if !ok1 || !ok2 {
			return nil, 0, ErrInvalidBit
		}
		entries = append(entries, HeaderEntry{Size: byte(size), Symbol: byte(sym)})
	}
	return entries, offset, nil
}
