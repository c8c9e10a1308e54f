package hufftext

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits as ASCII '0' and '1' characters, first
// bit first.  Code("") is legal: it is what the one symbol of a
// single-symbol text receives.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	if hc == "" {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// hasPrefix reports whether prefix is a proper prefix of hc.
func (hc Code) hasPrefix(prefix Code) bool {
	return len(prefix) < len(hc) && hc[:len(prefix)] == prefix
}
