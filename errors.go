package hufftext

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when the text has no symbols, so there is
	// no tree to build.
	ErrEmptyInput = errors.New("hufftext: empty input")

	// ErrInvalidText is returned when the text is not valid UTF-8.
	ErrInvalidText = errors.New("hufftext: input is not valid UTF-8")

	// ErrUnknownSymbol is returned when a message contains a symbol that
	// has no entry in the code table.
	ErrUnknownSymbol = errors.New("hufftext: symbol not in code table")

	// ErrMisaligned is returned when a bit string cannot be split evenly
	// into 4-bit chunks.
	ErrMisaligned = errors.New("hufftext: bit string length is not a multiple of 4")

	// ErrInvalidBit is returned when a bit string contains a character
	// other than '0' or '1'.
	ErrInvalidBit = errors.New("hufftext: invalid bit character")

	// ErrInvalidNibble is returned when a packed byte is greater than 15.
	ErrInvalidNibble = errors.New("hufftext: packed byte out of range 0..15")

	// ErrTruncated is returned when a bit string ends in the middle of the
	// header.
	ErrTruncated = errors.New("hufftext: truncated header")
)
