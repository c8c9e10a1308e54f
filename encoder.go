package hufftext

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// Encoder holds the frequencies and code table derived from one text.
type Encoder struct {
	freqs FrequencyTable
	table CodeTable
}

// Init initializes this Encoder from text.  It counts the symbols, builds the
// Huffman tree, and derives the code table; the tree itself is not kept.
//
// Init fails with ErrInvalidText if text is not valid UTF-8, and with
// ErrEmptyInput if text is empty.
//
func (e *Encoder) Init(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}

	freqs := CountFrequencies(text)
	t, err := buildTree(freqs)
	if err != nil {
		return err
	}

	*e = Encoder{
		freqs: freqs,
		table: buildCodeTable(t),
	}
	return nil
}

// Frequencies returns the frequency table computed by Init.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freqs
}

// Table returns the code table computed by Init.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Bits returns the unpacked bit string for text.
func (e Encoder) Bits(text string) (string, error) {
	return EncodeBits(e.table, text)
}

// Encode returns the packed output for text.  text is normally the same text
// that was given to Init.
func (e Encoder) Encode(text string) ([]byte, error) {
	bits, err := e.Bits(text)
	if err != nil {
		return nil, err
	}
	return Pack(bits)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", e.table.Len())
	fmt.Fprintf(&buf, "\tCost() = %d\n", e.table.Cost(e.freqs))
	for _, entry := range e.table.entries {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(entry.Symbol), entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode is a convenience function that initializes an Encoder from text and
// encodes text with it.
func Encode(text string) ([]byte, error) {
	var e Encoder
	if err := e.Init(text); err != nil {
		return nil, err
	}
	return e.Encode(text)
}
