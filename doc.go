// Package hufftext implements a single-pass Huffman text encoder.  The input
// text is counted, a Huffman tree is built from the symbol frequencies, and
// the resulting code table is emitted together with the encoded message as a
// self-describing payload.
//
// The output format is a bit string made of fixed-width fields, most
// significant bit first:
//
//     [32 bits: entry count]
//     entry count times:
//         [8 bits: code length]
//         [8 bits: symbol, low byte of its code point]
//     [remaining bits: the code of each message symbol, in input order]
//
// The bit string is then packed 4 bits to a byte, so every output byte is in
// the range 0..15.  There is no padding: a bit string whose length is not a
// multiple of 4 cannot be packed, and encoding fails.
//
// Only symbols in the range U+0000..U+00FF survive the header intact; larger
// code points are truncated to their low 8 bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftext
