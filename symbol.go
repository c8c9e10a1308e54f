package hufftext

// Symbol represents one character of the input text.  A multi-byte UTF-8
// sequence is a single Symbol.
type Symbol rune

// MaxHeaderSymbol is the largest Symbol that the header can represent
// without loss.
const MaxHeaderSymbol = Symbol(0xff)

// Byte returns the low 8 bits of the Symbol's code point, which is what the
// header records.  Symbols above MaxHeaderSymbol collide with smaller ones.
func (sym Symbol) Byte() byte {
	return byte(sym)
}

// Truncated reports whether Byte loses information for this Symbol.
func (sym Symbol) Truncated() bool {
	return sym < 0 || sym > MaxHeaderSymbol
}
