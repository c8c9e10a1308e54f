package hufftext

// FrequencyTable maps each distinct Symbol of a text to its number of
// occurrences.  It also remembers the order in which symbols first appeared,
// which is the order in which the tree builder sees them.
type FrequencyTable struct {
	counts map[Symbol]uint64
	order  []Symbol
	total  uint64
}

// CountFrequencies scans text and counts each Symbol.  An empty text yields
// an empty table.  Invalid UTF-8 is counted as U+FFFD, one per bad byte.
func CountFrequencies(text string) FrequencyTable {
	ft := FrequencyTable{counts: make(map[Symbol]uint64)}
	for _, ch := range text {
		sym := Symbol(ch)
		if ft.counts[sym] == 0 {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym]++
		ft.total++
	}
	return ft
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of sym, or 0 if it never occurs.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Total returns the number of symbols in the counted text.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in order of first appearance.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}
