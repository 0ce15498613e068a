package huffman

// SymbolCount is one entry of a FrequencyTable.
type SymbolCount struct {
	Symbol byte
	Count  uint64
}

// FrequencyTable maps each symbol present in the input to its occurrence count.
//
// Entries are always exposed in ascending symbol order, independent of the
// order in which the input presented them.
type FrequencyTable struct {
	counts   [256]uint64
	distinct int
	total    uint64
}

// Analyze counts the occurrences of every byte value in data.
// Empty input yields an empty table.
func Analyze(data []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	for _, b := range data {
		ft.add(b, 1)
	}
	return ft
}

// NewFrequencyTable builds a table from explicit counts. Zero counts are skipped.
func NewFrequencyTable(counts map[byte]uint64) *FrequencyTable {
	ft := &FrequencyTable{}
	for sym, n := range counts {
		ft.add(sym, n)
	}
	return ft
}

func (ft *FrequencyTable) add(sym byte, n uint64) {
	if n == 0 {
		return
	}
	if ft.counts[sym] == 0 {
		ft.distinct++
	}
	ft.counts[sym] += n
	ft.total += n
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the occurrence count of sym, zero when absent.
func (ft *FrequencyTable) Count(sym byte) uint64 {
	return ft.counts[sym]
}

// Entries returns the present symbols in ascending symbol order.
func (ft *FrequencyTable) Entries() []SymbolCount {
	entries := make([]SymbolCount, 0, ft.distinct)
	for sym, n := range ft.counts {
		if n != 0 {
			entries = append(entries, SymbolCount{Symbol: byte(sym), Count: n})
		}
	}
	return entries
}
