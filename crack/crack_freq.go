package crack

import "sort"

// FrequencyTable holds per-symbol occurrence counts for one sequence.
// Build with Frequencies; the table is keyed by alphabet index.
type FrequencyTable struct {
	counts []int // occurrences per alphabet index
	total  int   // sequence length the table was built from
}

// Frequencies counts symbol occurrences in seq.
// Every element of seq must be in [0, alphabetLen).
func Frequencies(seq []int, alphabetLen int) FrequencyTable {
	t := FrequencyTable{counts: make([]int, alphabetLen), total: len(seq)}
	for _, s := range seq {
		t.counts[s]++
	}
	return t
}

// Count returns the occurrences of symbol i.
func (t FrequencyTable) Count(i int) int {
	return t.counts[i]
}

// Total returns the length of the counted sequence.
func (t FrequencyTable) Total() int {
	return t.total
}

// MostFrequent returns the symbol with the highest count.
// Ties resolve to the lowest alphabet index; -1 when the table is empty.
func (t FrequencyTable) MostFrequent() int {
	best, bestCount := -1, 0
	for i, c := range t.counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}
	return best
}

// SymbolCount pairs a symbol with its occurrence count.
type SymbolCount struct {
	Symbol int
	Count  int
}

// Top returns the k most frequent symbols, highest count first.
// Equal counts order by alphabet index. Symbols that never occur are
// excluded, so fewer than k entries may come back.
func (t FrequencyTable) Top(k int) []SymbolCount {
	if k <= 0 {
		return nil
	}
	present := make([]SymbolCount, 0, len(t.counts))
	for i, c := range t.counts {
		if c > 0 {
			present = append(present, SymbolCount{Symbol: i, Count: c})
		}
	}
	sort.Slice(present, func(a, b int) bool {
		if present[a].Count != present[b].Count {
			return present[a].Count > present[b].Count
		}
		return present[a].Symbol < present[b].Symbol
	})
	if len(present) > k {
		present = present[:k]
	}
	return present
}

// IndexOfCoincidence measures how likely two distinct positions of the
// counted sequence hold the same symbol. Sequences shorter than 2 score 0.
// The sum runs over exact integer counts; only the final division is float.
func (t FrequencyTable) IndexOfCoincidence() float64 {
	if t.total < 2 {
		return 0
	}
	var num int64
	for _, c := range t.counts {
		num += int64(c) * int64(c-1)
	}
	den := int64(t.total) * int64(t.total-1)
	return float64(num) / float64(den)
}

// IndexOfCoincidence computes the coincidence index of seq directly.
func IndexOfCoincidence(seq []int, alphabetLen int) float64 {
	return Frequencies(seq, alphabetLen).IndexOfCoincidence()
}
