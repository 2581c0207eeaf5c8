package crack

// ShiftCandidate is one plausible shift for a column: if Symbol is the
// enciphered form of the anchor letter, the column was shifted by Shift.
type ShiftCandidate struct {
	Symbol int // alphabet index of the frequent column symbol
	Count  int // occurrences in the column
	Shift  int // implied shift under the anchor hypothesis
}

// shiftFromSymbol is the anchor hypothesis: sym = anchor + shift (mod alen).
func shiftFromSymbol(sym, anchor, alen int) int {
	return (sym - anchor + alen) % alen
}

// RecoverShift derives the shift that maps the column's most frequent
// symbol back onto the anchor symbol. An empty column yields 0.
// Between equally frequent symbols the lowest alphabet index decides.
func RecoverShift(col []int, alphabetLen, anchor int) int {
	most := Frequencies(col, alphabetLen).MostFrequent()
	if most < 0 {
		return 0
	}
	return shiftFromSymbol(most, anchor, alphabetLen)
}

// SuggestShifts lists up to k plausible shifts for a column, one per
// frequent symbol, most frequent first. The first entry implies the same
// shift RecoverShift returns.
func SuggestShifts(col []int, alphabetLen, anchor, k int) []ShiftCandidate {
	return candidates(Frequencies(col, alphabetLen), anchor, alphabetLen, k)
}

func candidates(t FrequencyTable, anchor, alen, k int) []ShiftCandidate {
	top := t.Top(k)
	out := make([]ShiftCandidate, len(top))
	for i, sc := range top {
		out[i] = ShiftCandidate{
			Symbol: sc.Symbol,
			Count:  sc.Count,
			Shift:  shiftFromSymbol(sc.Symbol, anchor, alen),
		}
	}
	return out
}
