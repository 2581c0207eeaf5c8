package alphabet

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmpty reports an alphabet with no symbols.
	ErrEmpty = errors.New("alphabet has no symbols")
	// ErrDuplicateSymbol reports a symbol occurring twice after case folding.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")
	// ErrUnknownSymbol reports a rune outside the alphabet.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")
)

// Alphabet is an ordered set of unique symbols.
// Construct once with New, then map text with Normalize and Render.
// Both lookup directions are precomputed at construction.
type Alphabet struct {
	symbols []rune       // symbols in order, folded to lower case
	index   map[rune]int // symbol (either case) -> position
}

// New builds an Alphabet from the given symbols, in order.
// Symbols are folded to lower case; duplicates after folding are rejected.
func New(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return Alphabet{}, ErrEmpty
	}
	folded := make([]rune, len(runes))
	index := make(map[rune]int, 2*len(runes))
	for i, r := range runes {
		f := unicode.ToLower(r)
		if _, dup := index[f]; dup {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, f)
		}
		folded[i] = f
		index[f] = i
		if u := unicode.ToUpper(f); u != f {
			index[u] = i
		}
	}
	return Alphabet{symbols: folded, index: index}, nil
}

// MustNew is like New but panics on an invalid symbol set.
// Intended for alphabet literals.
func MustNew(symbols string) Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Index returns the position of r, folding case.
// The second result is false when r is not an alphabet symbol.
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is an alphabet symbol, folding case.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Rune returns the symbol at position i.
// i must be in [0, Len()).
func (a Alphabet) Rune(i int) rune {
	return a.symbols[i]
}

// String returns the symbols in order.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// Normalize maps raw text onto the alphabet.
// Case is folded and every rune outside the alphabet is dropped,
// so the result may be empty.
func (a Alphabet) Normalize(raw string) []int {
	seq := make([]int, 0, utf8.RuneCountInString(raw))
	for _, r := range raw {
		if i, ok := a.index[r]; ok {
			seq = append(seq, i)
		}
	}
	return seq
}

// Render converts a symbol sequence back to text.
// Every index must be in [0, Len()).
func (a Alphabet) Render(seq []int) string {
	out := make([]rune, len(seq))
	for i, s := range seq {
		out[i] = a.symbols[s]
	}
	return string(out)
}
