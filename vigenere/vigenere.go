package vigenere

import (
	"errors"
	"fmt"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/internal/columns"
)

var (
	// ErrEmptyKey reports a key with no usable symbols.
	ErrEmptyKey = errors.New("empty key")
	// ErrShiftRange reports a shift outside [0, alphabet length).
	ErrShiftRange = errors.New("shift out of range")
)

// Key is an ordered list of per-column shifts.
// Construct with NewKey or ParseKey; the constructors reject empty keys.
// The zero Key is the identity: applying it leaves input unchanged.
type Key struct {
	shifts []int
}

// NewKey builds a Key from explicit shifts.
// Every shift must be in [0, alphabetLen) and the list must not be empty.
func NewKey(shifts []int, alphabetLen int) (Key, error) {
	if len(shifts) == 0 {
		return Key{}, ErrEmptyKey
	}
	ks := make([]int, len(shifts))
	for i, s := range shifts {
		if s < 0 || s >= alphabetLen {
			return Key{}, fmt.Errorf("%w: shift %d at position %d (alphabet length %d)", ErrShiftRange, s, i, alphabetLen)
		}
		ks[i] = s
	}
	return Key{shifts: ks}, nil
}

// ParseKey derives a Key from a key word.
// The word is normalized like regular text: case is folded and runes
// outside the alphabet are dropped. The index of each remaining symbol
// becomes its shift. Errors when nothing remains.
func ParseKey(alph alphabet.Alphabet, word string) (Key, error) {
	shifts := alph.Normalize(word)
	if len(shifts) == 0 {
		return Key{}, fmt.Errorf("%w: %q has no alphabet symbols", ErrEmptyKey, word)
	}
	return Key{shifts: shifts}, nil
}

// Len returns the number of shifts.
func (k Key) Len() int {
	return len(k.shifts)
}

// At returns the shift for column i.
// i must be in [0, Len()).
func (k Key) At(i int) int {
	return k.shifts[i]
}

// Shifts returns a copy of the per-column shifts.
func (k Key) Shifts() []int {
	out := make([]int, len(k.shifts))
	copy(out, k.shifts)
	return out
}

// Render spells the key with alphabet symbols, one per shift.
func (k Key) Render(alph alphabet.Alphabet) string {
	return alph.Render(k.shifts)
}

// Encode applies key to a plaintext sequence.
// The sequence is split into key.Len() stride columns and column i is
// shifted forward by key.At(i), then the columns are interleaved back.
func Encode(alph alphabet.Alphabet, seq []int, key Key) []int {
	return shiftColumns(alph.Len(), seq, key, false)
}

// Decode inverts Encode for the same key.
func Decode(alph alphabet.Alphabet, seq []int, key Key) []int {
	return shiftColumns(alph.Len(), seq, key, true)
}

func shiftColumns(alen int, seq []int, key Key, invert bool) []int {
	n := key.Len()
	if n == 0 || len(seq) == 0 {
		out := make([]int, len(seq))
		copy(out, seq)
		return out
	}
	cols := columns.Split(seq, n)
	for i, col := range cols {
		s := key.shifts[i]
		if invert {
			s = alen - s
		}
		for j := range col {
			col[j] = (col[j] + s) % alen
		}
	}
	return columns.Join(cols)
}

// EncryptText normalizes raw plaintext and renders the encoded ciphertext.
func EncryptText(alph alphabet.Alphabet, raw string, key Key) string {
	return alph.Render(Encode(alph, alph.Normalize(raw), key))
}

// DecryptText normalizes raw ciphertext and renders the decoded plaintext.
func DecryptText(alph alphabet.Alphabet, raw string, key Key) string {
	return alph.Render(Decode(alph, alph.Normalize(raw), key))
}
