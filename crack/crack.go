package crack

import (
	"errors"
	"fmt"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/internal/columns"
	"github.com/mhr3/visioner/vigenere"
)

// ErrKeyLengthRange reports a key length outside the acceptable range.
// Out-of-range lengths are always rejected, never clamped.
var ErrKeyLengthRange = errors.New("key length out of range")

// Defaults applied by New for zero Config fields.
const (
	DefaultMaxKeyLength = 15
	DefaultExpectedIC   = 0.056
)

// topCandidates is the number of per-column shift candidates carried in reports.
const topCandidates = 5

// Config controls a Cracker.
type Config struct {
	Alphabet     alphabet.Alphabet
	MaxKeyLength int     // largest candidate key length; 0 means DefaultMaxKeyLength
	ExpectedIC   float64 // coincidence index of the plaintext language; 0 means DefaultExpectedIC
	Anchor       rune    // assumed most frequent plaintext letter, must be in Alphabet
}

// FromProfile builds a Config from a language profile.
func FromProfile(p alphabet.Profile) Config {
	return Config{
		Alphabet:     p.Alphabet,
		MaxKeyLength: DefaultMaxKeyLength,
		ExpectedIC:   p.ExpectedIC,
		Anchor:       p.Anchor,
	}
}

// Cracker recovers keys and plaintext for one configuration.
// Construct with New, then use Automatic, ManualShifts or ManualKey.
// A Cracker is immutable and safe for concurrent use.
type Cracker struct {
	alph   alphabet.Alphabet
	maxLen int
	expIC  float64
	anchor int // alphabet index of the anchor letter
}

// New validates cfg and builds a Cracker.
func New(cfg Config) (*Cracker, error) {
	if cfg.Alphabet.Len() == 0 {
		return nil, fmt.Errorf("crack config: %w", alphabet.ErrEmpty)
	}
	maxLen := cfg.MaxKeyLength
	if maxLen == 0 {
		maxLen = DefaultMaxKeyLength
	}
	if maxLen < 1 {
		return nil, fmt.Errorf("crack config: %w: max key length %d", ErrKeyLengthRange, maxLen)
	}
	expIC := cfg.ExpectedIC
	if expIC == 0 {
		expIC = DefaultExpectedIC
	}
	if expIC < 0 || expIC > 1 {
		return nil, fmt.Errorf("crack config: expected index of coincidence %v outside [0, 1]", expIC)
	}
	anchor, ok := cfg.Alphabet.Index(cfg.Anchor)
	if !ok {
		return nil, fmt.Errorf("crack config: anchor %q: %w", cfg.Anchor, alphabet.ErrUnknownSymbol)
	}
	return &Cracker{alph: cfg.Alphabet, maxLen: maxLen, expIC: expIC, anchor: anchor}, nil
}

// Alphabet returns the alphabet the Cracker operates on.
func (c *Cracker) Alphabet() alphabet.Alphabet {
	return c.alph
}

// ExpectedIC returns the plaintext coincidence index the Cracker
// compares measured values against.
func (c *Cracker) ExpectedIC() float64 {
	return c.expIC
}

// Result is the outcome of one cracking run.
type Result struct {
	Plaintext []int // decoded symbol sequence
	Key       vigenere.Key
	Report    Report
}

// Report carries the analysis observations behind a Result.
// Manual-key runs skip analysis and leave everything but KeyLength empty.
type Report struct {
	KeyLength    int // key length used for the decode
	Estimated    int // key length the estimator picked, 0 if estimation did not run
	LengthScores []LengthScore
	Columns      []ColumnReport
}

// ColumnReport describes one stride column at the decoding key length.
type ColumnReport struct {
	Index      int     // column offset, in [0, KeyLength)
	Length     int     // symbols in the column
	IC         float64 // coincidence index of the column
	Candidates []ShiftCandidate
	Shift      int // shift used for this column
}

// Automatic runs the full pipeline: estimate the key length, recover one
// shift per column, assemble the key and decode.
// An input that normalized to nothing decodes to nothing; that is not an
// error here.
func (c *Cracker) Automatic(seq []int) (Result, error) {
	est, scores, err := EstimateKeyLength(seq, c.alph.Len(), c.maxLen, c.expIC)
	if err != nil {
		return Result{}, err
	}
	shifts, cols := c.analyzeColumns(seq, est, nil)
	key, err := vigenere.NewKey(shifts, c.alph.Len())
	if err != nil {
		return Result{}, fmt.Errorf("assemble key: %w", err)
	}
	return Result{
		Plaintext: vigenere.Decode(c.alph, seq, key),
		Key:       key,
		Report: Report{
			KeyLength:    est,
			Estimated:    est,
			LengthScores: scores,
			Columns:      cols,
		},
	}, nil
}

// ManualShifts decodes with caller-supplied shifts.
// The key length is len(shifts). Estimation and per-column candidate
// analysis still run for the report, but the supplied shifts always win.
func (c *Cracker) ManualShifts(seq []int, shifts []int) (Result, error) {
	if len(shifts) == 0 {
		return Result{}, fmt.Errorf("manual shifts: %w: no shifts given", ErrKeyLengthRange)
	}
	if len(shifts) > len(seq) {
		return Result{}, fmt.Errorf("manual shifts: %w: %d shifts for %d symbols", ErrKeyLengthRange, len(shifts), len(seq))
	}
	key, err := vigenere.NewKey(shifts, c.alph.Len())
	if err != nil {
		return Result{}, fmt.Errorf("manual shifts: %w", err)
	}
	est, scores, err := EstimateKeyLength(seq, c.alph.Len(), c.maxLen, c.expIC)
	if err != nil {
		return Result{}, err
	}
	_, cols := c.analyzeColumns(seq, key.Len(), key.Shifts())
	return Result{
		Plaintext: vigenere.Decode(c.alph, seq, key),
		Key:       key,
		Report: Report{
			KeyLength:    key.Len(),
			Estimated:    est,
			LengthScores: scores,
			Columns:      cols,
		},
	}, nil
}

// ManualKey decodes with a known key, skipping analysis entirely.
func (c *Cracker) ManualKey(seq []int, key vigenere.Key) (Result, error) {
	if key.Len() == 0 {
		return Result{}, fmt.Errorf("manual key: %w", vigenere.ErrEmptyKey)
	}
	if key.Len() > len(seq) {
		return Result{}, fmt.Errorf("manual key: %w: key length %d for %d symbols", ErrKeyLengthRange, key.Len(), len(seq))
	}
	return Result{
		Plaintext: vigenere.Decode(c.alph, seq, key),
		Key:       key,
		Report:    Report{KeyLength: key.Len()},
	}, nil
}

// EstimateLength runs key length estimation with the Cracker's settings.
func (c *Cracker) EstimateLength(seq []int) (int, []LengthScore, error) {
	return EstimateKeyLength(seq, c.alph.Len(), c.maxLen, c.expIC)
}

// Inspect reports the column statistics for one key length without
// decoding. Interactive callers use it to offer shift candidates.
func (c *Cracker) Inspect(seq []int, keyLength int) ([]ColumnReport, error) {
	if keyLength < 1 || keyLength > len(seq) {
		return nil, fmt.Errorf("inspect: %w: key length %d for %d symbols", ErrKeyLengthRange, keyLength, len(seq))
	}
	_, cols := c.analyzeColumns(seq, keyLength, nil)
	return cols, nil
}

// analyzeColumns builds per-column reports for key length n.
// A non-nil used slice supplies the shifts recorded in the reports;
// otherwise each column records its recovered shift.
func (c *Cracker) analyzeColumns(seq []int, n int, used []int) ([]int, []ColumnReport) {
	alen := c.alph.Len()
	shifts := make([]int, n)
	reports := make([]ColumnReport, n)
	for i, col := range columns.Split(seq, n) {
		freq := Frequencies(col, alen)
		recovered := 0
		if most := freq.MostFrequent(); most >= 0 {
			recovered = shiftFromSymbol(most, c.anchor, alen)
		}
		if used != nil {
			shifts[i] = used[i]
		} else {
			shifts[i] = recovered
		}
		reports[i] = ColumnReport{
			Index:      i,
			Length:     len(col),
			IC:         freq.IndexOfCoincidence(),
			Candidates: candidates(freq, c.anchor, alen, topCandidates),
			Shift:      shifts[i],
		}
	}
	return shifts, reports
}
