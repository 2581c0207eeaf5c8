package crack

import (
	"errors"
	"testing"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/vigenere"
)

// sampleSentence is the short running example used across the tests.
const sampleSentence = "этоприменертекстадлятестированияалгоритма"

// naturalText is the opening of a public-domain Russian novel, already
// normalized to the 33-letter alphabet. Key length estimation needs the
// single-letter statistics of real prose; a short sentence cannot
// provide them.
const naturalText = "вначалеиюлявчрезвычайножаркоевремяподвечеродинмолодойчеловек" +
	"вышелизсвоейкаморкикоторуюнанималотжильцоввбольшомдомеимедле" +
	"ннокакбывнерешимостиотправилсякмостуонблагополучноизбегнулвс" +
	"тречиссвоеюхозяйкойналестницекаморкаегоприходиласьподсамоюкр" +
	"овлейвысокогопятиэтажногодомаипоходилаболеенашкафчемнакварти" +
	"руквартирнаяжехозяйкаегоукоторойоннанималэтукаморкусобедомип" +
	"рислугойпомещаласьодноюлестницейнижевотдельнойквартиреикажды" +
	"йразпривыходенаулицуемунепременнонадобылопроходитьмимохозяйк" +
	"инойкухнипочтивсегданастежьотвореннойналестницуикаждыйразмол" +
	"одойчеловекпроходямимочувствовалкакоетоболезненноеитрусливое" +
	"ощущениекоторогосты"

func cyrillicAlphabet() alphabet.Alphabet {
	return alphabet.Cyrillic().Alphabet
}

func cyrillicSeq(s string) []int {
	return cyrillicAlphabet().Normalize(s)
}

func mustIndex(t *testing.T, r rune) int {
	t.Helper()
	i, ok := cyrillicAlphabet().Index(r)
	if !ok {
		t.Fatalf("%q not in the cyrillic alphabet", r)
	}
	return i
}

func newCyrillicCracker(t *testing.T) *Cracker {
	t.Helper()
	c, err := New(FromProfile(alphabet.Cyrillic()))
	if err != nil {
		t.Fatalf("New(FromProfile(Cyrillic)) error = %v", err)
	}
	return c
}

func mustParseKey(t *testing.T, word string) vigenere.Key {
	t.Helper()
	key, err := vigenere.ParseKey(cyrillicAlphabet(), word)
	if err != nil {
		t.Fatalf("ParseKey(%q) error = %v", word, err)
	}
	return key
}

func TestNewValidation(t *testing.T) {
	base := FromProfile(alphabet.Cyrillic())

	if _, err := New(Config{}); !errors.Is(err, alphabet.ErrEmpty) {
		t.Errorf("New(zero Config) error = %v; want ErrEmpty", err)
	}

	cfg := base
	cfg.MaxKeyLength = -3
	if _, err := New(cfg); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("New(MaxKeyLength=-3) error = %v; want ErrKeyLengthRange", err)
	}

	cfg = base
	cfg.ExpectedIC = 1.5
	if _, err := New(cfg); err == nil {
		t.Errorf("New(ExpectedIC=1.5) error = nil; want range error")
	}

	cfg = base
	cfg.Anchor = 'e' // latin letter, not in the cyrillic alphabet
	if _, err := New(cfg); !errors.Is(err, alphabet.ErrUnknownSymbol) {
		t.Errorf("New(latin anchor) error = %v; want ErrUnknownSymbol", err)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	cfg := Config{Alphabet: cyrillicAlphabet(), Anchor: 'о'}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	_, scores, err := c.EstimateLength(cyrillicSeq(sampleSentence))
	if err != nil {
		t.Fatalf("EstimateLength error = %v", err)
	}
	if len(scores) != DefaultMaxKeyLength {
		t.Errorf("len(scores) = %d; want DefaultMaxKeyLength %d", len(scores), DefaultMaxKeyLength)
	}
}

func TestAutomaticEndToEnd(t *testing.T) {
	c := newCyrillicCracker(t)
	alph := c.Alphabet()
	key := mustParseKey(t, "ключ")

	corpus := cyrillicSeq(sampleSentence + naturalText)
	if len(corpus) != 660 {
		t.Fatalf("corpus length = %d; want 660", len(corpus))
	}
	cipher := vigenere.Encode(alph, corpus, key)

	res, err := c.Automatic(cipher)
	if err != nil {
		t.Fatalf("Automatic error = %v", err)
	}
	if res.Report.Estimated != 4 || res.Report.KeyLength != 4 {
		t.Fatalf("estimated key length = %d (used %d); want 4", res.Report.Estimated, res.Report.KeyLength)
	}
	if got := res.Key.Render(alph); got != "ключ" {
		t.Fatalf("recovered key = %q; want %q", got, "ключ")
	}
	if got := alph.Render(res.Plaintext); got != sampleSentence+naturalText {
		t.Fatalf("decoded plaintext differs from the original")
	}
	if len(res.Report.LengthScores) != DefaultMaxKeyLength {
		t.Errorf("len(LengthScores) = %d; want %d", len(res.Report.LengthScores), DefaultMaxKeyLength)
	}
	if len(res.Report.Columns) != 4 {
		t.Fatalf("len(Columns) = %d; want 4", len(res.Report.Columns))
	}
	for i, col := range res.Report.Columns {
		if col.Index != i {
			t.Errorf("Columns[%d].Index = %d", i, col.Index)
		}
		if col.Shift != key.At(i) {
			t.Errorf("Columns[%d].Shift = %d; want %d", i, col.Shift, key.At(i))
		}
		if len(col.Candidates) == 0 || len(col.Candidates) > 5 {
			t.Errorf("Columns[%d] has %d candidates; want 1..5", i, len(col.Candidates))
		}
		if col.Candidates[0].Shift != col.Shift {
			t.Errorf("Columns[%d] first candidate shift %d != recovered %d", i, col.Candidates[0].Shift, col.Shift)
		}
	}
}

func TestAutomaticDeterminism(t *testing.T) {
	c := newCyrillicCracker(t)
	cipher := vigenere.Encode(c.Alphabet(), cyrillicSeq(sampleSentence+naturalText), mustParseKey(t, "ключ"))

	first, err := c.Automatic(cipher)
	if err != nil {
		t.Fatalf("Automatic error = %v", err)
	}
	second, err := c.Automatic(cipher)
	if err != nil {
		t.Fatalf("Automatic error = %v", err)
	}
	if first.Key.Render(c.Alphabet()) != second.Key.Render(c.Alphabet()) {
		t.Errorf("two runs recovered different keys")
	}
	for i := range first.Plaintext {
		if first.Plaintext[i] != second.Plaintext[i] {
			t.Fatalf("two runs disagree at position %d", i)
		}
	}
	for i := range first.Report.LengthScores {
		if first.Report.LengthScores[i] != second.Report.LengthScores[i] {
			t.Fatalf("two runs disagree on LengthScores[%d]", i)
		}
	}
}

func TestAutomaticEmptyInput(t *testing.T) {
	c := newCyrillicCracker(t)
	res, err := c.Automatic(nil)
	if err != nil {
		t.Fatalf("Automatic(nil) error = %v", err)
	}
	if len(res.Plaintext) != 0 {
		t.Errorf("Plaintext = %v; want empty", res.Plaintext)
	}
	if res.Report.Estimated != 1 || res.Key.Len() != 1 || res.Key.At(0) != 0 {
		t.Errorf("empty input: estimated %d, key %v; want length 1, zero shift", res.Report.Estimated, res.Key.Shifts())
	}
}

func TestManualShiftsOverrideEstimation(t *testing.T) {
	c := newCyrillicCracker(t)
	alph := c.Alphabet()
	shifts := []int{3, 1, 4, 2}
	key, err := vigenere.NewKey(shifts, alph.Len())
	if err != nil {
		t.Fatalf("NewKey error = %v", err)
	}

	plain := cyrillicSeq(sampleSentence)
	cipher := vigenere.Encode(alph, plain, key)

	res, err := c.ManualShifts(cipher, shifts)
	if err != nil {
		t.Fatalf("ManualShifts error = %v", err)
	}
	// estimation ran for diagnostics and picked a different length
	if res.Report.Estimated != 2 {
		t.Errorf("Report.Estimated = %d; want 2", res.Report.Estimated)
	}
	if len(res.Report.LengthScores) != DefaultMaxKeyLength {
		t.Errorf("len(LengthScores) = %d; want %d", len(res.Report.LengthScores), DefaultMaxKeyLength)
	}
	// but the supplied shifts always decide the decode
	if res.Report.KeyLength != 4 {
		t.Errorf("Report.KeyLength = %d; want 4", res.Report.KeyLength)
	}
	for i, want := range shifts {
		if got := res.Key.At(i); got != want {
			t.Errorf("Key.At(%d) = %d; want %d", i, got, want)
		}
		if got := res.Report.Columns[i].Shift; got != want {
			t.Errorf("Columns[%d].Shift = %d; want %d", i, got, want)
		}
	}
	if got := alph.Render(res.Plaintext); got != sampleSentence {
		t.Errorf("decoded = %q; want %q", got, sampleSentence)
	}
}

func TestManualShiftsRejectsEmpty(t *testing.T) {
	c := newCyrillicCracker(t)
	if _, err := c.ManualShifts(cyrillicSeq(sampleSentence), nil); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("ManualShifts(nil shifts) error = %v; want ErrKeyLengthRange", err)
	}
}

func TestManualShiftsRejectsOutOfRange(t *testing.T) {
	c := newCyrillicCracker(t)
	if _, err := c.ManualShifts(cyrillicSeq(sampleSentence), []int{0, 40}); !errors.Is(err, vigenere.ErrShiftRange) {
		t.Errorf("ManualShifts([0, 40]) error = %v; want ErrShiftRange", err)
	}
}

func TestManualShiftsRejectsMoreShiftsThanSymbols(t *testing.T) {
	c := newCyrillicCracker(t)
	if _, err := c.ManualShifts(cyrillicSeq("это"), []int{3, 1, 4, 2}); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("ManualShifts(4 shifts, 3 symbols) error = %v; want ErrKeyLengthRange", err)
	}
}

func TestManualKey(t *testing.T) {
	c := newCyrillicCracker(t)
	alph := c.Alphabet()
	key := mustParseKey(t, "ключ")

	plain := cyrillicSeq(sampleSentence)
	cipher := vigenere.Encode(alph, plain, key)

	res, err := c.ManualKey(cipher, key)
	if err != nil {
		t.Fatalf("ManualKey error = %v", err)
	}
	if got := alph.Render(res.Plaintext); got != sampleSentence {
		t.Errorf("decoded = %q; want %q", got, sampleSentence)
	}
	// manual-key mode skips analysis entirely
	if res.Report.Estimated != 0 || res.Report.LengthScores != nil || res.Report.Columns != nil {
		t.Errorf("Report = %+v; want no analysis artifacts", res.Report)
	}
	if res.Report.KeyLength != 4 {
		t.Errorf("Report.KeyLength = %d; want 4", res.Report.KeyLength)
	}
}

func TestManualKeyRejectsZeroKey(t *testing.T) {
	c := newCyrillicCracker(t)
	var zero vigenere.Key
	if _, err := c.ManualKey(cyrillicSeq(sampleSentence), zero); !errors.Is(err, vigenere.ErrEmptyKey) {
		t.Errorf("ManualKey(zero key) error = %v; want ErrEmptyKey", err)
	}
}

func TestManualKeyRejectsKeyLongerThanInput(t *testing.T) {
	c := newCyrillicCracker(t)
	if _, err := c.ManualKey(cyrillicSeq("это"), mustParseKey(t, "ключ")); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("ManualKey(4-letter key, 3 symbols) error = %v; want ErrKeyLengthRange", err)
	}
}

func TestInspect(t *testing.T) {
	c := newCyrillicCracker(t)
	seq := cyrillicSeq(sampleSentence)

	cols, err := c.Inspect(seq, 4)
	if err != nil {
		t.Fatalf("Inspect error = %v", err)
	}
	if len(cols) != 4 {
		t.Fatalf("Inspect returned %d columns; want 4", len(cols))
	}
	total := 0
	for i, col := range cols {
		if col.Index != i {
			t.Errorf("cols[%d].Index = %d", i, col.Index)
		}
		total += col.Length
	}
	if total != len(seq) {
		t.Errorf("column lengths sum to %d; want %d", total, len(seq))
	}

	if _, err := c.Inspect(seq, 0); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("Inspect(keyLength=0) error = %v; want ErrKeyLengthRange", err)
	}
	if _, err := c.Inspect(seq, len(seq)+1); !errors.Is(err, ErrKeyLengthRange) {
		t.Errorf("Inspect(keyLength>len) error = %v; want ErrKeyLengthRange", err)
	}
}

func BenchmarkAutomatic(b *testing.B) {
	c, err := New(FromProfile(alphabet.Cyrillic()))
	if err != nil {
		b.Fatal(err)
	}
	alph := c.Alphabet()
	key, err := vigenere.ParseKey(alph, "ключ")
	if err != nil {
		b.Fatal(err)
	}
	cipher := vigenere.Encode(alph, alph.Normalize(sampleSentence+naturalText), key)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Automatic(cipher); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEstimateKeyLength(b *testing.B) {
	alph := cyrillicAlphabet()
	key, err := vigenere.ParseKey(alph, "ключ")
	if err != nil {
		b.Fatal(err)
	}
	cipher := vigenere.Encode(alph, alph.Normalize(sampleSentence+naturalText), key)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = EstimateKeyLength(cipher, alph.Len(), 15, 0.056)
	}
}
