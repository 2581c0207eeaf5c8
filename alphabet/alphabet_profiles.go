package alphabet

// Profile bundles an alphabet with the language statistics that frequency
// analysis relies on.
type Profile struct {
	Name       string // short language tag
	Alphabet   Alphabet
	ExpectedIC float64 // index of coincidence typical for natural text
	Anchor     rune    // most frequent letter of the language
}

// Symbol tables for the built-in profiles.
const (
	cyrillicSymbols = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
	latinSymbols    = "abcdefghijklmnopqrstuvwxyz"
)

var (
	cyrillic = MustNew(cyrillicSymbols)
	latin    = MustNew(latinSymbols)
)

// Cyrillic returns the profile for Russian text (33 letters including ё).
func Cyrillic() Profile {
	return Profile{Name: "ru", Alphabet: cyrillic, ExpectedIC: 0.056, Anchor: 'о'}
}

// Latin returns the profile for English text.
func Latin() Profile {
	return Profile{Name: "en", Alphabet: latin, ExpectedIC: 0.065, Anchor: 'e'}
}

// Lookup returns a built-in profile by name.
// Recognized names: "ru", "cyrillic", "en", "latin".
func Lookup(name string) (Profile, bool) {
	switch name {
	case "ru", "cyrillic":
		return Cyrillic(), true
	case "en", "latin":
		return Latin(), true
	}
	return Profile{}, false
}
