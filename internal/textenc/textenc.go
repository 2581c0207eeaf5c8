package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/segmentio/asm/utf8"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable reports input that is neither valid UTF-8 nor
// well-formed Windows-1251.
var ErrUndecodable = errors.New("neither utf-8 nor cp1251 text")

// Decode interprets raw bytes as text: UTF-8 when valid, Windows-1251
// otherwise. Cyrillic sources predating UTF-8 commonly use cp1251, so it
// is the fallback of choice.
func Decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	// Charmap decoders never fail: bytes with no Windows-1251 mapping
	// come back as U+FFFD.
	decoded, _ := charmap.Windows1251.NewDecoder().Bytes(raw)
	if bytes.ContainsRune(decoded, '\uFFFD') {
		return "", ErrUndecodable
	}
	return string(decoded), nil
}

// DecodeFile reads path and decodes its contents like Decode.
func DecodeFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}
