package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type previewTest struct {
	name string
	in   string
	n    int
	exp  string
}

var previewTests = []previewTest{
	{name: "shorter", in: "short", n: 10, exp: "short"},
	{name: "exact", in: "exact", n: 5, exp: "exact"},
	{name: "truncated", in: "truncated", n: 5, exp: "trunc..."},
	{name: "empty", in: "", n: 5, exp: ""},
	{name: "cyrillic counts runes", in: "привет", n: 3, exp: "при..."},
}

func TestPreview(t *testing.T) {
	for _, test := range previewTests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, preview(test.in, test.n))
		})
	}
}

func TestStylesRenderContent(t *testing.T) {
	// Without a TTY the styles degrade to plain text, the content stays.
	assert.Contains(t, styles.Header.Render("ANALYZING"), "ANALYZING")
	assert.Contains(t, styles.Key.Render("ключ"), "ключ")
}
