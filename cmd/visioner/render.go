package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/crack"
	"github.com/mhr3/visioner/vigenere"
)

// Visioner color palette.
var (
	colorViolet = lipgloss.Color("#875FFF") // headers
	colorCyan   = lipgloss.Color("#2AC3DE") // labels
	colorGreen  = lipgloss.Color("#9ECE6A") // recovered keys, success
	colorAmber  = lipgloss.Color("#E0AF68") // warnings
	colorGray   = lipgloss.Color("#565F89") // secondary detail
)

// styles provides pre-configured lipgloss styles for CLI output.
var styles = struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(colorViolet),
	Label:   lipgloss.NewStyle().Foreground(colorCyan),
	Key:     lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Success: lipgloss.NewStyle().Foreground(colorGreen),
	Warning: lipgloss.NewStyle().Foreground(colorAmber),
	Muted:   lipgloss.NewStyle().Foreground(colorGray),
}

// renderHeader prints a section header.
func renderHeader(title string) {
	fmt.Println(styles.Header.Render("------- " + title + " -------"))
}

// renderAnalysis prints the estimation diagnostics of a report.
func renderAnalysis(alph alphabet.Alphabet, report crack.Report, expectedIC float64) {
	renderHeader("ANALYZING")

	if report.Estimated != 0 {
		diff := 0.0
		for _, score := range report.LengthScores {
			if score.Length == report.Estimated {
				diff = score.Diff
			}
		}
		fmt.Printf("%s %d %s\n",
			styles.Label.Render("Best estimated key length:"),
			report.Estimated,
			styles.Muted.Render(fmt.Sprintf("(IC diff %.4f)", diff)))
	}
	fmt.Printf("%s %d", styles.Label.Render("Key length:"), report.KeyLength)
	if report.Estimated != 0 && report.Estimated != report.KeyLength {
		fmt.Printf(" %s", styles.Warning.Render(fmt.Sprintf("(estimator picked %d)", report.Estimated)))
	}
	fmt.Println()

	for _, col := range report.Columns {
		renderColumn(alph, col, expectedIC)
	}
}

// renderColumn prints one column's statistics and shift candidates.
func renderColumn(alph alphabet.Alphabet, col crack.ColumnReport, expectedIC float64) {
	fmt.Println(styles.Header.Render(fmt.Sprintf("=== Part %d ===", col.Index+1)))
	fmt.Printf("%s %d chars, IC %.4f %s\n",
		styles.Label.Render("Length:"),
		col.Length,
		col.IC,
		styles.Muted.Render(fmt.Sprintf("(expected ~%.3f)", expectedIC)))

	for rank, cand := range col.Candidates {
		line := fmt.Sprintf("%d. %s (%dx) -> shift %d (key '%s')",
			rank+1,
			string(alph.Rune(cand.Symbol)),
			cand.Count,
			cand.Shift,
			string(alph.Rune(cand.Shift)))
		if cand.Shift == col.Shift {
			fmt.Println(styles.Success.Render(line + " *"))
		} else {
			fmt.Println(styles.Muted.Render(line))
		}
	}
}

// renderSolution prints the key and a plaintext preview.
func renderSolution(alph alphabet.Alphabet, result crack.Result, previewLen int) {
	renderHeader("SOLVING")
	fmt.Printf("%s %v\n", styles.Label.Render("Using shifts:"), result.Key.Shifts())
	fmt.Printf("%s %s\n", styles.Label.Render("Key:"), styles.Key.Render(result.Key.Render(alph)))

	fmt.Println()
	fmt.Println(styles.Label.Render("Decrypted text preview:"))
	fmt.Println(preview(alph.Render(result.Plaintext), previewLen))
}

// renderKey prints the key used for a direct decryption.
func renderKey(alph alphabet.Alphabet, key vigenere.Key) {
	fmt.Printf("%s %s %s\n",
		styles.Label.Render("Using provided key:"),
		styles.Key.Render(key.Render(alph)),
		styles.Muted.Render(fmt.Sprintf("(shifts %v)", key.Shifts())))
}

// preview returns the first n runes of s, marking truncation.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
