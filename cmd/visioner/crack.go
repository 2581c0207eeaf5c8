package main

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mhr3/visioner/crack"
	"github.com/mhr3/visioner/vigenere"
)

// newCrackCmd creates the 'crack' subcommand.
func newCrackCmd() *cobra.Command {
	var (
		keyWord     string
		shifts      []int
		interactive bool
		output      string
		text        string
	)

	cmd := &cobra.Command{
		Use:   "crack [file]",
		Short: "Recover the key and plaintext of a Vigenère ciphertext",
		Long: `Crack recovers the key and plaintext of a Vigenère ciphertext.

Without flags the whole pipeline runs automatically. With --shifts the
given shifts are used as-is and the analysis only reports what it would
have picked. With --key the analysis is skipped entirely. With
--interactive each column shift is picked from the top frequency
candidates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := 0
			for _, on := range []bool{keyWord != "", len(shifts) > 0, interactive} {
				if on {
					modes++
				}
			}
			if modes > 1 {
				return fmt.Errorf("pick one of --key, --shifts or --interactive")
			}

			cracker, err := newCracker()
			if err != nil {
				return err
			}
			alph := cracker.Alphabet()

			raw, source, err := readInput(args, text)
			if err != nil {
				return err
			}
			if source != "" {
				fmt.Println(styles.Muted.Render(fmt.Sprintf("Read %d characters from %s", utf8.RuneCountInString(raw), source)))
			}

			seq := alph.Normalize(raw)
			sugar.Debugw("input normalized",
				"characters", utf8.RuneCountInString(raw),
				"symbols", len(seq))
			if len(seq) == 0 {
				fmt.Println(styles.Warning.Render("Nothing to analyze: the input has no alphabet symbols"))
			}

			start := time.Now()
			var result crack.Result
			switch {
			case keyWord != "":
				var key vigenere.Key
				key, err = vigenere.ParseKey(alph, keyWord)
				if err != nil {
					return fmt.Errorf("parse key %q: %w", keyWord, err)
				}
				result, err = cracker.ManualKey(seq, key)
				if err != nil {
					return err
				}
				renderKey(alph, key)
			case len(shifts) > 0:
				result, err = cracker.ManualShifts(seq, shifts)
				if err != nil {
					return err
				}
				renderAnalysis(alph, result.Report, cracker.ExpectedIC())
			case interactive:
				result, err = runInteractive(cracker, seq)
				if err != nil {
					return err
				}
			default:
				result, err = cracker.Automatic(seq)
				if err != nil {
					return err
				}
				renderAnalysis(alph, result.Report, cracker.ExpectedIC())
			}
			sugar.Debugw("analysis complete",
				"key_length", result.Report.KeyLength,
				"estimated", result.Report.Estimated,
				"elapsed", time.Since(start))

			renderSolution(alph, result, cfg.PreviewLength)

			if output != "" {
				plaintext := alph.Render(result.Plaintext)
				if err := os.WriteFile(output, []byte(plaintext), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Println(styles.Success.Render("Full decrypted text saved to " + output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyWord, "key", "k", "", "Known key for direct decryption")
	cmd.Flags().IntSliceVarP(&shifts, "shifts", "s", nil, "Manual shifts, one per key letter")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick each column shift interactively")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the full decrypted text to")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Ciphertext given inline instead of a file")

	return cmd
}
