package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/visioner/vigenere"
)

// newEncryptCmd creates the 'encrypt' subcommand.
func newEncryptCmd() *cobra.Command {
	var (
		keyWord string
		output  string
		text    string
	)

	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt a text with a Vigenère key",
		Long: `Encrypt normalizes the input to the alphabet, applies the key and
prints the ciphertext. Symbols outside the alphabet are dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile()
			if err != nil {
				return err
			}
			alph := profile.Alphabet

			key, err := vigenere.ParseKey(alph, keyWord)
			if err != nil {
				return fmt.Errorf("parse key %q: %w", keyWord, err)
			}

			raw, _, err := readInput(args, text)
			if err != nil {
				return err
			}
			ciphertext := vigenere.EncryptText(alph, raw, key)
			if ciphertext == "" {
				sugar.Warnw("nothing to encrypt", "alphabet", profile.Name)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(ciphertext), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Println(styles.Success.Render("Ciphertext saved to " + output))
				return nil
			}
			fmt.Println(ciphertext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyWord, "key", "k", "", "Key word over the alphabet")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the ciphertext to")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Plaintext given inline instead of a file")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
