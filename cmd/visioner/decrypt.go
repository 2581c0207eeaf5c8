package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/visioner/vigenere"
)

// newDecryptCmd creates the 'decrypt' subcommand.
func newDecryptCmd() *cobra.Command {
	var (
		keyWord string
		output  string
		text    string
	)

	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt a ciphertext with a known Vigenère key",
		Args:  cobra.MaximumNArgs(1),
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
			plaintext := vigenere.DecryptText(alph, raw, key)
			if plaintext == "" {
				sugar.Warnw("nothing to decrypt", "alphabet", profile.Name)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(plaintext), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Println(styles.Success.Render("Decrypted text saved to " + output))
				return nil
			}
			fmt.Println(plaintext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyWord, "key", "k", "", "Key word over the alphabet")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the decrypted text to")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Ciphertext given inline instead of a file")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
