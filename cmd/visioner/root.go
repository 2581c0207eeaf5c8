package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mhr3/visioner/alphabet"
	"github.com/mhr3/visioner/crack"
	"github.com/mhr3/visioner/internal/textenc"
)

// Persistent flags shared by all subcommands.
var (
	cfgFile        string
	alphabetName   string
	maxKeyLength   int
	expectedIC     float64
	frequentLetter string
	verbose        bool
)

// Resolved per invocation by the root PersistentPreRunE.
var (
	cfg   *Config
	sugar *zap.SugaredLogger
)

// NewRootCmd creates the visioner root command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "visioner",
		Short: "Analyze and crack Vigenère ciphers",
		Long: `Visioner analyzes Vigenère ciphertexts over a chosen alphabet.

It estimates the key length by index-of-coincidence analysis, recovers
per-column shifts from letter frequencies, and decodes the result. Keys
or shifts recovered elsewhere can be supplied directly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd)
			sugar = newLogger(verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&alphabetName, "alphabet", "a", "ru", "Ciphertext language: ru or en")
	rootCmd.PersistentFlags().IntVar(&maxKeyLength, "max-key-length", crack.DefaultMaxKeyLength, "Largest key length to try")
	rootCmd.PersistentFlags().Float64Var(&expectedIC, "expected-ic", 0, "Expected index of coincidence (default from the language profile)")
	rootCmd.PersistentFlags().StringVar(&frequentLetter, "frequent-letter", "", "Assumed most frequent plaintext letter (default from the language profile)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostic logging")

	rootCmd.AddCommand(newCrackCmd())
	rootCmd.AddCommand(newEncryptCmd())
	rootCmd.AddCommand(newDecryptCmd())

	return rootCmd
}

// applyFlagOverrides lets explicitly set flags win over config file and
// environment values.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("alphabet") {
		cfg.Alphabet = alphabetName
	}
	if flags.Changed("max-key-length") {
		cfg.MaxKeyLength = maxKeyLength
	}
	if flags.Changed("expected-ic") {
		cfg.ExpectedIC = expectedIC
	}
	if flags.Changed("frequent-letter") {
		cfg.FrequentLetter = frequentLetter
	}
}

// newLogger builds a colored console logger for CLI diagnostics.
// Human-facing output goes to stdout, the logger stays on stderr.
func newLogger(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

// resolveProfile returns the configured language profile.
func resolveProfile() (alphabet.Profile, error) {
	profile, ok := alphabet.Lookup(cfg.Alphabet)
	if !ok {
		return alphabet.Profile{}, fmt.Errorf("unknown alphabet %q (want ru or en)", cfg.Alphabet)
	}
	return profile, nil
}

// newCracker resolves the language profile and analysis settings into a
// Cracker.
func newCracker() (*crack.Cracker, error) {
	profile, err := resolveProfile()
	if err != nil {
		return nil, err
	}
	c := crack.FromProfile(profile)
	if cfg.MaxKeyLength != 0 {
		c.MaxKeyLength = cfg.MaxKeyLength
	}
	if cfg.ExpectedIC != 0 {
		c.ExpectedIC = cfg.ExpectedIC
	}
	if cfg.FrequentLetter != "" {
		runes := []rune(cfg.FrequentLetter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("frequent letter %q: want a single symbol", cfg.FrequentLetter)
		}
		c.Anchor = runes[0]
	}
	return crack.New(c)
}

// readInput returns the text from the file argument or the --text flag.
// The source name is empty for inline text.
func readInput(args []string, inline string) (string, string, error) {
	if len(args) > 0 {
		if inline != "" {
			return "", "", fmt.Errorf("give a file or --text, not both")
		}
		s, err := textenc.DecodeFile(args[0])
		if err != nil {
			return "", "", err
		}
		return s, args[0], nil
	}
	if inline != "" {
		return inline, "", nil
	}
	return "", "", fmt.Errorf("no input: give a file or --text")
}
