package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"hermannm.dev/devlog"

	"github.com/wedkarz02/cryptfile/internal/consts"
	"github.com/wedkarz02/cryptfile/internal/symmetric"
)

// Exit codes: 0 success, 1 empty input or missing key, 2 read failure, 3
// unsupported cipher or misconfiguration.
const (
	exitSuccess         = 0
	exitEmptyOrNoKey    = 1
	exitReadFailure     = 2
	exitUnsupportedCiph = 3
)

var (
	cipherName string
	password   string
	doEncrypt  bool
	doDecrypt  bool
	quiet      bool
	debug      bool

	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:   "symcrypt INPUT OUTPUT",
	Short: "Encrypt or decrypt a file with password-based AES-ECB",
	Args:  cobra.ExactArgs(2),
	RunE:  runSymcrypt,
}

func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())

		var coded *codedError
		if errors.As(err, &coded) {
			os.Exit(coded.code)
		}
		os.Exit(exitEmptyOrNoKey)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.Flags().StringVar(&cipherName, "cipher", "aes256", "cipher to use: aes128, aes192, or aes256")
	rootCmd.Flags().StringVar(&password, "password", "", "password (if absent, prompted on the terminal)")
	rootCmd.Flags().BoolVar(&doEncrypt, "encrypt", false, "encrypt INPUT into OUTPUT")
	rootCmd.Flags().BoolVar(&doDecrypt, "decrypt", false, "decrypt INPUT into OUTPUT")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress non-error output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	_ = viper.BindPFlags(rootCmd.Flags())
}

// loadConfig reads the bound flag values back out of viper, the same
// read-back kgiusti-go-fdo-server's rootCmdLoadConfig does after its own
// viper.BindPFlags call: a test (or any other caller) can override a value
// with viper.Set without touching os.Args.
func loadConfig() {
	cipherName = viper.GetString("cipher")
	password = viper.GetString("password")
	doEncrypt = viper.GetBool("encrypt")
	doDecrypt = viper.GetBool("decrypt")
	quiet = viper.GetBool("quiet")
	debug = viper.GetBool("debug")
}

func runSymcrypt(cmd *cobra.Command, args []string) error {
	loadConfig()

	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	if quiet {
		logLevel.Set(slog.LevelError)
	}

	keySize, ok := consts.ParseKeySize(cipherName)
	if !ok {
		return exitErrorf(exitUnsupportedCiph, "symcrypt: unsupported cipher %q", cipherName)
	}
	slog.Debug("symcrypt: resolved cipher", "cipher", cipherName, "key_size", int(keySize))

	if doEncrypt == doDecrypt {
		return exitErrorf(exitUnsupportedCiph, "symcrypt: exactly one of --encrypt or --decrypt is required")
	}

	input, output := args[0], args[1]

	data, err := os.ReadFile(input)
	if err != nil {
		return exitErrorf(exitReadFailure, "symcrypt: reading %s: %v", input, err)
	}

	if len(data) == 0 {
		return exitErrorf(exitEmptyOrNoKey, "symcrypt: %s is empty", input)
	}

	pass, err := resolvePassword()
	if err != nil {
		return exitErrorf(exitEmptyOrNoKey, "symcrypt: %v", err)
	}

	var result []byte
	if doEncrypt {
		result, err = symmetric.Encrypt(data, pass, keySize)
	} else {
		result, err = symmetric.Decrypt(data, pass, keySize)
	}
	if err != nil {
		return exitErrorf(exitEmptyOrNoKey, "symcrypt: %v", err)
	}

	if err := os.WriteFile(output, result, 0o644); err != nil {
		return exitErrorf(exitReadFailure, "symcrypt: writing %s: %v", output, err)
	}

	slog.Info("symcrypt: wrote output", "path", output)
	return nil
}

// resolvePassword returns the --password flag value if set, otherwise
// prompts on the controlling terminal with input echo disabled.
func resolvePassword() ([]byte, error) {
	if password != "" {
		return []byte(password), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	if len(pass) == 0 {
		return nil, errors.New("empty password")
	}

	return pass, nil
}

type codedError struct {
	code int
	err  error
}

func (c *codedError) Error() string { return c.err.Error() }

func exitErrorf(code int, format string, args ...any) error {
	return &codedError{code: code, err: fmt.Errorf(format, args...)}
}
