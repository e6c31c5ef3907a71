package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/wedkarz02/cryptfile/internal/base64x"
	"github.com/wedkarz02/cryptfile/internal/hybrid"
	"github.com/wedkarz02/cryptfile/internal/randsrc"
	"github.com/wedkarz02/cryptfile/internal/rsax"
)

// Exit codes: 0 success, 1 empty input or missing key, 2 read failure, 3
// unsupported operation or misconfiguration.
const (
	exitSuccess       = 0
	exitEmptyOrNoKey  = 1
	exitReadFailure   = 2
	exitUnsupportedOp = 3
)

var (
	secretFile string
	publicFile string
	keyDir     string
	doEncrypt  bool
	doDecrypt  bool
	quiet      bool
	debug      bool

	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:   "cryptfile INPUT OUTPUT",
	Short: "Encrypt or decrypt a file with hybrid AES-256+RSA",
	Args:  cobra.ExactArgs(2),
	RunE:  runCryptfile,
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

	rootCmd.Flags().StringVar(&secretFile, "secret", "skey", "private key file name")
	rootCmd.Flags().StringVar(&publicFile, "public", "pkey", "public key file name")
	rootCmd.Flags().StringVar(&keyDir, "dir", ".", "directory containing the key files")
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
	secretFile = viper.GetString("secret")
	publicFile = viper.GetString("public")
	keyDir = viper.GetString("dir")
	doEncrypt = viper.GetBool("encrypt")
	doDecrypt = viper.GetBool("decrypt")
	quiet = viper.GetBool("quiet")
	debug = viper.GetBool("debug")
}

func runCryptfile(cmd *cobra.Command, args []string) error {
	loadConfig()

	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	if quiet {
		logLevel.Set(slog.LevelError)
	}

	if doEncrypt == doDecrypt {
		return exitErrorf(exitUnsupportedOp, "cryptfile: exactly one of --encrypt or --decrypt is required")
	}

	input, output := args[0], args[1]

	plainOrCipher, err := os.ReadFile(input)
	if err != nil {
		return exitErrorf(exitReadFailure, "cryptfile: reading %s: %v", input, err)
	}

	if len(plainOrCipher) == 0 {
		return exitErrorf(exitEmptyOrNoKey, "cryptfile: %s is empty", input)
	}

	var result []byte
	if doEncrypt {
		result, err = encryptFile(plainOrCipher)
	} else {
		result, err = decryptFile(plainOrCipher)
	}
	if err != nil {
		return exitErrorf(exitEmptyOrNoKey, "cryptfile: %v", err)
	}

	if err := os.WriteFile(output, result, 0o644); err != nil {
		return exitErrorf(exitReadFailure, "cryptfile: writing %s: %v", output, err)
	}

	slog.Info("cryptfile: wrote output", "path", output)

	return nil
}

func encryptFile(plainText []byte) ([]byte, error) {
	pub, err := loadPublicKey()
	if err != nil {
		return nil, err
	}

	return hybrid.Encrypt(plainText, pub, randsrc.Default)
}

func decryptFile(cipherText []byte) ([]byte, error) {
	priv, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	return hybrid.Decrypt(cipherText, priv)
}

func loadPublicKey() (*rsax.PublicKey, error) {
	record, err := readKeyFile(filepath.Join(keyDir, publicFile))
	if err != nil {
		return nil, err
	}
	return rsax.DecodePublicKey(record)
}

func loadPrivateKey() (*rsax.PrivateKey, error) {
	record, err := readKeyFile(filepath.Join(keyDir, secretFile))
	if err != nil {
		return nil, err
	}
	return rsax.DecodePrivateKey(record)
}

func readKeyFile(path string) ([]byte, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("missing key file %s", path)
		}
		return nil, err
	}

	return base64x.Decode(string(encoded))
}

// codedError carries an exit code on the error returned to Execute, which
// logs the message through slog and exits with that code; exitErrorf
// builds one.
type codedError struct {
	code int
	err  error
}

func (c *codedError) Error() string { return c.err.Error() }

func exitErrorf(code int, format string, args ...any) error {
	return &codedError{code: code, err: fmt.Errorf(format, args...)}
}
