package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/wedkarz02/cryptfile/internal/aesengine"
	"github.com/wedkarz02/cryptfile/internal/sha256x"
)

var (
	debug    bool
	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:   "aestest",
	Short: "Exercise the AES and SHA-256 primitives directly",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(aesCmd, shaCmd)
}

// loadConfig reads the bound flag values back out of viper, the same
// read-back kgiusti-go-fdo-server's rootCmdLoadConfig does after its own
// viper.BindPFlags call.
func loadConfig() {
	debug = viper.GetBool("debug")
	if debug {
		logLevel.Set(slog.LevelDebug)
	}
}

var aesCmd = &cobra.Command{
	Use:   "aes HEX_KEY HEX_BLOCK",
	Short: "AES-ECB encrypt and decrypt a single hex-encoded block",
	Args:  cobra.ExactArgs(2),
	RunE:  runAES,
}

func runAES(cmd *cobra.Command, args []string) error {
	loadConfig()

	key, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("aestest: bad key hex: %w", err)
	}

	block, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("aestest: bad block hex: %w", err)
	}

	slog.Debug("aestest: building cipher", "key_len", len(key))

	cipher, err := aesengine.New(key)
	if err != nil {
		return fmt.Errorf("aestest: %w", err)
	}

	cipherText, err := cipher.EncryptECB(block)
	if err != nil {
		return fmt.Errorf("aestest: encrypt: %w", err)
	}
	slog.Debug("aestest: encrypted block", "ciphertext_len", len(cipherText))

	plainText, err := cipher.DecryptECB(cipherText)
	if err != nil {
		return fmt.Errorf("aestest: decrypt: %w", err)
	}

	fmt.Printf("ciphertext: %x\n", cipherText)
	fmt.Printf("roundtrip:  %x\n", plainText)
	return nil
}

var shaCmd = &cobra.Command{
	Use:   "sha256 MESSAGE",
	Short: "Print the SHA-256 hex digest of MESSAGE",
	Args:  cobra.ExactArgs(1),
	RunE:  runSHA,
}

func runSHA(cmd *cobra.Command, args []string) error {
	loadConfig()

	slog.Debug("aestest: hashing message", "message_len", len(args[0]))
	fmt.Println(sha256x.Sum([]byte(args[0])))
	return nil
}
