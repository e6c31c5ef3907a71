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
	"github.com/wedkarz02/cryptfile/internal/randsrc"
	"github.com/wedkarz02/cryptfile/internal/rsax"
)

var (
	keyDir  string
	keyBits int
	force   bool
	quiet   bool
	debug   bool

	logLevel slog.LevelVar
)

const (
	publicKeyFile  = "pkey"
	privateKeyFile = "skey"
)

var rootCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an RSA key pair for cryptfile",
	Long: `keygen creates a fresh RSA key pair and writes the private and public
halves to disk as base64-encoded, fixed-layout records that cryptfile can
load back in.`,
	RunE: runKeygen,
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

	rootCmd.Flags().StringVar(&keyDir, "dir", ".", "directory to write the key files into")
	rootCmd.Flags().IntVar(&keyBits, "bytes", rsax.DefaultModulusBits/8, "reserved for a future variable modulus size; currently ignored")
	rootCmd.Flags().BoolVar(&force, "force", false, "overwrite existing key files")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress non-error output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	_ = viper.BindPFlags(rootCmd.Flags())
}

// loadConfig reads the bound flag values back out of viper, the same
// read-back kgiusti-go-fdo-server's rootCmdLoadConfig does after its own
// viper.BindPFlags call: a test (or any other caller) can override a value
// with viper.Set without touching os.Args.
func loadConfig() {
	keyDir = viper.GetString("dir")
	keyBits = viper.GetInt("bytes")
	force = viper.GetBool("force")
	quiet = viper.GetBool("quiet")
	debug = viper.GetBool("debug")
}

func runKeygen(cmd *cobra.Command, args []string) error {
	loadConfig()

	if debug {
		logLevel.Set(slog.LevelDebug)
	}
	if quiet {
		logLevel.Set(slog.LevelError)
	}

	if err := os.MkdirAll(keyDir, 0o755); err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	pubPath := filepath.Join(keyDir, publicKeyFile)
	privPath := filepath.Join(keyDir, privateKeyFile)

	if !force {
		if existing := existingKeyFiles(pubPath, privPath); len(existing) > 0 {
			// Skips generation, with only an Info log line, when the
			// files are already there, which also means a zero exit on
			// skip.
			slog.Info("keygen: key files already exist, use --force to overwrite", "files", existing)
			return nil
		}
	}

	slog.Debug("generating RSA key pair", "bits", rsax.DefaultModulusBits)

	priv, err := rsax.GenerateKey(randsrc.Default)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	privRecord, err := rsax.EncodePrivateKey(priv)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	pubRecord, err := rsax.EncodePublicKey(priv.Public())
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	if err := os.WriteFile(privPath, []byte(base64x.Encode(privRecord)), 0o600); err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	if err := os.WriteFile(pubPath, []byte(base64x.Encode(pubRecord)), 0o644); err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	slog.Info("keygen: wrote key pair", "private", privPath, "public", pubPath)

	return nil
}

func existingKeyFiles(paths ...string) []string {
	var found []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil || !errors.Is(err, os.ErrNotExist) {
			found = append(found, p)
		}
	}
	return found
}
