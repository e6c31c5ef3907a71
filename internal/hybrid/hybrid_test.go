package hybrid

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/wedkarz02/cryptfile/internal/randsrc"
	"github.com/wedkarz02/cryptfile/internal/rsax"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	priv, err := rsax.GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	plainText := make([]byte, 1024)
	if _, err := rand.Read(plainText); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	// Avoid a trailing zero byte, which the zero-padding scheme cannot
	// distinguish from genuine padding on round trip.
	plainText[len(plainText)-1] = 0xAB

	container, err := Encrypt(plainText, priv.Public(), randsrc.Default)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	recovered, err := Decrypt(container, priv)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(recovered, plainText) {
		t.Fatalf("round trip mismatch")
	}
}

func TestDecryptContainerTooSmall(t *testing.T) {
	priv, err := rsax.GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	if _, err := Decrypt(make([]byte, 4), priv); err != ErrContainerTooSmall {
		t.Fatalf("Decrypt(short container) = %v, want ErrContainerTooSmall", err)
	}
}

// TestDecryptLengthPrefixExceedsContainer guards against a truncated or
// corrupted container whose length prefix claims more wrapped-key bytes
// than actually follow it: Decrypt must return an error, not panic.
func TestDecryptLengthPrefixExceedsContainer(t *testing.T) {
	priv, err := rsax.GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	container := make([]byte, minContainerSize())
	container[0] = byte(len(container))

	if _, err := Decrypt(container, priv); err != ErrContainerTooSmall {
		t.Fatalf("Decrypt(overflowing length prefix) = %v, want ErrContainerTooSmall", err)
	}
}
