package aesengine

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestEncryptBlockKnownVector checks scenario A/B from the project's
// testable properties: the standard AES-128 test vector for the key
// "Thats my Kung Fu" and plaintext "Two One Nine Two".
func TestEncryptBlockKnownVector(t *testing.T) {
	key := []byte("Thats my Kung Fu")
	plainText := []byte("Two One Nine Two")
	wantHex := "29c3505f571420f6402299b31a02d73a"

	cipher, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cipherText, err := cipher.EncryptBlock(plainText)
	if err != nil {
		t.Fatalf("EncryptBlock: %v", err)
	}

	if got := hex.EncodeToString(cipherText); got != wantHex {
		t.Fatalf("EncryptBlock = %s, want %s", got, wantHex)
	}

	roundTrip, err := cipher.DecryptBlock(cipherText)
	if err != nil {
		t.Fatalf("DecryptBlock: %v", err)
	}

	if !bytes.Equal(roundTrip, plainText) {
		t.Fatalf("DecryptBlock = %q, want %q", roundTrip, plainText)
	}
}

func TestECBRoundTripAllKeySizes(t *testing.T) {
	plainText := []byte("the quick brown fox jumps over the lazy dog")

	for _, keyLen := range []int{16, 24, 32} {
		key := bytes.Repeat([]byte{0x42}, keyLen)

		cipher, err := New(key)
		if err != nil {
			t.Fatalf("New(%d): %v", keyLen, err)
		}

		cipherText, err := cipher.EncryptECB(plainText)
		if err != nil {
			t.Fatalf("EncryptECB(%d): %v", keyLen, err)
		}

		if len(cipherText)%16 != 0 {
			t.Fatalf("ciphertext length %d not a multiple of the block size", len(cipherText))
		}

		recovered, err := cipher.DecryptECB(cipherText)
		if err != nil {
			t.Fatalf("DecryptECB(%d): %v", keyLen, err)
		}

		if !bytes.Equal(recovered, plainText) {
			t.Fatalf("round trip mismatch for key size %d: got %q", keyLen, recovered)
		}
	}
}

// TestECBBlockAlignedExact checks that a plaintext already a multiple of
// 16 bytes encrypts to exactly that many bytes, not one block more.
func TestECBBlockAlignedExact(t *testing.T) {
	cipher, err := New([]byte("Thats my Kung Fu"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	plainText := []byte("Two One Nine Two")
	cipherText, err := cipher.EncryptECB(plainText)
	if err != nil {
		t.Fatalf("EncryptECB: %v", err)
	}

	if len(cipherText) != 16 {
		t.Fatalf("EncryptECB length = %d, want 16", len(cipherText))
	}
}

func TestNewInvalidKeyLength(t *testing.T) {
	if _, err := New(make([]byte, 20)); err != ErrInvalidKeyLength {
		t.Fatalf("New(20-byte key) = %v, want ErrInvalidKeyLength", err)
	}
}

func TestDecryptECBInvalidLength(t *testing.T) {
	cipher, err := New(make([]byte, 16))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := cipher.DecryptECB(make([]byte, 10)); err != ErrInvalidCiphertextLength {
		t.Fatalf("DecryptECB(10 bytes) = %v, want ErrInvalidCiphertextLength", err)
	}
}
