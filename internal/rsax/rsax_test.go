package rsax

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptfile/internal/randsrc"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	priv, err := GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	msg := []byte("a message under the modulus size limit")
	if len(msg) > MessageSize {
		t.Fatalf("test message too large: %d > %d", len(msg), MessageSize)
	}

	ct, err := Encrypt(msg, priv.Public())
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	pt, err := Decrypt(ct, priv)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	// Big-endian export suppresses leading zero bytes; a short message
	// round-trips byte-exact only once its own leading byte is non-zero,
	// which "a message..." is.
	if !bytes.Equal(pt, msg) {
		t.Fatalf("round trip mismatch: got %q, want %q", pt, msg)
	}
}

func TestEncryptMessageTooLarge(t *testing.T) {
	priv, err := GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	oversized := bytes.Repeat([]byte{0x01}, MessageSize+1)
	if _, err := Encrypt(oversized, priv.Public()); err != ErrMessageTooLarge {
		t.Fatalf("Encrypt(oversized) = %v, want ErrMessageTooLarge", err)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	priv, err := GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	privRecord, err := EncodePrivateKey(priv)
	if err != nil {
		t.Fatalf("EncodePrivateKey: %v", err)
	}

	decodedPriv, err := DecodePrivateKey(privRecord)
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}

	if decodedPriv.N.Cmp(priv.N) != 0 || decodedPriv.E.Cmp(priv.E) != 0 || decodedPriv.D.Cmp(priv.D) != 0 {
		t.Fatalf("decoded private key does not match the original")
	}

	pubRecord, err := EncodePublicKey(priv.Public())
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}

	decodedPub, err := DecodePublicKey(pubRecord)
	if err != nil {
		t.Fatalf("DecodePublicKey: %v", err)
	}

	if decodedPub.N.Cmp(priv.N) != 0 || decodedPub.E.Cmp(priv.E) != 0 {
		t.Fatalf("decoded public key does not match the original")
	}
}

// TestDecodePublicKeyFieldLengthOverflow guards against a corrupted record
// whose length prefix exceeds its field's buffer: DecodePublicKey must
// return an error, not slice out of range.
func TestDecodePublicKeyFieldLengthOverflow(t *testing.T) {
	priv, err := GenerateKey(randsrc.Default)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	record, err := EncodePublicKey(priv.Public())
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}

	// The N field's length prefix is the record's first two bytes; set it
	// past EncryptSize, N's buffer size.
	record[0] = 0xff
	record[1] = 0xff

	if _, err := DecodePublicKey(record); err != ErrInvalidEncodedKeyField {
		t.Fatalf("DecodePublicKey(overflowing length) = %v, want ErrInvalidEncodedKeyField", err)
	}
}
