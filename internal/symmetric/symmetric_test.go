package symmetric

import (
	"bytes"
	"testing"

	"github.com/wedkarz02/cryptfile/internal/consts"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	password := []byte("correct horse battery staple")
	plainText := []byte("the contents of a small file")

	for _, keySize := range []consts.KeySize{consts.AES128, consts.AES192, consts.AES256} {
		ct, err := Encrypt(plainText, password, keySize)
		if err != nil {
			t.Fatalf("Encrypt(%s): %v", keySize, err)
		}

		pt, err := Decrypt(ct, password, keySize)
		if err != nil {
			t.Fatalf("Decrypt(%s): %v", keySize, err)
		}

		if !bytes.Equal(pt, plainText) {
			t.Fatalf("round trip mismatch for %s: got %q", keySize, pt)
		}
	}
}

func TestDecryptBadPassword(t *testing.T) {
	ct, err := Encrypt([]byte("secret contents"), []byte("right password"), consts.AES256)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Decrypt(ct, []byte("wrong password"), consts.AES256); err != ErrBadPassword {
		t.Fatalf("Decrypt(wrong password) = %v, want ErrBadPassword", err)
	}
}
