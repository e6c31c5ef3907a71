// Package symmetric implements a password-based file container: the
// SHA-256 hex digest of the password is prepended to the plaintext
// before AES-ECB encryption, then used again on decrypt as a
// password-check tag. It gives no integrity guarantee over the
// plaintext itself, only a password check.
package symmetric

import (
	"bytes"
	"errors"

	"github.com/wedkarz02/cryptfile/internal/aesengine"
	"github.com/wedkarz02/cryptfile/internal/consts"
	"github.com/wedkarz02/cryptfile/internal/sha256x"
)

// tagSize is the length of the SHA-256 hex digest used as both the AES
// key material and the verification tag: 64 ASCII characters.
const tagSize = 64

var ErrBadPassword = errors.New("symmetric: password does not match")

// Encrypt hashes password with sha256x, prepends the 64-character hex
// digest to plainText, and AES-encrypts the result in ECB mode under a key
// made from the first keySize bytes of that same hex string — the hex
// ASCII, not the raw 32-byte digest. This halves effective key entropy but
// is kept deliberately, so existing ciphertexts stay readable.
func Encrypt(plainText []byte, password []byte, keySize consts.KeySize) ([]byte, error) {
	hash := sha256x.Sum(password)

	payload := make([]byte, 0, tagSize+len(plainText))
	payload = append(payload, []byte(hash)...)
	payload = append(payload, plainText...)

	cipher, err := aesengine.New([]byte(hash)[:keySize])
	if err != nil {
		return nil, err
	}

	return cipher.EncryptECB(payload)
}

// Decrypt hashes password, AES-decrypts cipherText under the same
// hex-ASCII-derived key, and checks that the leading 64 bytes of the
// decrypted payload equal the password hash before returning the
// remainder as plaintext.
func Decrypt(cipherText []byte, password []byte, keySize consts.KeySize) ([]byte, error) {
	hash := sha256x.Sum(password)

	cipher, err := aesengine.New([]byte(hash)[:keySize])
	if err != nil {
		return nil, err
	}

	payload, err := cipher.DecryptECB(cipherText)
	if err != nil {
		return nil, err
	}

	if len(payload) < tagSize || !bytes.Equal(payload[:tagSize], []byte(hash)) {
		return nil, ErrBadPassword
	}

	return payload[tagSize:], nil
}
