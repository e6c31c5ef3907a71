// Package hybrid implements the asymmetric file-encryption container: a
// one-byte length prefix, an RSA-wrapped AES-256 key, and the AES-256
// ciphertext, in that order.
package hybrid

import (
	"errors"

	"github.com/wedkarz02/cryptfile/internal/aesengine"
	"github.com/wedkarz02/cryptfile/internal/consts"
	"github.com/wedkarz02/cryptfile/internal/randsrc"
	"github.com/wedkarz02/cryptfile/internal/rsax"
)

// aesKeySize is fixed at AES-256 regardless of the RSA modulus size.
const aesKeySize = consts.AES256

var (
	ErrContainerTooSmall = errors.New("hybrid: container smaller than the minimum valid size")
)

// minContainerSize is the smallest a well-formed container can be: the
// 1-byte length prefix, at least one byte of wrapped key (the RSA
// big-endian export strips leading zero bytes, so a wrapped key can be
// shorter than rsax.EncryptSize), and at least one AES block of ciphertext.
func minContainerSize() int {
	return 1 + 1 + 16
}

// Encrypt generates a fresh AES-256 key, wraps it for pub with the raw RSA
// primitive, AES-encrypts plainText under that key in ECB mode, and frames
// the result as length || wrapped_key || ciphertext. The sequence is fixed
// (generate -> wrap -> encrypt -> frame) and never reordered.
func Encrypt(plainText []byte, pub *rsax.PublicKey, src randsrc.Source) ([]byte, error) {
	if src == nil {
		src = randsrc.Default
	}

	aesKey := make([]byte, aesKeySize)
	if err := src.FillBytes(aesKey); err != nil {
		return nil, err
	}

	wrappedKey, err := rsax.Encrypt(aesKey, pub)
	if err != nil {
		return nil, err
	}

	if len(wrappedKey) > 255 {
		// Comfortably fits today; raising the modulus size past 2040
		// bits would overflow the 1-byte length prefix and requires
		// widening this field first.
		return nil, errors.New("hybrid: wrapped key too large for 1-byte length prefix")
	}

	cipher, err := aesengine.New(aesKey)
	if err != nil {
		return nil, err
	}

	cipherText, err := cipher.EncryptECB(plainText)
	if err != nil {
		return nil, err
	}

	container := make([]byte, 0, 1+len(wrappedKey)+len(cipherText))
	container = append(container, byte(len(wrappedKey)))
	container = append(container, wrappedKey...)
	container = append(container, cipherText...)

	return container, nil
}

// Decrypt reverses Encrypt: it reads L from the first byte, RSA-decrypts
// the next L bytes to recover the AES key, then AES-decrypts the
// remainder.
func Decrypt(container []byte, priv *rsax.PrivateKey) ([]byte, error) {
	if len(container) < minContainerSize() {
		return nil, ErrContainerTooSmall
	}

	wrappedLen := int(container[0])
	if 1+wrappedLen+16 > len(container) {
		return nil, ErrContainerTooSmall
	}
	wrappedKey := container[1 : 1+wrappedLen]
	cipherText := container[1+wrappedLen:]

	aesKeyRaw, err := rsax.Decrypt(wrappedKey, priv)
	if err != nil {
		return nil, err
	}

	// The big-endian export of m = c^d mod n suppresses leading zero
	// bytes, so a decrypted AES-256 key can come back shorter than 32
	// bytes. Zero-extend it back to the original width on the left or
	// AES decryption uses the wrong key.
	aesKey := make([]byte, aesKeySize)
	copy(aesKey[len(aesKey)-len(aesKeyRaw):], aesKeyRaw)

	cipher, err := aesengine.New(aesKey)
	if err != nil {
		return nil, err
	}

	return cipher.DecryptECB(cipherText)
}
