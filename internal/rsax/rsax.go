// Package rsax implements textbook RSA key generation, the raw RSA
// primitive and a fixed-layout key serialization.
//
// This is deliberately not a production RSA implementation: there is no
// OAEP/PKCS#1 padding, the public exponent is fixed at 3, and the
// arithmetic is not constant-time.
package rsax

import (
	"errors"
	"math/big"

	"github.com/wedkarz02/cryptfile/internal/bignum"
	"github.com/wedkarz02/cryptfile/internal/randsrc"
)

const (
	// DefaultModulusBits is cryptographically inadequate by modern
	// standards; --bytes is reserved for a future variable-modulus
	// override that isn't wired up yet.
	DefaultModulusBits = 512

	// EncryptSize is the byte width of an RSA ciphertext block
	// (MODULUS_SIZE / 8).
	EncryptSize = DefaultModulusBits / 8

	// BufferSize is the byte width of one prime factor
	// (MODULUS_SIZE / 16).
	BufferSize = DefaultModulusBits / 16

	// MessageSize is the largest plaintext rsax.Encrypt accepts
	// (ENCRYPT_SIZE - 11, PKCS#1 v1.5 headroom reserved but never
	// actually padded with).
	MessageSize = EncryptSize - 11

	// maxKeyGenAttempts bounds the search for a valid (p, q, d) triple.
	maxKeyGenAttempts = 100

	// publicExponent is the fixed public exponent e = 3.
	publicExponent = 3
)

var (
	ErrInvalidArguments       = errors.New("rsax: invalid arguments")
	ErrKeyGenExhausted        = errors.New("rsax: exhausted key generation attempts")
	ErrMessageTooLarge        = errors.New("rsax: message too large for modulus")
	ErrCiphertextTooLarge     = errors.New("rsax: ciphertext too large for modulus")
	ErrInvalidEncodedKeyLen   = errors.New("rsax: encoded key has wrong length")
	ErrInvalidEncodedKeyField = errors.New("rsax: encoded key field too large for its buffer")
)

// PublicKey is the (n, e) pair: n is a product of two primes, e is a small
// odd public exponent with gcd(e, phi(n)) = 1.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, e, d, p, q) tuple: n = p*q, e*d = 1 mod phi(n).
type PrivateKey struct {
	N *big.Int
	E *big.Int
	D *big.Int
	P *big.Int
	Q *big.Int
}

// Public returns the public key half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: priv.N, E: priv.E}
}

func generatePrime(src randsrc.Source) (*big.Int, error) {
	buf := make([]byte, BufferSize)
	if err := src.FillBytes(buf); err != nil {
		return nil, err
	}

	buf[0] |= 0xC0
	buf[BufferSize-1] |= 0x01

	candidate := bignum.ImportBE(buf)
	return bignum.NextPrime(candidate), nil
}

// tweakPrime advances p past any value congruent to 1 mod e, since such a
// prime would make gcd(e, p-1) > 1 and later break the modular inverse.
func tweakPrime(p *big.Int, e *big.Int) *big.Int {
	one := big.NewInt(1)
	mod := new(big.Int)

	for {
		mod.Mod(p, e)
		if mod.Cmp(one) != 0 {
			return p
		}
		p = bignum.NextPrime(new(big.Int).Add(p, one))
	}
}

// GenerateKey produces a fresh RSA key pair using src for randomness:
// draw p, tweak it away from 1 mod e, draw a distinct q the same way, and
// accept the pair as soon as e has a modular inverse mod phi(n). Returns
// on the very first valid (p, q, d) rather than continuing to search.
func GenerateKey(src randsrc.Source) (*PrivateKey, error) {
	if src == nil {
		src = randsrc.Default
	}

	e := big.NewInt(publicExponent)
	one := big.NewInt(1)

	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		p, err := generatePrime(src)
		if err != nil {
			return nil, err
		}
		p = tweakPrime(p, e)

		var q *big.Int
		for {
			q, err = generatePrime(src)
			if err != nil {
				return nil, err
			}
			q = tweakPrime(q, e)

			if q.Cmp(p) != 0 {
				break
			}
		}

		n := new(big.Int).Mul(p, q)

		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinus1, qMinus1)

		d, err := bignum.ModInverse(e, phi)
		if err != nil {
			continue
		}

		return &PrivateKey{N: n, E: e, D: d, P: p, Q: q}, nil
	}

	return nil, ErrKeyGenExhausted
}

// Encrypt applies the raw RSA primitive c = m^e mod n to msg, treated as a
// big-endian integer. len(msg) must not exceed MessageSize. No padding is
// applied; the returned ciphertext has no leading zero bytes (big-endian
// export suppresses them), so a caller that needs a fixed-width ciphertext
// must zero-extend it on the left.
func Encrypt(msg []byte, pub *PublicKey) ([]byte, error) {
	if len(msg) > MessageSize {
		return nil, ErrMessageTooLarge
	}

	m := bignum.ImportBE(msg)
	c := bignum.ModExp(m, pub.E, pub.N)
	return bignum.ExportBE(c), nil
}

// Decrypt applies the raw RSA primitive m = c^d mod n to ct. len(ct) must
// not exceed EncryptSize.
func Decrypt(ct []byte, priv *PrivateKey) ([]byte, error) {
	if len(ct) > EncryptSize {
		return nil, ErrCiphertextTooLarge
	}

	c := bignum.ImportBE(ct)
	m := bignum.ModExp(c, priv.D, priv.N)
	return bignum.ExportBE(m), nil
}
