// Package randsrc provides a RandomSource abstraction for key generation:
// an explicit handle passed into every prime and AES-key draw rather than
// a process-global PRNG, so a caller can substitute a deterministic
// source for testing without touching rsax or hybrid.
package randsrc

import "crypto/rand"

// Source fills buf with random bytes.
type Source interface {
	FillBytes(buf []byte) error
}

// CSPRNG is the production Source, backed by crypto/rand.Reader.
type CSPRNG struct{}

// FillBytes fills buf with bytes read from crypto/rand.Reader.
func (CSPRNG) FillBytes(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// Default is the CSPRNG source used by every public key-generation entry
// point unless a caller supplies its own Source (e.g. for deterministic
// tests).
var Default Source = CSPRNG{}
