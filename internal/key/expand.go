// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package key implements the AES key schedule (key expansion) for all
// three key sizes. ExpandKey takes a consts.KeySize so the same code path
// serves AES-128, AES-192 and AES-256.
package key

import (
	"errors"

	"github.com/wedkarz02/cryptfile/internal/consts"
	"github.com/wedkarz02/cryptfile/internal/sbox"
)

// ExpandedKey is the round-key material produced by ExpandKey, a flat byte
// slice of length KeySize.ExpandedKeySize().
type ExpandedKey []byte

// Rcon returns the round constant byte for schedule step idx (1-indexed);
// ExpandKey XORs it into the first (high) byte of the word.
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1

	for idx != 1 {
		rcon = gmulBy2(rcon)
		idx--
	}

	return rcon
}

// gmulBy2 multiplies by 2 in GF(2^8); kept local to avoid importing galois
// just for the one operation Rcon needs.
func gmulBy2(a byte) byte {
	hiBitSet := a&0x80 != 0
	a <<= 1

	if hiBitSet {
		a ^= 0x1b
	}

	return a
}

// RotWord rotates a 4-byte word left by one byte.
func RotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var rotated [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WORD_SIZE-1] = word[0]
	return rotated
}

// SubWord applies the AES S-box to every byte of word.
func SubWord(word [consts.WORD_SIZE]byte, sb *sbox.SBOX) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE; i++ {
		subw[i] = sb[word[i]]
	}

	return subw
}

// ExpandKey derives the key schedule byte-by-byte from a key of the given
// size: c walks the expanded key in WORD_SIZE-byte steps, and a new
// schedule core kicks in every keySize bytes, for keySize in {AES128,
// AES192, AES256}:
//
//	for c < ExpandedKeySize:
//	    tmp = xKey[c-WORD_SIZE : c]
//	    if c % keySize == 0:            tmp = SubWord(RotWord(tmp)) ^ Rcon(c/keySize)
//	    else if Nk > 6 && c % keySize == BLOCK_SIZE:  tmp = SubWord(tmp)
//	    xKey[c:c+WORD_SIZE] = xKey[c-keySize : c-keySize+WORD_SIZE] ^ tmp
func ExpandKey(k []byte, keySize consts.KeySize, sb *sbox.SBOX) (ExpandedKey, error) {
	if !keySize.Valid() || len(k) != int(keySize) {
		return nil, errors.New("invalid key size")
	}

	xKey := make(ExpandedKey, keySize.ExpandedKeySize())
	copy(xKey, k)

	var tmp [consts.WORD_SIZE]byte
	rconIdx := byte(1)

	for c := int(keySize); c < keySize.ExpandedKeySize(); c += consts.WORD_SIZE {
		copy(tmp[:], xKey[c-consts.WORD_SIZE:c])

		switch {
		case c%int(keySize) == 0:
			tmp = SubWord(RotWord(tmp), sb)
			tmp[0] ^= Rcon(rconIdx)
			rconIdx++
		case keySize.Nk() > 6 && c%int(keySize) == consts.BLOCK_SIZE:
			tmp = SubWord(tmp, sb)
		}

		for b := 0; b < consts.WORD_SIZE; b++ {
			xKey[c+b] = xKey[c-int(keySize)+b] ^ tmp[b]
		}
	}

	return xKey, nil
}
