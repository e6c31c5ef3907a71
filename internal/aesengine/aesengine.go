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

// Package aesengine implements the AES block transform and the
// electronic-codebook mode wrapper with zero-byte padding: AddRoundKey,
// then SubBytes/ShiftRows/MixColumns per round, a final round without
// MixColumns, and the mirrored inverse sequence for decryption,
// generalized across all three AES key sizes.
//
// Only ECB mode is implemented. CBC/CFB/OFB/CTR/GCM are out of scope
// here: this is a fixed-mode, non-authenticated cipher by design (no
// chaining mode, no AEAD).
package aesengine

import (
	"errors"

	"github.com/wedkarz02/cryptfile/internal/consts"
	g "github.com/wedkarz02/cryptfile/internal/galois"
	"github.com/wedkarz02/cryptfile/internal/key"
	"github.com/wedkarz02/cryptfile/internal/padding"
	"github.com/wedkarz02/cryptfile/internal/sbox"
)

var (
	ErrInvalidKeyLength        = errors.New("aesengine: invalid key length")
	ErrInvalidBlockLength      = errors.New("aesengine: invalid block length")
	ErrInvalidCiphertextLength = errors.New("aesengine: ciphertext length must be a positive multiple of the block size")
)

// Cipher holds a key and its expanded round-key schedule for one AES key
// size. It is immutable once constructed and is safe to reuse across many
// Encrypt/Decrypt calls, but owned exclusively by its creator (nothing else
// is allowed to hold a reference to it).
type Cipher struct {
	keySize consts.KeySize
	sbox    *sbox.SBOX
	invSbox *sbox.SBOX
	xKey    key.ExpandedKey
}

// New builds a Cipher for k, whose length must match one of consts.AES128,
// consts.AES192 or consts.AES256.
func New(k []byte) (*Cipher, error) {
	keySize := consts.KeySize(len(k))
	if !keySize.Valid() {
		return nil, ErrInvalidKeyLength
	}

	sb := sbox.InitSBOX()

	xKey, err := key.ExpandKey(k, keySize, sb)
	if err != nil {
		return nil, err
	}

	return &Cipher{
		keySize: keySize,
		sbox:    sb,
		invSbox: sbox.InitInvSBOX(sb),
		xKey:    xKey,
	}, nil
}

func (c *Cipher) subBytes(state []byte) []byte {
	out := make([]byte, len(state))
	for i, b := range state {
		out[i] = c.sbox[b]
	}
	return out
}

func (c *Cipher) invSubBytes(state []byte) []byte {
	out := make([]byte, len(state))
	for i, b := range state {
		out[i] = c.invSbox[b]
	}
	return out
}

// shiftRows treats state as a 4x4 matrix laid out column by column
// (column c occupies indices [4c, 4c+4), so row r is at r, r+4, r+8, r+12)
// and cyclically shifts row i left by i positions.
func shiftRows(state []byte) []byte {
	shifted := make([]byte, len(state))
	copy(shifted, state)

	for i := 1; i < 4; i++ {
		for col := 0; col < 4; col++ {
			shifted[i+4*col] = state[i+4*((col+i)%4)]
		}
	}

	return shifted
}

func invShiftRows(state []byte) []byte {
	unshifted := make([]byte, len(state))
	copy(unshifted, state)

	for i := 1; i < 4; i++ {
		for col := 0; col < 4; col++ {
			unshifted[i+4*col] = state[i+4*((col-i+4)%4)]
		}
	}

	return unshifted
}

func mixColumns(state []byte) []byte {
	mixed := make([]byte, len(state))

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = g.Gmul(0x02, state[4*i+0]) ^ g.Gmul(0x03, state[4*i+1]) ^ state[4*i+2] ^ state[4*i+3]
		mixed[4*i+1] = state[4*i+0] ^ g.Gmul(0x02, state[4*i+1]) ^ g.Gmul(0x03, state[4*i+2]) ^ state[4*i+3]
		mixed[4*i+2] = state[4*i+0] ^ state[4*i+1] ^ g.Gmul(0x02, state[4*i+2]) ^ g.Gmul(0x03, state[4*i+3])
		mixed[4*i+3] = g.Gmul(0x03, state[4*i+0]) ^ state[4*i+1] ^ state[4*i+2] ^ g.Gmul(0x02, state[4*i+3])
	}

	return mixed
}

func invMixColumns(state []byte) []byte {
	mixed := make([]byte, len(state))

	for i := 0; i < 4; i++ {
		mixed[4*i+0] = g.Gmul(0x0e, state[4*i+0]) ^ g.Gmul(0x0b, state[4*i+1]) ^ g.Gmul(0x0d, state[4*i+2]) ^ g.Gmul(0x09, state[4*i+3])
		mixed[4*i+1] = g.Gmul(0x09, state[4*i+0]) ^ g.Gmul(0x0e, state[4*i+1]) ^ g.Gmul(0x0b, state[4*i+2]) ^ g.Gmul(0x0d, state[4*i+3])
		mixed[4*i+2] = g.Gmul(0x0d, state[4*i+0]) ^ g.Gmul(0x09, state[4*i+1]) ^ g.Gmul(0x0e, state[4*i+2]) ^ g.Gmul(0x0b, state[4*i+3])
		mixed[4*i+3] = g.Gmul(0x0b, state[4*i+0]) ^ g.Gmul(0x0d, state[4*i+1]) ^ g.Gmul(0x09, state[4*i+2]) ^ g.Gmul(0x0e, state[4*i+3])
	}

	return mixed
}

func (c *Cipher) addRoundKey(state []byte, roundIdx int) []byte {
	roundKey := c.xKey[roundIdx*consts.BLOCK_SIZE : (roundIdx+1)*consts.BLOCK_SIZE]

	out := make([]byte, len(state))
	for i, b := range state {
		out[i] = g.Gadd(b, roundKey[i])
	}
	return out
}

// EncryptBlock performs one 16-byte AES block encryption.
func (c *Cipher) EncryptBlock(state []byte) ([]byte, error) {
	if len(state) != consts.BLOCK_SIZE {
		return nil, ErrInvalidBlockLength
	}

	rounds := c.keySize.Rounds()

	cipherText := c.addRoundKey(state, 0)

	for roundIdx := 1; roundIdx < rounds; roundIdx++ {
		cipherText = c.subBytes(cipherText)
		cipherText = shiftRows(cipherText)
		cipherText = mixColumns(cipherText)
		cipherText = c.addRoundKey(cipherText, roundIdx)
	}

	cipherText = c.subBytes(cipherText)
	cipherText = shiftRows(cipherText)
	cipherText = c.addRoundKey(cipherText, rounds)

	return cipherText, nil
}

// DecryptBlock performs one 16-byte AES block decryption.
func (c *Cipher) DecryptBlock(state []byte) ([]byte, error) {
	if len(state) != consts.BLOCK_SIZE {
		return nil, ErrInvalidBlockLength
	}

	rounds := c.keySize.Rounds()

	plainText := c.addRoundKey(state, rounds)

	for roundIdx := rounds - 1; roundIdx > 0; roundIdx-- {
		plainText = invShiftRows(plainText)
		plainText = c.invSubBytes(plainText)
		plainText = c.addRoundKey(plainText, roundIdx)
		plainText = invMixColumns(plainText)
	}

	plainText = invShiftRows(plainText)
	plainText = c.invSubBytes(plainText)
	plainText = c.addRoundKey(plainText, 0)

	return plainText, nil
}

// EncryptECB encrypts plainText in electronic-codebook mode. The final
// block is zero-padded (padding.ZeroPad) before encryption; ciphertext
// length is ceil(len(plainText)/16)*16.
func (c *Cipher) EncryptECB(plainText []byte) ([]byte, error) {
	padded := padding.ZeroPad(plainText)

	cipherText := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += consts.BLOCK_SIZE {
		block, err := c.EncryptBlock(padded[i : i+consts.BLOCK_SIZE])
		if err != nil {
			return nil, err
		}
		cipherText = append(cipherText, block...)
	}

	return cipherText, nil
}

// DecryptECB decrypts cipherText block by block and strips the trailing
// zero padding added by EncryptECB. cipherText length must be a positive
// multiple of the block size.
//
// Property note: because the padding is indistinguishable from genuine
// trailing zero bytes in the plaintext, a plaintext ending in 0x00 does not
// round-trip byte-exactly; only strip_trailing_zeros(plaintext) is
// recovered. This is a known limitation of zero-byte padding, not a bug.
func (c *Cipher) DecryptECB(cipherText []byte) ([]byte, error) {
	if len(cipherText) == 0 || len(cipherText)%consts.BLOCK_SIZE != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	paddedPlain := make([]byte, 0, len(cipherText))
	for i := 0; i < len(cipherText); i += consts.BLOCK_SIZE {
		block, err := c.DecryptBlock(cipherText[i : i+consts.BLOCK_SIZE])
		if err != nil {
			return nil, err
		}
		paddedPlain = append(paddedPlain, block...)
	}

	return padding.ZeroUnpad(paddedPlain), nil
}
