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

// Package consts defines constant values shared by the AES implementation.
//
// KeySize is a variant type so the same key schedule and block transform
// serve AES-128, AES-192 and AES-256 (invariant: rounds = key_words + 6,
// key_words in {4, 6, 8}).
package consts

import "fmt"

const (
	// BLOCK_SIZE is the size in bytes of one AES block.
	BLOCK_SIZE = 16

	// WORD_SIZE is the size in bytes of one key-schedule word.
	WORD_SIZE = 4
)

// KeySize is the AES key length in bytes: 16 (AES-128), 24 (AES-192) or
// 32 (AES-256).
type KeySize int

const (
	AES128 KeySize = 16
	AES192 KeySize = 24
	AES256 KeySize = 32
)

// Valid reports whether k is one of the three supported AES key sizes.
func (k KeySize) Valid() bool {
	return k == AES128 || k == AES192 || k == AES256
}

// Nk is the key length in 32-bit words (4, 6 or 8).
func (k KeySize) Nk() int {
	return int(k) / WORD_SIZE
}

// Rounds is the number of AES rounds for this key size.
func (k KeySize) Rounds() int {
	return k.Nk() + 6
}

// RoundKeys is the number of distinct round keys produced by the key
// schedule (Rounds + 1).
func (k KeySize) RoundKeys() int {
	return k.Rounds() + 1
}

// ExpandedKeySize is the total size in bytes of the key schedule.
func (k KeySize) ExpandedKeySize() int {
	return BLOCK_SIZE * k.RoundKeys()
}

func (k KeySize) String() string {
	switch k {
	case AES128:
		return "aes128"
	case AES192:
		return "aes192"
	case AES256:
		return "aes256"
	default:
		return fmt.Sprintf("keysize(%d)", int(k))
	}
}

// ParseKeySize maps the CLI cipher names used by the symmetric tool
// ("aes128", "aes192", "aes256") to a KeySize. The bool result is false for
// an unrecognized name.
func ParseKeySize(name string) (KeySize, bool) {
	switch name {
	case "aes128":
		return AES128, true
	case "aes192":
		return AES192, true
	case "aes256":
		return AES256, true
	default:
		return 0, false
	}
}
