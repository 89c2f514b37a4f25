// Package crypto implements the AES-CBC envelope the DC-09 protocol uses
// to carry an encrypted body: a fixed all-zero IV, uppercase-hex wire
// encoding, and left-zero padding on the plaintext before encryption.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"strings"
)

// zeroIV is the fixed 16-byte initialization vector every DC-09 message
// is encrypted and decrypted with, in both directions. A fresh cipher
// instance is constructed per message, so sharing the same zero IV
// across accounts and messages never reuses any mutable state.
var zeroIV = make([]byte, 16)

// Decrypt decodes hexCiphertext and decrypts it under key (AES-128/192/256
// depending on key length) using AES-CBC with a zero IV, returning the
// padded plaintext bytes. The caller strips the left-zero padding.
func Decrypt(key []byte, hexCiphertext string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(hexCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decode hex ciphertext: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the AES block size", len(ciphertext))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("build AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, zeroIV).CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}

// Encrypt left-zero-pads message to a multiple of the AES block size
// (always padding by at least one byte — a message already block-aligned
// still gains a full extra block, matching the wire encoder's zfill
// behavior) then encrypts under key with AES-CBC and a zero IV, returning
// the ciphertext hex-encoded in uppercase.
func Encrypt(key []byte, message string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("build AES cipher: %w", err)
	}
	padded := PadLeft(message)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, zeroIV).CryptBlocks(ciphertext, []byte(padded))
	return strings.ToUpper(hex.EncodeToString(ciphertext)), nil
}

// PadLeft left-pads message with '0' characters so the result's length
// is a multiple of 16, always adding at least one byte of padding — a
// message whose length is already a multiple of 16 still gets a full
// extra 16-byte block. This mirrors the reference implementation's
// zfill-based padding formula exactly.
func PadLeft(message string) string {
	fillSize := len(message) + 16 - len(message)%16
	padCount := fillSize - len(message)
	buf := make([]byte, fillSize)
	for i := 0; i < padCount; i++ {
		buf[i] = '0'
	}
	copy(buf[padCount:], message)
	return string(buf)
}
