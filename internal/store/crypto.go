package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// contentCipher encrypts star content at rest with AES-GCM. A fresh
// 12-byte nonce is generated per entry and stored alongside the
// ciphertext; rows are decrypted on read so callers only ever see plain
// content.
type contentCipher struct {
	aead cipher.AEAD
}

// newContentCipher builds a cipher from a hex-encoded 32-byte key.
func newContentCipher(keyHex string) (*contentCipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &contentCipher{aead: aead}, nil
}

func (c *contentCipher) encrypt(plain string) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	ciphertext = c.aead.Seal(nil, nonce, []byte(plain), nil)
	return ciphertext, nonce, nil
}

func (c *contentCipher) decrypt(ciphertext, nonce []byte) (string, error) {
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
