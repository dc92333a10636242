// Package cryptox implements the symmetric encryption used for the
// at-rest collection files.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
)

// ErrCiphertextTooShort is returned when a blob is shorter than the nonce
// that must prefix it.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey turns a configured passphrase into a 32-byte AES-256 key.
// The same passphrase always yields the same key, so data written under a
// passphrase stays readable across restarts.
func DeriveKey(passphrase string) []byte {
	hash := sha256.Sum256([]byte(passphrase))
	return hash[:]
}

// EncryptJSON serializes v to JSON and encrypts it with AES-GCM.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new
// random 12-byte nonce is generated per call and prepended to the
// ciphertext, so the returned blob is self-contained and can be written
// to disk as-is.
func EncryptJSON(v any, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptJSON decrypts a blob produced by EncryptJSON and unmarshals the
// resulting JSON into v. The key must be the same key used to encrypt.
// Any tampering with the blob fails GCM authentication and returns an
// error rather than corrupt data.
func DecryptJSON(data, key []byte, v any) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	if len(data) < aesgcm.NonceSize() {
		return ErrCiphertextTooShort
	}

	nonce, ciphertext := data[:aesgcm.NonceSize()], data[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}
