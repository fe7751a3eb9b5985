// Package vaultcrypto implements the credential cipher: a reversible
// AES-256-CBC envelope for vault secrets and a PBKDF2 verifier for login
// passwords.
package vaultcrypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dtroode/passguard/internal/model"
)

const (
	// KeySize is the required length of the configured key in bytes.
	KeySize = 32
	// IVSize is the length of the random initialization vector.
	IVSize = aes.BlockSize

	tagSize = sha256.Size
)

var (
	encInfo = []byte("passguard/envelope/aes-256-cbc")
	macInfo = []byte("passguard/envelope/hmac-sha256")
)

// Envelope encrypts single secrets under a process-wide key. The ciphertext
// is hex(ct || tag) where tag = HMAC-SHA256(iv || ct); the IV is returned
// separately, hex encoded.
//
// An Envelope built from a missing or malformed key refuses every call with
// model.ErrKeyUnavailable.
type Envelope struct {
	encKey []byte
	macKey []byte
	keyErr error
}

// NewEnvelope creates an Envelope from a hex encoded 256-bit key.
func NewEnvelope(hexKey string) *Envelope {
	key, err := parseKey(hexKey)
	if err != nil {
		return &Envelope{keyErr: err}
	}

	encKey, macKey, err := deriveSubkeys(key)
	if err != nil {
		return &Envelope{keyErr: fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)}
	}

	return &Envelope{encKey: encKey, macKey: macKey}
}

// Ready reports why the envelope cannot operate, or nil.
func (e *Envelope) Ready() error {
	return e.keyErr
}

// Encrypt seals plaintext under a fresh IV.
func (e *Envelope) Encrypt(plaintext string) (ciphertext, iv string, err error) {
	if e.keyErr != nil {
		return "", "", e.keyErr
	}

	ivBytes := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, ivBytes); err != nil {
		return "", "", fmt.Errorf("%w: generate iv: %v", model.ErrEncryptionFailed, err)
	}

	block, err := aes.NewCipher(e.encKey)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", model.ErrEncryptionFailed, err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, ivBytes).CryptBlocks(ct, padded)

	sealed := append(ct, e.tag(ivBytes, ct)...)

	return hex.EncodeToString(sealed), hex.EncodeToString(ivBytes), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any mismatch of key, IV
// or ciphertext yields model.ErrDecryptionFailed.
func (e *Envelope) Decrypt(ciphertext, iv string) (string, error) {
	if e.keyErr != nil {
		return "", e.keyErr
	}

	ivBytes, err := hex.DecodeString(iv)
	if err != nil || len(ivBytes) != IVSize {
		return "", fmt.Errorf("%w: malformed iv", model.ErrDecryptionFailed)
	}

	sealed, err := hex.DecodeString(ciphertext)
	if err != nil || len(sealed) < tagSize+aes.BlockSize {
		return "", fmt.Errorf("%w: malformed ciphertext", model.ErrDecryptionFailed)
	}

	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]
	if !hmac.Equal(tag, e.tag(ivBytes, ct)) {
		return "", fmt.Errorf("%w: authentication failed", model.ErrDecryptionFailed)
	}
	if len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not block aligned", model.ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(e.encKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrDecryptionFailed, err)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, ivBytes).CryptBlocks(plain, ct)

	plain, err = unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrDecryptionFailed, err)
	}

	return string(plain), nil
}

func (e *Envelope) tag(iv, ct []byte) []byte {
	mac := hmac.New(sha256.New, e.macKey)
	mac.Write(iv)
	mac.Write(ct)
	return mac.Sum(nil)
}

func parseKey(hexKey string) ([]byte, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("%w: key is not set", model.ErrKeyUnavailable)
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid hex", model.ErrKeyUnavailable)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", model.ErrKeyUnavailable, KeySize, len(key))
	}
	return key, nil
}

func deriveSubkeys(key []byte) (encKey, macKey []byte, err error) {
	encKey = make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, encInfo), encKey); err != nil {
		return nil, nil, err
	}
	macKey = make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, macInfo), macKey); err != nil {
		return nil, nil, err
	}
	return encKey, macKey, nil
}

// pad applies PKCS#7 padding.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(b))
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}
