package vaultcrypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dtroode/passguard/internal/model"
)

const (
	// DefaultIterations is the PBKDF2 iteration count for new verifiers.
	DefaultIterations = 200_000
	// MinIterations is the floor applied to configured iteration counts.
	MinIterations = 100_000
	// SaltSize is the number of random salt bytes (512 bits).
	SaltSize = 64
	// HashSize is the length of the derived key in bytes.
	HashSize = 64
)

// Verifier derives PBKDF2-HMAC-SHA512 verifiers. The hex text of the salt is
// what feeds the KDF, so stored records stay portable as plain strings.
// Each record carries the iteration count it was derived with, so changing
// the configured count only affects new verifiers.
type Verifier struct {
	iterations int
}

// NewVerifier creates a Verifier. Counts below MinIterations are raised to it.
func NewVerifier(iterations int) *Verifier {
	return &Verifier{iterations: max(iterations, MinIterations)}
}

// Iterations returns the effective iteration count.
func (v *Verifier) Iterations() int {
	return v.iterations
}

// Hash derives a verifier for password. An empty salt is replaced by a
// fresh random one.
func (v *Verifier) Hash(password, salt string) (model.VerifierRecord, error) {
	if salt == "" {
		b := make([]byte, SaltSize)
		if _, err := io.ReadFull(rand.Reader, b); err != nil {
			return model.VerifierRecord{}, fmt.Errorf("failed to generate salt: %w", err)
		}
		salt = hex.EncodeToString(b)
	}

	return model.VerifierRecord{
		Salt:       salt,
		Hash:       hex.EncodeToString(derive(password, salt, v.iterations)),
		Iterations: v.iterations,
	}, nil
}

// Verify recomputes the hash of password with the record's salt and
// iteration count and compares it in constant time. A record without a
// count is treated as DefaultIterations.
func (v *Verifier) Verify(password string, record model.VerifierRecord) bool {
	expected, err := hex.DecodeString(record.Hash)
	if err != nil || len(expected) != HashSize || record.Salt == "" {
		return false
	}

	iterations := record.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		return false
	}

	return subtle.ConstantTimeCompare(derive(password, record.Salt, iterations), expected) == 1
}

func derive(password, salt string, iterations int) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, HashSize, sha512.New)
}
