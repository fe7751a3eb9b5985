package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with its login verifier.
type User struct {
	ID        uuid.UUID
	Email     string
	Verifier  VerifierRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VerifierRecord is a salt and derived hash used to check a password
// without storing it reversibly. Salt and Hash are hex encoded; Iterations
// is the KDF cost the hash was derived with.
type VerifierRecord struct {
	Salt       string
	Hash       string
	Iterations int
}
