package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to credentials saved without a category.
const DefaultCategory = "Other"

// AllCategories selects every category when listing credentials.
const AllCategories = "All"

// CredentialStore defines persistence operations for vault entries.
// Every query is scoped by owner ID.
type CredentialStore interface {
	Create(ctx context.Context, record CredentialRecord) (CredentialRecord, error)
	Update(ctx context.Context, record CredentialRecord) (CredentialRecord, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (CredentialRecord, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]CredentialRecord, error)
	ListByOwnerAndCategory(ctx context.Context, ownerID uuid.UUID, category string) ([]CredentialRecord, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// CredentialRecord is a saved third-party password with metadata.
// Password is only populated after decryption.
type CredentialRecord struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Title             string
	Username          string
	Password          string
	EncryptedPassword string
	IV                string
	Notes             string
	Category          string
	CreatedAt         time.Time
	LastUpdated       time.Time
}

// CredentialFilter narrows a vault listing. An empty Category or
// AllCategories selects every category; Query matches title or username
// case-insensitively.
type CredentialFilter struct {
	Category string
	Query    string
}

// SaveCredentialParams contains the fields a caller supplies on save.
type SaveCredentialParams struct {
	Title    string
	Username string
	Password string
	Notes    string
	Category string
}

// UserPath returns the document path of a principal's namespace.
func UserPath(ownerID uuid.UUID) string {
	return fmt.Sprintf("users/%s", ownerID)
}

// CredentialPath returns the document path of a vault entry.
func CredentialPath(ownerID, id uuid.UUID) string {
	return fmt.Sprintf("users/%s/passwords/%s", ownerID, id)
}
