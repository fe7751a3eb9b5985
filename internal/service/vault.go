package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// Cipher seals and opens single vault secrets.
type Cipher interface {
	Encrypt(plaintext string) (ciphertext, iv string, err error)
	Decrypt(ciphertext, iv string) (string, error)
}

// Vault manages a principal's saved credentials. Secrets are encrypted
// before they reach the store and decrypted only on Get.
type Vault struct {
	store  model.CredentialStore
	cipher Cipher
	logger *logger.Logger
	now    func() time.Time
}

func NewVault(store model.CredentialStore, cipher Cipher, logger *logger.Logger) *Vault {
	return &Vault{
		store:  store,
		cipher: cipher,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Vault) Save(ctx context.Context, userID uuid.UUID, params model.SaveCredentialParams) (model.CredentialRecord, error) {
	if userID == uuid.Nil {
		return model.CredentialRecord{}, model.ErrUnauthenticated
	}
	if err := validateParams(params); err != nil {
		return model.CredentialRecord{}, err
	}

	ciphertext, iv, err := s.cipher.Encrypt(params.Password)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to encrypt password: %w", err)
	}

	now := s.now().UTC()
	record := model.CredentialRecord{
		ID:                uuid.New(),
		OwnerID:           userID,
		Title:             params.Title,
		Username:          params.Username,
		EncryptedPassword: ciphertext,
		IV:                iv,
		Notes:             params.Notes,
		Category:          normalizeCategory(params.Category),
		CreatedAt:         now,
		LastUpdated:       now,
	}

	saved, err := s.store.Create(ctx, record)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to create credential: %w", err)
	}

	s.logger.Info("Vault service: credential saved",
		"path", model.CredentialPath(userID, saved.ID),
		"category", saved.Category)

	return redact(saved), nil
}

// Update re-saves an existing entry. The password is encrypted again under
// a fresh IV.
func (s *Vault) Update(ctx context.Context, userID, id uuid.UUID, params model.SaveCredentialParams) (model.CredentialRecord, error) {
	if userID == uuid.Nil {
		return model.CredentialRecord{}, model.ErrUnauthenticated
	}
	if err := validateParams(params); err != nil {
		return model.CredentialRecord{}, err
	}

	existing, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to get credential by id: %w", err)
	}

	ciphertext, iv, err := s.cipher.Encrypt(params.Password)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to encrypt password: %w", err)
	}

	existing.Title = params.Title
	existing.Username = params.Username
	existing.Notes = params.Notes
	existing.Category = normalizeCategory(params.Category)
	existing.EncryptedPassword = ciphertext
	existing.IV = iv
	existing.LastUpdated = s.now().UTC()

	updated, err := s.store.Update(ctx, existing)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to update credential: %w", err)
	}

	s.logger.Info("Vault service: credential updated",
		"path", model.CredentialPath(userID, id))

	return redact(updated), nil
}

// List returns the principal's entries matching filter, newest first,
// without secrets.
func (s *Vault) List(ctx context.Context, userID uuid.UUID, filter model.CredentialFilter) ([]model.CredentialRecord, error) {
	if userID == uuid.Nil {
		return nil, model.ErrUnauthenticated
	}

	var (
		records []model.CredentialRecord
		err     error
	)
	category := strings.TrimSpace(filter.Category)
	if category == "" || strings.EqualFold(category, model.AllCategories) {
		records, err = s.store.ListByOwner(ctx, userID)
	} else {
		records, err = s.store.ListByOwnerAndCategory(ctx, userID, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	result := make([]model.CredentialRecord, 0, len(records))
	for _, r := range records {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		result = append(result, redact(r))
	}

	return result, nil
}

// Get returns a single entry with its password decrypted.
func (s *Vault) Get(ctx context.Context, userID, id uuid.UUID) (model.CredentialRecord, error) {
	if userID == uuid.Nil {
		return model.CredentialRecord{}, model.ErrUnauthenticated
	}

	record, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to get credential by id: %w", err)
	}

	password, err := s.cipher.Decrypt(record.EncryptedPassword, record.IV)
	if err != nil {
		s.logger.Warn("Vault service: failed to decrypt credential",
			"path", model.CredentialPath(userID, id),
			"error", err.Error())
		return model.CredentialRecord{}, fmt.Errorf("failed to decrypt password: %w", err)
	}
	record.Password = password

	return record, nil
}

// Delete removes an entry. Deleting an entry that does not exist succeeds.
func (s *Vault) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return model.ErrUnauthenticated
	}

	err := s.store.Delete(ctx, userID, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Vault service: credential already absent",
			"path", model.CredentialPath(userID, id))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	s.logger.Info("Vault service: credential deleted",
		"path", model.CredentialPath(userID, id))

	return nil
}

func validateParams(params model.SaveCredentialParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return fmt.Errorf("%w: title is required", model.ErrInvalidArgument)
	}
	if params.Password == "" {
		return fmt.Errorf("%w: password is required", model.ErrInvalidArgument)
	}
	return nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, model.AllCategories) {
		return model.DefaultCategory
	}
	return category
}

func matchesQuery(r model.CredentialRecord, query string) bool {
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Username), query)
}

func redact(r model.CredentialRecord) model.CredentialRecord {
	r.Password = ""
	r.EncryptedPassword = ""
	r.IV = ""
	return r
}
