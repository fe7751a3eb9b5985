package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/passguard/internal/model"
)

var _ model.CredentialStore = (*CredentialRepository)(nil)

const credentialColumns = `id, owner_id, title, username, encrypted_password, iv, notes, category, created_at, last_updated`

type CredentialRepository struct {
	db DBTX
}

func NewCredentialRepository(db DBTX) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

func (r *CredentialRepository) Create(ctx context.Context, record model.CredentialRecord) (model.CredentialRecord, error) {
	query := `
		INSERT INTO credentials (` + credentialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + credentialColumns

	saved, err := scanCredential(r.db.QueryRowContext(ctx, query,
		record.ID, record.OwnerID, record.Title, record.Username,
		record.EncryptedPassword, record.IV, record.Notes, record.Category,
		record.CreatedAt, record.LastUpdated,
	))
	if err != nil {
		return model.CredentialRecord{}, fmt.Errorf("failed to create credential: %w", err)
	}

	return saved, nil
}

func (r *CredentialRepository) Update(ctx context.Context, record model.CredentialRecord) (model.CredentialRecord, error) {
	query := `
		UPDATE credentials
		SET title = $3, username = $4, encrypted_password = $5, iv = $6, notes = $7, category = $8, last_updated = $9
		WHERE owner_id = $1 AND id = $2
		RETURNING ` + credentialColumns

	updated, err := scanCredential(r.db.QueryRowContext(ctx, query,
		record.OwnerID, record.ID, record.Title, record.Username,
		record.EncryptedPassword, record.IV, record.Notes, record.Category,
		record.LastUpdated,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CredentialRecord{}, model.ErrNotFound
		}
		return model.CredentialRecord{}, fmt.Errorf("failed to update credential: %w", err)
	}

	return updated, nil
}

func (r *CredentialRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.CredentialRecord, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE owner_id = $1 AND id = $2`

	record, err := scanCredential(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CredentialRecord{}, model.ErrNotFound
		}
		return model.CredentialRecord{}, fmt.Errorf("failed to get credential by id: %w", err)
	}

	return record, nil
}

func (r *CredentialRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CredentialRecord, error) {
	query := `
		SELECT ` + credentialColumns + `
		FROM credentials
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, ownerID)
}

func (r *CredentialRepository) ListByOwnerAndCategory(ctx context.Context, ownerID uuid.UUID, category string) ([]model.CredentialRecord, error) {
	query := `
		SELECT ` + credentialColumns + `
		FROM credentials
		WHERE owner_id = $1 AND category = $2
		ORDER BY created_at DESC`

	return r.list(ctx, query, ownerID, category)
}

func (r *CredentialRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM credentials WHERE owner_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *CredentialRepository) list(ctx context.Context, query string, args ...any) ([]model.CredentialRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	records := []model.CredentialRecord{}
	for rows.Next() {
		record, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (model.CredentialRecord, error) {
	var c model.CredentialRecord
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.Username,
		&c.EncryptedPassword, &c.IV, &c.Notes, &c.Category,
		&c.CreatedAt, &c.LastUpdated,
	)
	return c, err
}
