//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/passguard/internal/model"
	repo "github.com/dtroode/passguard/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "passguard_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/passguard_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(t *testing.T, ur *repo.UserRepository, email string) model.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := ur.Create(context.Background(), model.User{
		ID:        uuid.New(),
		Email:     email,
		Verifier:  model.VerifierRecord{Salt: "73616c74", Hash: "68617368", Iterations: 250000},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return u
}

func newCredential(owner uuid.UUID, title, category string, created time.Time) model.CredentialRecord {
	return model.CredentialRecord{
		ID:                uuid.New(),
		OwnerID:           owner,
		Title:             title,
		Username:          "user",
		EncryptedPassword: "abcdef",
		IV:                "00112233445566778899aabbccddeeff",
		Category:          category,
		CreatedAt:         created,
		LastUpdated:       created,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := newUser(t, ur, "user@example.com")

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
		require.Equal(t, u.Verifier, byEmail.Verifier)

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		_, err = ur.Create(ctx, model.User{ID: uuid.New(), Email: u.Email, CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrEmailTaken)

		_, err = ur.GetByEmail(ctx, "ghost@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		tr := repo.NewRefreshTokenRepository(conn)
		u := newUser(t, ur, "tokens@example.com")

		now := time.Now().UTC()
		require.NoError(t, tr.Create(ctx, model.RefreshToken{
			JTI: "jti-1", UserID: u.ID, TokenHash: []byte("h1"), IssuedAt: now, ExpiresAt: now.Add(time.Hour),
		}))
		prev := "jti-1"
		require.NoError(t, tr.Create(ctx, model.RefreshToken{
			JTI: "jti-2", UserID: u.ID, TokenHash: []byte("h2"), IssuedAt: now, ExpiresAt: now.Add(time.Hour), RotatedFromJTI: &prev,
		}))

		require.NoError(t, tr.RevokeByJTI(ctx, "jti-1"))
		require.ErrorIs(t, tr.RevokeByJTI(ctx, "jti-1"), model.ErrTokenRevoked)
		got, err := tr.GetByJTI(ctx, "jti-1")
		require.NoError(t, err)
		require.NotNil(t, got.RevokedAt)

		got, err = tr.GetByJTI(ctx, "jti-2")
		require.NoError(t, err)
		require.Nil(t, got.RevokedAt)
		require.Equal(t, "jti-1", *got.RotatedFromJTI)

		require.NoError(t, tr.RevokeAllByUser(ctx, u.ID))
		got, err = tr.GetByJTI(ctx, "jti-2")
		require.NoError(t, err)
		require.NotNil(t, got.RevokedAt)
	})
}

func TestCredentialRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	cr := repo.NewCredentialRepository(conn)

	alice := newUser(t, ur, "alice@example.com")
	bob := newUser(t, ur, "bob@example.com")

	base := time.Now().UTC().Truncate(time.Microsecond)
	first, err := cr.Create(ctx, newCredential(alice.ID, "first", "Email", base))
	require.NoError(t, err)
	second, err := cr.Create(ctx, newCredential(alice.ID, "second", "Banking", base.Add(time.Second)))
	require.NoError(t, err)
	_, err = cr.Create(ctx, newCredential(bob.ID, "bobs", "Email", base))
	require.NoError(t, err)

	list, err := cr.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	emails, err := cr.ListByOwnerAndCategory(ctx, alice.ID, "Email")
	require.NoError(t, err)
	require.Len(t, emails, 1)
	require.Equal(t, first.ID, emails[0].ID)

	_, err = cr.GetByID(ctx, bob.ID, first.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, cr.Delete(ctx, bob.ID, first.ID), model.ErrNotFound)

	first.Title = "renamed"
	first.LastUpdated = base.Add(time.Minute)
	updated, err := cr.Update(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)

	first.OwnerID = bob.ID
	_, err = cr.Update(ctx, first)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, cr.Delete(ctx, alice.ID, second.ID))
	require.ErrorIs(t, cr.Delete(ctx, alice.ID, second.ID), model.ErrNotFound)
}
