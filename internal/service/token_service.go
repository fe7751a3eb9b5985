package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// DefaultRefreshTTL is how long a persisted refresh token stays usable.
// It must match the lifetime the token manager signs into the JWT.
const DefaultRefreshTTL = 30 * 24 * time.Hour

// TokenService issues, rotates and revokes session tokens. Refresh tokens
// are persisted by hash so a leaked database cannot mint sessions.
type TokenService struct {
	manager    model.TokenManager
	store      model.RefreshTokenStore
	logger     *logger.Logger
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager:    manager,
		store:      store,
		logger:     logger,
		refreshTTL: DefaultRefreshTTL,
		now:        time.Now,
	}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.persistRefresh(ctx, userID, nil)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued. Any problem with the presented token is reported as
// model.ErrUnauthenticated.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, newRefresh string, err error) {
	userID, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return "", "", fmt.Errorf("%w: unknown refresh token", model.ErrUnauthenticated)
	}
	if err != nil {
		return "", "", fmt.Errorf("get refresh: %w", err)
	}

	if err := validateRecord(rt, hashRefresh(presentedRefresh), s.now()); err != nil {
		s.logger.Warn("Token service: refresh rejected",
			"path", model.UserPath(rt.UserID),
			"reason", err.Error())
		return "", "", fmt.Errorf("%w: %w", model.ErrUnauthenticated, err)
	}

	// revocation is the point of serialization: a concurrent refresh of the
	// same token loses here.
	if err := s.store.RevokeByJTI(ctx, jti); err != nil {
		if errors.Is(err, model.ErrTokenRevoked) {
			s.logger.Warn("Token service: refresh rejected",
				"path", model.UserPath(rt.UserID),
				"reason", err.Error())
			return "", "", fmt.Errorf("%w: %w", model.ErrUnauthenticated, err)
		}
		return "", "", fmt.Errorf("revoke old refresh: %w", err)
	}

	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue new access: %w", err)
	}

	rotatedFrom := rt.JTI
	refresh, err := s.persistRefresh(ctx, userID, &rotatedFrom)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// RevokeByToken ends the session of a refresh token. Revoking a token that
// is already revoked succeeds.
func (s *TokenService) RevokeByToken(ctx context.Context, presentedRefresh string) error {
	_, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}
	if err := s.store.RevokeByJTI(ctx, jti); err != nil && !errors.Is(err, model.ErrTokenRevoked) {
		return fmt.Errorf("revoke refresh: %w", err)
	}
	return nil
}

func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

// GetUserID resolves the principal of an access token.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}
	return userID, nil
}

func (s *TokenService) persistRefresh(ctx context.Context, userID uuid.UUID, rotatedFrom *string) (string, error) {
	refresh, jti, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue refresh: %w", err)
	}

	now := s.now()
	rt := model.RefreshToken{
		ID:             uuid.New(),
		JTI:            jti,
		UserID:         userID,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.refreshTTL),
		RotatedFromJTI: rotatedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return "", fmt.Errorf("persist refresh: %w", err)
	}

	return refresh, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	if now.After(rt.ExpiresAt) {
		return model.ErrTokenExpired
	}
	if subtle.ConstantTimeCompare(rt.TokenHash, presentedHash) != 1 {
		return model.ErrTokenMismatch
	}
	return nil
}
