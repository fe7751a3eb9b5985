package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// MinPasswordLength is the shortest login password accepted on register.
const MinPasswordLength = 8

// PasswordHasher derives and checks login verifiers.
type PasswordHasher interface {
	Hash(password, salt string) (model.VerifierRecord, error)
	Verify(password string, record model.VerifierRecord) bool
}

// TokenIssuer issues an access/refresh pair for a user.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error)
}

// Auth registers and authenticates users. Login passwords are kept only as
// PBKDF2 verifiers.
type Auth struct {
	userStore model.UserStore
	hasher    PasswordHasher
	tokens    TokenIssuer
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, hasher PasswordHasher, tokens TokenIssuer, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (s *Auth) Register(ctx context.Context, email, password string) (model.TokenPair, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.TokenPair{}, err
	}
	if len([]rune(password)) < MinPasswordLength {
		return model.TokenPair{}, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidArgument, MinPasswordLength)
	}

	_, err = s.userStore.GetByEmail(ctx, email)
	if err == nil {
		return model.TokenPair{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	verifier, err := s.hasher.Hash(password, "")
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.userStore.Create(ctx, model.User{
		ID:        uuid.New(),
		Email:     email,
		Verifier:  verifier,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Auth service: user registered", "path", model.UserPath(user.ID))

	return s.issue(ctx, user.ID)
}

// Login checks the password against the stored verifier. Unknown emails and
// wrong passwords fail the same way.
func (s *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.hasher.Verify(password, user.Verifier) {
		s.logger.Info("Auth service: login rejected", "path", model.UserPath(user.ID))
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	return s.issue(ctx, user.ID)
}

func (s *Auth) issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error) {
	access, refresh, err := s.tokens.Issue(ctx, userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return model.TokenPair{
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", model.ErrInvalidArgument)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: email is malformed", model.ErrInvalidArgument)
	}
	return email, nil
}
