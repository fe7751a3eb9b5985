package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.TokenPair, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
	RevokeByToken(ctx context.Context, refreshToken string) error
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authService  AuthService
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates an account and returns its first token pair.
func (h *Auth) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.TokenResponse, error) {
	h.logger.Debug("Auth handler: processing register request", "email", req.Email)

	pair, err := h.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: register completed", "user_id", pair.UserID)

	return tokenResponse(pair), nil
}

// Login authenticates with email and password.
func (h *Auth) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.TokenResponse, error) {
	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	pair, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed", "user_id", pair.UserID)

	return tokenResponse(pair), nil
}

// Refresh exchanges a refresh token for a new pair.
func (h *Auth) Refresh(ctx context.Context, req *rpc.RefreshRequest) (*rpc.TokenResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	accessToken, refreshToken, err := h.tokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return &rpc.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes a refresh token.
func (h *Auth) Logout(ctx context.Context, req *rpc.LogoutRequest) (*rpc.Empty, error) {
	h.logger.Debug("Auth handler: processing logout request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	if err := h.tokenService.RevokeByToken(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: logout successful")

	return &rpc.Empty{}, nil
}

func tokenResponse(pair model.TokenPair) *rpc.TokenResponse {
	return &rpc.TokenResponse{
		UserID:       pair.UserID.String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
