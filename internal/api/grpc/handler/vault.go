package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// VaultService defines business operations for saved credentials.
type VaultService interface {
	Save(ctx context.Context, userID uuid.UUID, params model.SaveCredentialParams) (model.CredentialRecord, error)
	Update(ctx context.Context, userID, id uuid.UUID, params model.SaveCredentialParams) (model.CredentialRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter model.CredentialFilter) ([]model.CredentialRecord, error)
	Get(ctx context.Context, userID, id uuid.UUID) (model.CredentialRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Vault handles gRPC endpoints for the credential vault.
type Vault struct {
	vaultService   VaultService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewVault creates a new Vault handler.
func NewVault(vaultService VaultService, contextManager model.ContextManager, logger *logger.Logger) *Vault {
	return &Vault{
		vaultService:   vaultService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Save stores a new credential.
func (h *Vault) Save(ctx context.Context, req *rpc.SaveRequest) (*rpc.CredentialResponse, error) {
	h.logger.Debug("Vault handler: processing save request",
		"title", req.Title,
		"category", req.Category)

	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	record, err := h.vaultService.Save(ctx, userID, saveParams(req))
	if err != nil {
		h.logger.Error("Vault handler: save failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Vault handler: credential saved",
		"user_id", userID,
		"credential_id", record.ID)

	return &rpc.CredentialResponse{Credential: convertRecord(record)}, nil
}

// Update re-saves an existing credential.
func (h *Vault) Update(ctx context.Context, req *rpc.UpdateRequest) (*rpc.CredentialResponse, error) {
	h.logger.Debug("Vault handler: processing update request",
		"credential_id", req.ID)

	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid credential ID")
	}

	record, err := h.vaultService.Update(ctx, userID, id, saveParams(&req.SaveRequest))
	if err != nil {
		h.logger.Error("Vault handler: update failed",
			"user_id", userID,
			"credential_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Vault handler: credential updated",
		"user_id", userID,
		"credential_id", id)

	return &rpc.CredentialResponse{Credential: convertRecord(record)}, nil
}

// List returns credential metadata with optional category and search filters.
func (h *Vault) List(ctx context.Context, req *rpc.ListRequest) (*rpc.ListResponse, error) {
	h.logger.Debug("Vault handler: processing list request",
		"category", req.Category)

	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	records, err := h.vaultService.List(ctx, userID, model.CredentialFilter{
		Category: req.Category,
		Query:    req.Query,
	})
	if err != nil {
		h.logger.Error("Vault handler: list failed",
			"user_id", userID,
			"category", req.Category,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &rpc.ListResponse{Credentials: make([]rpc.Credential, 0, len(records))}
	for _, record := range records {
		resp.Credentials = append(resp.Credentials, convertRecord(record))
	}

	h.logger.Info("Vault handler: credentials listed",
		"user_id", userID,
		"category", req.Category,
		"count", len(records))

	return resp, nil
}

// Get returns a credential with its password decrypted.
func (h *Vault) Get(ctx context.Context, req *rpc.GetRequest) (*rpc.CredentialResponse, error) {
	h.logger.Debug("Vault handler: processing get request",
		"credential_id", req.ID)

	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid credential ID")
	}

	record, err := h.vaultService.Get(ctx, userID, id)
	if err != nil {
		h.logger.Error("Vault handler: get failed",
			"user_id", userID,
			"credential_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &rpc.CredentialResponse{Credential: convertRecord(record)}, nil
}

// Delete removes a credential.
func (h *Vault) Delete(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	h.logger.Debug("Vault handler: processing delete request",
		"credential_id", req.ID)

	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid credential ID")
	}

	if err := h.vaultService.Delete(ctx, userID, id); err != nil {
		h.logger.Error("Vault handler: delete failed",
			"user_id", userID,
			"credential_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Vault handler: credential deleted",
		"user_id", userID,
		"credential_id", id)

	return &rpc.Empty{}, nil
}

func (h *Vault) extractUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

func saveParams(req *rpc.SaveRequest) model.SaveCredentialParams {
	return model.SaveCredentialParams{
		Title:    req.Title,
		Username: req.Username,
		Password: req.Password,
		Notes:    req.Notes,
		Category: req.Category,
	}
}

func convertRecord(record model.CredentialRecord) rpc.Credential {
	return rpc.Credential{
		ID:          record.ID.String(),
		Title:       record.Title,
		Username:    record.Username,
		Password:    record.Password,
		Notes:       record.Notes,
		Category:    record.Category,
		CreatedAt:   record.CreatedAt.Unix(),
		LastUpdated: record.LastUpdated.Unix(),
	}
}
