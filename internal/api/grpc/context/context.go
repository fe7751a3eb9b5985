// Package context resolves the authenticated principal of a gRPC request.
package context

import (
	"context"

	"github.com/google/uuid"
)

// principalKey is unexported so only the authentication middleware can set
// the principal. Client metadata never reaches it.
type principalKey struct{}

// Manager stores and reads the principal of a request context.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a copy of ctx carrying userID as the principal.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, principalKey{}, userID)
}

// GetUserIDFromContext returns the principal, or false when the request was
// not authenticated.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(principalKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
