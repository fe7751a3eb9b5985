package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "invalid configuration keeps detail",
			in:       fmt.Errorf("generate: %w", fmt.Errorf("%w: no character pools enabled", model.ErrInvalidConfiguration)),
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid configuration: no character pools enabled",
		},
		{
			name:     "invalid argument",
			in:       fmt.Errorf("%w: title is required", model.ErrInvalidArgument),
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid argument: title is required",
		},
		{
			name:     "key unavailable",
			in:       fmt.Errorf("failed to encrypt password: %w", model.ErrKeyUnavailable),
			wantCode: codes.FailedPrecondition,
			wantMsg:  "encryption key is unavailable",
		},
		{
			name:     "decryption failed",
			in:       fmt.Errorf("failed to decrypt password: %w", model.ErrDecryptionFailed),
			wantCode: codes.DataLoss,
			wantMsg:  "stored credential could not be decrypted",
		},
		{
			name:     "unauthenticated",
			in:       model.ErrUnauthenticated,
			wantCode: codes.Unauthenticated,
			wantMsg:  "unauthenticated",
		},
		{
			name:     "invalid credentials",
			in:       model.ErrInvalidCredentials,
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid email or password",
		},
		{
			name:     "not found",
			in:       fmt.Errorf("failed to get credential by id: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "credential not found",
		},
		{
			name:     "email taken",
			in:       model.ErrEmailTaken,
			wantCode: codes.AlreadyExists,
			wantMsg:  "email is already registered",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
