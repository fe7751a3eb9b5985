package handler

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/model"
)

// handleError maps domain errors to gRPC statuses. Messages of unexpected
// errors are not sent to the client.
func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidConfiguration), errors.Is(err, model.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, clientMessage(err))
	case errors.Is(err, model.ErrKeyUnavailable):
		return status.Error(codes.FailedPrecondition, "encryption key is unavailable")
	case errors.Is(err, model.ErrEncryptionFailed):
		return status.Error(codes.Internal, "encryption failed")
	case errors.Is(err, model.ErrDecryptionFailed):
		return status.Error(codes.DataLoss, "stored credential could not be decrypted")
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, model.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "credential not found")
	case errors.Is(err, model.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, "email is already registered")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// clientMessage strips wrapping context added above the sentinel so that
// only the validation detail reaches the client.
func clientMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{model.ErrInvalidArgument, model.ErrInvalidConfiguration} {
		if i := strings.Index(msg, sentinel.Error()); i >= 0 {
			return msg[i:]
		}
	}
	return msg
}
