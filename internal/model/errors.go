package model

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when an operation has no resolved principal.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidConfiguration is returned for unusable generator options.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidArgument is returned for malformed request fields.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrKeyUnavailable is returned by the cipher when no valid key is configured.
	ErrKeyUnavailable = errors.New("encryption key unavailable")
	// ErrEncryptionFailed is returned when a plaintext could not be sealed.
	ErrEncryptionFailed = errors.New("encryption failed")
	// ErrDecryptionFailed is returned when a stored entry cannot be recovered.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email is already taken")
	// ErrInvalidCredentials is returned on login with unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")
)
