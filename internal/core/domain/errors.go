package domain

import "errors"

var ErrEmailExists = errors.New("user with this email already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Token verification failures. The API layer surfaces both as a generic
// unauthorized response; the distinction exists for logs and tests only.
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")

// ErrCorruptCredential means a stored password digest could not be parsed.
// It should never happen for digests we produced ourselves.
var ErrCorruptCredential = errors.New("corrupt password digest")

// ErrTooManyAttempts is returned when the login throttle trips.
var ErrTooManyAttempts = errors.New("too many login attempts")
