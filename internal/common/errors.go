// Package common defines shared constants, sentinel errors and small
// helpers used across FolioVault components. Callers should use errors.Is
// to match the sentinel values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Token errors. Both wrap ErrorUnauthorized: a malformed and an
	// expired token are the same recoverable outcome to a caller that
	// only needs the category.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrorUnauthorized)
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrorUnauthorized)
)
