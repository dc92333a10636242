package users

import "context"

// Repository is the persistence contract for admin accounts. Backends:
// the encrypted users file (default), an in-memory store for tests, and
// PostgreSQL when a DSN is configured.
type Repository interface {
	// Create appends a fully-populated user. It returns
	// common.ErrorAlreadyExists when the username or email collides with
	// an existing record (case-sensitive).
	Create(ctx context.Context, user *User) (*User, error)

	// FindByIdentifier looks a user up by exact username OR email match.
	// Returns common.ErrorNotFound when nothing matches.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)

	// Count reports the number of stored users.
	Count(ctx context.Context) (int, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]User, error)
}
