// Package users implements the credential and session service: the single
// source of truth for admin identity, issuing and verifying bearer tokens
// without a third-party identity provider.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/auth"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
)

// AuthResult is the boundary shape for login/create-user outcomes: a
// success flag plus either data or a human-readable message, never an
// error for expected failure modes.
type AuthResult struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// VerifyResult is the outcome of a token check. Malformed, tampered and
// expired tokens all collapse into Success == false.
type VerifyResult struct {
	Success bool         `json:"success"`
	Claims  *auth.Claims `json:"user,omitempty"`
}

// NewUser carries the fields for explicit user creation.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	log           logging.Logger
}

// NewService wires the credential service. The configured token expiry
// string ("7d", "24h", ...) is parsed once here; an unparsable value is a
// startup error.
func NewService(repo Repository, cfg *config.Config, log logging.Logger) (*Service, error) {
	validity, err := auth.ParseExpiry(cfg.TokenExpiry)
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.TokenSecret),
		tokenValidity: validity,
		log:           log,
	}, nil
}

// BootstrapDefaultAdmin seeds the documented development admin account
// when the user store is empty. Idempotent: safe to call on every process
// start, and a concurrent seed racing us counts as success.
func (s *Service) BootstrapDefaultAdmin(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(common.DefaultAdminPassword, auth.DefaultHashRounds)
	if err != nil {
		return err
	}

	admin := &User{
		ID:           "admin_1",
		Username:     common.DefaultAdminUsername,
		Email:        common.DefaultAdminEmail,
		PasswordHash: hash,
		Role:         common.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if _, err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil
		}
		return err
	}

	s.log.Info(ctx, "default admin user created", "username", admin.Username)
	return nil
}

// Login authenticates by username or email (exact, case-sensitive match)
// and mints a session token. An unknown identifier and a wrong password
// produce the identical result, so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, identifier, password string) *AuthResult {
	// Make sure a fresh or degraded store always has the bootstrap admin.
	if err := s.BootstrapDefaultAdmin(ctx); err != nil {
		s.log.Error(ctx, "error initializing default admin", "error", err)
	}

	invalid := &AuthResult{Success: false, Message: "Invalid credentials"}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return invalid
		}
		s.log.Error(ctx, "login lookup failed", "error", err)
		return &AuthResult{Success: false, Message: "Login failed"}
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return invalid
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Email, user.Role, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.log.Error(ctx, "token generation failed", "error", err)
		return &AuthResult{Success: false, Message: "Login failed"}
	}

	pub := user.Redacted()
	return &AuthResult{Success: true, Token: token, User: &pub}
}

// VerifyToken checks a presented token. Pure computation, no I/O; it never
// returns an error, only a structured result.
func (s *Service) VerifyToken(token string) VerifyResult {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return VerifyResult{Success: false}
	}
	return VerifyResult{Success: true, Claims: claims}
}

// CreateUser hashes the password and appends a new account. Collisions on
// username or email surface as a result message, not an error.
func (s *Service) CreateUser(ctx context.Context, fields NewUser) *AuthResult {
	if fields.Username == "" || fields.Email == "" || fields.Password == "" {
		return &AuthResult{Success: false, Message: "Invalid user data"}
	}

	role := fields.Role
	if role == "" {
		role = common.RoleAdmin
	}

	hash, err := auth.HashPassword(fields.Password, auth.DefaultHashRounds)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return &AuthResult{Success: false, Message: "Failed to create user"}
	}

	user := &User{
		ID:           common.NewRecordID("user"),
		Username:     fields.Username,
		Email:        fields.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return &AuthResult{Success: false, Message: "User already exists"}
		}
		s.log.Error(ctx, "create user failed", "error", err)
		return &AuthResult{Success: false, Message: "Failed to create user"}
	}

	pub := user.Redacted()
	return &AuthResult{Success: true, User: &pub}
}

// GetAllUsers returns every account with the password hash redacted.
func (s *Service) GetAllUsers(ctx context.Context) ([]PublicUser, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PublicUser, 0, len(list))
	for i := range list {
		result = append(result, list[i].Redacted())
	}
	return result, nil
}
