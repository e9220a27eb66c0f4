package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"
	"mycloth-atelier/internal/pkg/jwt"
	"mycloth-atelier/internal/pkg/password"
)

// Built-in admin record used in local mode when an allow-listed email
// logs in without a stored account.
const (
	localAdminID   = "admin-001"
	localAdminName = "MyCloth Director"
)

// AuthService handles login, signup, logout and the session cache.
// Remote mode verifies credentials and issues bearer tokens; local mode
// trusts any password for a known identity.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	state     *localstore.ClientState
	cfg       *config.Config
}

// NewAuthService creates a new auth service. tokenRepo is nil in local
// storage mode where logout revokes nothing server-side.
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	state *localstore.ClientState,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		state:     state,
		cfg:       cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput represents signup input
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login authenticates an identity and caches the session
func (s *AuthService) Login(ctx context.Context, sessionID string, input *LoginInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	var user domain.User
	if s.cfg.StorageMode == config.StorageRemote {
		// 1. Look up the account and verify the password
		account, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrCredentialsNotRecognized
			}
			return nil, err
		}
		if !password.Verify(input.Password, account.PasswordHash) {
			return nil, domain.ErrCredentialsNotRecognized
		}
		user = account.User
	} else {
		// 1. Local mode accepts any password for a known identity
		account, err := s.userRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			user = account.User
		case errors.Is(err, domain.ErrUserNotFound) && s.cfg.IsAdminEmail(email):
			// Allow-listed emails always get the built-in admin record
			user = domain.User{
				ID:    localAdminID,
				Name:  localAdminName,
				Email: email,
			}
		case errors.Is(err, domain.ErrUserNotFound):
			return nil, domain.ErrCredentialsNotRecognized
		default:
			return nil, err
		}
	}

	// 2. Allow-listed emails are admins no matter what is stored
	if s.cfg.IsAdminEmail(user.Email) {
		user.Role = domain.RoleAdmin
	} else if user.Role == "" {
		user.Role = domain.RoleUser
	}

	// 3. Issue a token
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	user.Token = token

	// 4. Cache the session so it survives restarts
	if err := s.state.SaveSession(sessionID, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Login: %s [%s]", user.Email, user.Role)
	return &user, nil
}

// Signup registers a new identity and caches the session
func (s *AuthService) Signup(ctx context.Context, sessionID string, input *SignupInput) (*domain.User, error) {
	// 1. Validate input
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if s.cfg.StorageMode == config.StorageRemote && !password.ValidatePassword(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	// 2. Duplicate email check
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrIdentityArchived
	}

	// 3. Build the account; local mode stores no credential
	account := domain.Account{
		User: domain.User{
			Name:  name,
			Email: email,
			Role:  domain.RoleUser,
		},
	}
	if s.cfg.IsAdminEmail(email) {
		account.Role = domain.RoleAdmin
	}
	if s.cfg.StorageMode == config.StorageRemote {
		hash, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	if err := s.userRepo.Create(ctx, &account); err != nil {
		return nil, err
	}

	// 4. Issue a token and cache the session
	user := account.User
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	user.Token = token

	if err := s.state.SaveSession(sessionID, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Signup: %s [%s]", user.Email, user.Role)
	return &user, nil
}

// Logout clears the cached session. Remote mode also tombstones the
// bearer token; local mode revokes nothing server-side.
func (s *AuthService) Logout(ctx context.Context, sessionID, token string) error {
	if s.cfg.StorageMode == config.StorageRemote && s.tokenRepo != nil && token != "" {
		claims, err := jwt.ValidateAccessToken(token, s.cfg.JWT.Secret)
		if err == nil {
			hash := password.HashToken(token)
			if err := s.tokenRepo.Revoke(ctx, hash, claims.ExpiresAt.Unix()); err != nil {
				return err
			}
		}
	}

	return s.state.ClearSession(sessionID)
}

// Me returns the cached session user, if any
func (s *AuthService) Me(ctx context.Context, sessionID string) (*domain.User, error) {
	user, err := s.state.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// IsTokenRevoked checks the logout tombstones (remote mode only)
func (s *AuthService) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	if s.tokenRepo == nil {
		return false, nil
	}
	return s.tokenRepo.IsRevoked(ctx, password.HashToken(token))
}

// issueToken returns a signed JWT in remote mode and an opaque marker
// in local mode where no verification ever happens.
func (s *AuthService) issueToken(user domain.User) (string, error) {
	if s.cfg.StorageMode == config.StorageRemote {
		return jwt.GenerateAccessToken(user.ID, user.Email, string(user.Role), s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	}
	return "local-" + ids.NewLocalID(), nil
}
