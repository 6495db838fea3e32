package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// TokenClaims is what a verified access token asserts about its bearer
type TokenClaims struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     string
}

// TokenManager issues and verifies access tokens
type TokenManager interface {
	Generate(user *identity.User) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}

// TokenBlacklist revokes tokens ahead of their natural expiry
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService handles login, logout, and user registration
type AuthService struct {
	userRepo  identity.UserRepository
	tokens    TokenManager
	blacklist TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenManager, blacklist TokenBlacklist) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// Login verifies credentials and issues a token scoped to the tenant
func (s *AuthService) Login(ctx context.Context, tenantID uuid.UUID, req LoginRequest) (*LoginResponse, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, tenantID, email.String())
	if err != nil {
		// Same error for unknown user and bad password
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.Active {
		return nil, shared.NewDomainError("USER_INACTIVE", "Account is disabled")
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}

// Logout revokes the presented token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.tokens.Verify(token); err != nil {
		return shared.NewDomainError("INVALID_TOKEN", "Token is not valid")
	}

	// Hold the revocation slightly past the token's own lifetime
	return s.blacklist.Revoke(ctx, token, time.Now().Add(25*time.Hour))
}

// Verify checks a token's signature and revocation status
func (s *AuthService) Verify(ctx context.Context, token string) (*TokenClaims, error) {
	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Token is not valid")
	}
	return claims, nil
}

// Register creates a user within a tenant
func (s *AuthService) Register(ctx context.Context, tenantID uuid.UUID, req RegisterUserRequest) (*UserResponse, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByEmail(ctx, tenantID, email.String()); err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.CodeDuplicateEmail, "User with this email already exists")
	}

	user, err := identity.NewUser(tenantID, req.Email, req.Name, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}
