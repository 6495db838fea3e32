package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/storekit/backend/internal/domain/identity"
)

// CreateTenantRequest is the input for registering a store
type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateTenantRequest is the input for renaming a store
type UpdateTenantRequest struct {
	Name  string `json:"name" binding:"required"`
	Notes string `json:"notes"`
}

// TenantResponse is the API representation of a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTenantResponse converts a domain tenant to its API representation
func ToTenantResponse(tenant *identity.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Active:    tenant.Active,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

// RegisterUserRequest is the input for creating a user within a tenant
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain user to its API representation
func ToUserResponse(user *identity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email.String(),
		Name:        user.Name,
		Role:        string(user.Role),
		Active:      user.Active,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// LoginRequest is the input for authenticating a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}
