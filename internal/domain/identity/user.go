package identity

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

// Role represents the role of a user within a tenant
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// Permission names used by the HTTP permission middleware
const (
	PermissionManageTenant    = "tenant:manage"
	PermissionManagePartners  = "partners:manage"
	PermissionManageProducts  = "products:manage"
	PermissionManageInventory = "inventory:manage"
	PermissionCreateSales     = "sales:create"
	PermissionViewReports     = "reports:view"
)

// rolePermissions maps each role to its granted permissions
var rolePermissions = map[Role][]string{
	RoleOwner: {
		PermissionManageTenant, PermissionManagePartners, PermissionManageProducts,
		PermissionManageInventory, PermissionCreateSales, PermissionViewReports,
	},
	RoleManager: {
		PermissionManagePartners, PermissionManageProducts,
		PermissionManageInventory, PermissionCreateSales, PermissionViewReports,
	},
	RoleCashier: {
		PermissionCreateSales,
	},
}

// User represents a store user who signs in and operates the system
type User struct {
	shared.TenantAggregateRoot
	Email        valueobject.Email `gorm:"type:varchar(200);not null;index"`
	Name         string            `gorm:"type:varchar(100);not null"`
	Role         Role              `gorm:"type:varchar(20);not null;default:'cashier'"`
	PasswordHash string            `gorm:"type:varchar(100);not null"`
	Active       bool              `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(tenantID uuid.UUID, email, name, password string, role Role) (*User, error) {
	addr, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Email:               addr,
		Name:                name,
		Role:                role,
		PasswordHash:        string(hash),
		Active:              true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// HasPermission returns true if the user's role grants the permission
func (u *User) HasPermission(permission string) bool {
	for _, p := range rolePermissions[u.Role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Permissions returns the full permission list for the user's role
func (u *User) Permissions() []string {
	return rolePermissions[u.Role]
}

// RoleHasPermission reports whether a role grants a permission. The HTTP
// permission middleware uses this, since it only sees token claims.
func RoleHasPermission(role Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func validateRole(role Role) error {
	switch role {
	case RoleOwner, RoleManager, RoleCashier:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Invalid user role")
	}
}
