package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/storekit/backend/internal/domain/shared"
)

// subdomainPattern is the only shape a store subdomain may take.
// Validated at creation time only; uniqueness is enforced by the
// persistence layer's unique index, not here.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Tenant represents an isolated store/account identified by a unique
// subdomain. It is the aggregate root for tenant-related operations.
type Tenant struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(200);not null"`
	Subdomain string `gorm:"type:varchar(63);not null;uniqueIndex"`
	Active    bool   `gorm:"not null;default:true"`
	Notes     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new active tenant with a validated subdomain
func NewTenant(name, subdomain string) (*Tenant, error) {
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if err := ValidateSubdomain(subdomain); err != nil {
		return nil, err
	}

	tenant := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Subdomain:         subdomain,
		Active:            true,
	}

	tenant.AddDomainEvent(NewTenantCreatedEvent(tenant))

	return tenant, nil
}

// Update updates the tenant's display name. The subdomain is immutable
// after creation; activation is handled by Activate/Deactivate.
func (t *Tenant) Update(name string) error {
	if err := validateTenantName(name); err != nil {
		return err
	}

	t.Name = name
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantUpdatedEvent(t))

	return nil
}

// Activate marks the tenant active. Activating an already-active tenant
// is a no-op that still bumps the version; no event is emitted unless
// the flag actually flips.
func (t *Tenant) Activate() {
	wasActive := t.Active
	t.Active = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	if !wasActive {
		t.AddDomainEvent(NewTenantActivatedEvent(t))
	}
}

// Deactivate marks the tenant inactive. Idempotent, same as Activate.
func (t *Tenant) Deactivate() {
	wasActive := t.Active
	t.Active = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	if wasActive {
		t.AddDomainEvent(NewTenantDeactivatedEvent(t))
	}
}

// IsActive returns true if the tenant is active
func (t *Tenant) IsActive() bool {
	return t.Active
}

// ValidateSubdomain checks that a subdomain is non-empty, lowercase,
// and contains only letters, digits, and hyphens
func ValidateSubdomain(subdomain string) error {
	if subdomain == "" {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain cannot be empty")
	}
	if len(subdomain) > 63 {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain cannot exceed 63 characters")
	}
	if !subdomainPattern.MatchString(subdomain) {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain can only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}

// NormalizeSubdomain lowercases and trims a candidate subdomain so that
// user input like "Acme-Store " can be offered back as "acme-store"
func NormalizeSubdomain(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func validateTenantName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}
