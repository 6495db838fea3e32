package valueobject

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"

	"github.com/storekit/backend/internal/domain/shared"
)

// emailPattern requires a local part, a domain, and a TLD of at least
// two letters. Deliberately simple: the mail provider is the final
// arbiter of deliverability.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is a value object for a validated, normalized email address.
// The stored value is always lowercase.
type Email struct {
	value string
}

// NewEmail creates a validated Email from a raw string.
// Fails with INVALID_EMAIL_FORMAT when the shape is wrong.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" || !emailPattern.MatchString(normalized) {
		return Email{}, shared.NewDomainError(shared.CodeInvalidEmailFormat, fmt.Sprintf("Invalid email format: %s", raw))
	}
	return Email{value: normalized}, nil
}

// MustNewEmail creates an Email and panics on error. Test helper.
func MustNewEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the normalized address
func (e Email) String() string {
	return e.value
}

// IsZero returns true when no address is set
func (e Email) IsZero() bool {
	return e.value == ""
}

// Domain returns the part after the @
func (e Email) Domain() string {
	if idx := strings.LastIndex(e.value, "@"); idx >= 0 {
		return e.value[idx+1:]
	}
	return ""
}

// Equals compares two emails by normalized value
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// MarshalJSON implements json.Marshaler
func (e Email) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler with validation
func (e *Email) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*e = Email{}
		return nil
	}
	parsed, err := NewEmail(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Value implements driver.Valuer for database storage
func (e Email) Value() (driver.Value, error) {
	return e.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (e *Email) Scan(value any) error {
	if value == nil {
		e.value = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		e.value = strings.ToLower(v)
	case []byte:
		e.value = strings.ToLower(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Email", value)
	}
	return nil
}
