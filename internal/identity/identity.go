package identity

import (
	"github.com/storegate/console/pkg/enums"
)

// Identity is the profile record issued by the identity service.
type Identity struct {
	ID      int64      `json:"id"`
	Email   string     `json:"email"`
	Name    string     `json:"name"`
	Role    enums.Role `json:"role"`
	StoreID *int64     `json:"store_id,omitempty"`
}

// Valid reports whether the record is complete enough to act as a session
// identity.
func (i *Identity) Valid() bool {
	if i == nil {
		return false
	}
	return i.Email != "" && i.Role.IsValid()
}
