package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/storegate/console/internal/identity"
	"github.com/storegate/console/pkg/enums"
)

// The offline fallback keeps the console demonstrable without a live
// identity service. Tokens it issues carry a fixed prefix so they can
// never be mistaken for a real issued token.
const (
	MockTokenPrefix = "mock-token-"

	adminDemoEmail = "admin@demo.com"
	adminDemoName  = "Admin User"
	demoUserName   = "Demo User"
	demoStoreID    = int64(1)
)

// IsMockToken reports whether token was issued by the offline fallback.
func IsMockToken(token string) bool {
	return strings.HasPrefix(token, MockTokenPrefix)
}

func newMockToken() string {
	return MockTokenPrefix + uuid.NewString()
}

// offlineLoginIdentity synthesizes the local login identity. The admin
// sentinel is a case-sensitive exact match.
func (m *Manager) offlineLoginIdentity(email string) (*identity.Identity, string) {
	user := &identity.Identity{
		ID:    1,
		Email: email,
		Name:  demoUserName,
		Role:  enums.RoleUser,
	}
	if email == adminDemoEmail {
		user.Name = adminDemoName
		user.Role = enums.RoleAdmin
	} else {
		storeID := demoStoreID
		user.StoreID = &storeID
	}
	return user, newMockToken()
}

// offlineRegisterIdentity synthesizes a local registration; role is
// always user.
func (m *Manager) offlineRegisterIdentity(email, name string) (*identity.Identity, string) {
	storeID := demoStoreID
	return &identity.Identity{
		ID:      m.now().UnixMilli(),
		Email:   email,
		Name:    name,
		Role:    enums.RoleUser,
		StoreID: &storeID,
	}, newMockToken()
}
