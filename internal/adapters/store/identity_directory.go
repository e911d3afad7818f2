package store

import (
	"nbcfdc-lending/internal/core/domain"
)

// IdentityDirectory is a read-only registry of authenticatable identities.
// A database-backed implementation could replace the in-memory one without
// touching the services that depend on it.
type IdentityDirectory interface {
	GetByUsername(username string) (*domain.UserRecord, error)
}

// identityDirectory is the in-memory implementation, immutable after seeding
type identityDirectory struct {
	users map[string]*domain.UserRecord
}

// NewIdentityDirectory creates an identity directory over a seeded user map
func NewIdentityDirectory(users map[string]*domain.UserRecord) IdentityDirectory {
	return &identityDirectory{users: users}
}

// GetByUsername looks up a user record by username
func (d *identityDirectory) GetByUsername(username string) (*domain.UserRecord, error) {
	user, ok := d.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
