package certificate

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certificate is a compliance document held by a user, optionally expiring.
type Certificate struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	issuedAt  time.Time
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func New(userID uuid.UUID, name string, issuedAt time.Time, expiresAt *time.Time) Certificate {
	return Certificate{
		userID:    userID,
		name:      strings.TrimSpace(name),
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
	}
}

func Hydrate(
	id uuid.UUID,
	userID uuid.UUID,
	name string,
	issuedAt time.Time,
	expiresAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) Certificate {
	return Certificate{
		id:        id,
		userID:    userID,
		name:      strings.TrimSpace(name),
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c Certificate) ID() uuid.UUID         { return c.id }
func (c Certificate) UserID() uuid.UUID     { return c.userID }
func (c Certificate) Name() string          { return c.name }
func (c Certificate) IssuedAt() time.Time   { return c.issuedAt }
func (c Certificate) ExpiresAt() *time.Time { return c.expiresAt }
func (c Certificate) CreatedAt() time.Time  { return c.createdAt }
func (c Certificate) UpdatedAt() time.Time  { return c.updatedAt }

// ExpiresWithin reports whether the certificate expires inside the window
// starting now. Certificates without an expiry never expire.
func (c Certificate) ExpiresWithin(now time.Time, window time.Duration) bool {
	if c.expiresAt == nil {
		return false
	}
	return c.expiresAt.After(now) && c.expiresAt.Before(now.Add(window))
}

func (c Certificate) Expired(now time.Time) bool {
	return c.expiresAt != nil && !c.expiresAt.After(now)
}
