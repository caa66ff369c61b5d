// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity entity of the system. It owns tasks and is the
// subject of every issued access token.
type User struct {
	ID           int64     // Auto-incremented numeric identifier, immutable once assigned.
	Email        string    // Unique login/contact email, matched case-sensitively as stored.
	Username     string    // Unique handle, 3-50 chars of [A-Za-z0-9_-].
	FullName     string    // Optional display name.
	PasswordHash string    // Opaque bcrypt digest. Never serialized outward.
	IsActive     bool      // Inactive users cannot authenticate or resolve from tokens.
	IsSuperuser  bool      // Stored and exposed, but never consulted by the identity resolver.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
