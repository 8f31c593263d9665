// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered credential record. The password is never stored
// in plaintext; only the one-way bcrypt hash is persisted.
type Account struct {
	ID           uuid.UUID // Unique identifier, generated by the store.
	Email        string    // Login identifier, unique across the store.
	PasswordHash string    // One-way salted hash of the password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
