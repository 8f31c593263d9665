package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an inventory item. The name is the natural key: lookups and
// deletes address products by name, not by ID.
type Product struct {
	ID        uuid.UUID
	Name      string
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
