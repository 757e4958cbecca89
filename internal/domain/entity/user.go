// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// The password hash is intentionally not part of this entity; it lives on the
// Credential record so it can never travel with user data by accident.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's email, unique across all users, used as the login identifier.
	Name      string    // The user's display name.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
