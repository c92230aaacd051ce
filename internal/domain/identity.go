package domain

import "github.com/google/uuid"

// Identity is the verified caller extracted by the auth middleware.
type Identity struct {
	UserID uuid.UUID
	Nama   string
	Role   string
}
