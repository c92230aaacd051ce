package domain

import (
	"time"

	"github.com/google/uuid"
)

// Presensi is one attendance cycle for a user. CheckOut stays nil until the
// user closes the cycle; a nil CheckOut marks the record as active.
type Presensi struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	Nama      string     `json:"nama" db:"nama"`
	CheckIn   time.Time  `json:"checkIn" db:"check_in"`
	CheckOut  *time.Time `json:"checkOut" db:"check_out"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsOpen reports whether the record has not been checked out yet.
func (p *Presensi) IsOpen() bool {
	return p.CheckOut == nil
}
