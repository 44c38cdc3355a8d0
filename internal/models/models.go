package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Credentials struct {
	UserID       uuid.UUID
	PasswordHash string
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Contact struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
}

// ContactUpdate is a partial update: nil fields keep their stored value.
type ContactUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Type  *string `json:"type"`
}
