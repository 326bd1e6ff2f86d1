package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

// ContactMessage is an inbound contact form submission. Content fields are
// immutable once stored; only the read flag may be flipped afterwards.
type ContactMessage struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name    string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email   string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject string    `json:"subject" db:"subject" gorm:"type:text"`
	Message string    `json:"message" db:"message" gorm:"type:text"`
	IsRead  bool      `json:"is_read" db:"is_read" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
}

// Validate enforces the contact form invariants. Name and email must be
// present; the failure carries the offending field for form redisplay.
func (m ContactMessage) Validate() error {
	if m.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if m.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	return nil
}
