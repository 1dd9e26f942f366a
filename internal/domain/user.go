package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Email is stored lowercased and compared
// case-insensitively. The two ResetToken fields form the password-reset
// ticket: both are nil when no reset is outstanding, and a successful
// reset clears them in the same statement that rotates the password hash.
type User struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"not null"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	Headline            string     `json:"headline"`
	Bio                 string     `json:"bio"`
	Location            string     `json:"location"`
	ResetTokenHash      *string    `json:"-" gorm:"index"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
