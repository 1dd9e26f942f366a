package domain

import (
	"time"

	"github.com/google/uuid"
)

// Skill names are normalized to lowercase before storage so "Go" and "go"
// share one row.
type Skill struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserSkill struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
	SkillID   uuid.UUID `json:"skillId" gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
	CreatedAt time.Time `json:"createdAt"`
}
