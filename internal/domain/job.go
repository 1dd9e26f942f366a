package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Job struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostedBy    uuid.UUID      `json:"postedBy" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Company     string         `json:"company" gorm:"not null"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Tags        datatypes.JSON `json:"tags"`
	Active      bool           `json:"active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// JobApplication rows are persisted, never held in process memory; the
// unique (job_id, applicant_id) index enforces one application per user
// per posting.
type JobApplication struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	JobID       uuid.UUID `json:"jobId" gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant"`
	ApplicantID uuid.UUID `json:"applicantId" gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant"`
	CoverNote   string    `json:"coverNote"`
	CreatedAt   time.Time `json:"createdAt"`
}
