package repository

import (
	"context"
	"time"

	"github.com/careernet/careernet/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.User, error)

	// SetResetTicket stores the hash of an outstanding reset token and its
	// expiry on the user row, replacing any previous ticket.
	SetResetTicket(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error

	// ConsumeResetTicket rotates the password hash and clears the ticket in
	// a single conditional update. It returns false when no row matched,
	// i.e. the ticket is unknown, expired, or already consumed.
	ConsumeResetTicket(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error)
}

type SkillRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Skill, error)
	AddToUser(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveFromUser(ctx context.Context, userID uuid.UUID, name string) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	GetByJobID(ctx context.Context, jobID uuid.UUID) ([]*domain.JobApplication, error)
	GetByApplicantID(ctx context.Context, applicantID uuid.UUID) ([]*domain.JobApplication, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*domain.JobApplication, error)
}

type Repositories struct {
	User        UserRepository
	Skill       SkillRepository
	Job         JobRepository
	Application ApplicationRepository
}
