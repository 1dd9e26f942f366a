package postgres

import (
	"context"

	"github.com/careernet/careernet/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) ([]*domain.JobApplication, error) {
	var applications []*domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetByApplicantID(ctx context.Context, applicantID uuid.UUID) ([]*domain.JobApplication, error) {
	var applications []*domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*domain.JobApplication, error) {
	var application domain.JobApplication
	err := r.db.WithContext(ctx).
		First(&application, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}
