package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrJobTitleRequired = errors.New("job title and company are required")

type JobService struct {
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
}

func NewJobService(jobRepo repository.JobRepository, applicationRepo repository.ApplicationRepository) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

type CreateJobInput struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type UpdateJobInput struct {
	Title       *string   `json:"title"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Active      *bool     `json:"active"`
}

func (s *JobService) CreateJob(ctx context.Context, userID uuid.UUID, input CreateJobInput) (*domain.Job, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Company) == "" {
		return nil, ErrJobTitleRequired
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:          uuid.New(),
		PostedBy:    userID,
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Location:    strings.TrimSpace(input.Location),
		Description: input.Description,
		Tags:        datatypes.JSON(tagsJSON),
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, limit, offset int) ([]*domain.Job, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobRepo.List(ctx, limit, offset)
}

func (s *JobService) UpdateJob(ctx context.Context, jobID, userID uuid.UUID, input UpdateJobInput) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != userID {
		return nil, domain.ErrNotJobOwner
	}

	if input.Title != nil {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Company != nil {
		job.Company = strings.TrimSpace(*input.Company)
	}
	if input.Location != nil {
		job.Location = strings.TrimSpace(*input.Location)
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Tags != nil {
		tagsJSON, err := json.Marshal(*input.Tags)
		if err != nil {
			return nil, err
		}
		job.Tags = datatypes.JSON(tagsJSON)
	}
	if input.Active != nil {
		job.Active = *input.Active
	}
	job.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, jobID, userID uuid.UUID) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedBy != userID {
		return domain.ErrNotJobOwner
	}
	return s.jobRepo.Delete(ctx, jobID)
}

func (s *JobService) Apply(ctx context.Context, jobID, applicantID uuid.UUID, coverNote string) (*domain.JobApplication, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Active {
		return nil, domain.ErrJobInactive
	}

	existing, err := s.applicationRepo.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err == nil && existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	application := &domain.JobApplication{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverNote:   coverNote,
		CreatedAt:   time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// ListJobApplications returns applications for a posting; only its owner
// may see them.
func (s *JobService) ListJobApplications(ctx context.Context, jobID, requesterID uuid.UUID) ([]*domain.JobApplication, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != requesterID {
		return nil, domain.ErrNotJobOwner
	}
	return s.applicationRepo.GetByJobID(ctx, jobID)
}

func (s *JobService) ListUserApplications(ctx context.Context, userID uuid.UUID) ([]*domain.JobApplication, error) {
	return s.applicationRepo.GetByApplicantID(ctx, userID)
}
