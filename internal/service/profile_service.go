package service

import (
	"context"
	"errors"
	"strings"

	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type ProfileService struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

func NewProfileService(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *ProfileService {
	return &ProfileService{
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

// ProfileResponse is the user record together with their skill names.
type ProfileResponse struct {
	User   *domain.User `json:"user"`
	Skills []string     `json:"skills"`
}

// UpdateProfileInput carries a partial update; nil fields are left as-is.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Headline  *string `json:"headline"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
}

// UserSummary is the public shape returned by search.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Headline  string    `json:"headline"`
	Location  string    `json:"location"`
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skills, err := s.skillNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{User: user, Skills: skills}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Headline != nil {
		user.Headline = strings.TrimSpace(*input.Headline)
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) AddSkill(ctx context.Context, userID uuid.UUID, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrSkillNameEmpty
	}

	skill, err := s.skillRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.skillRepo.AddToUser(ctx, userID, skill.ID); err != nil {
		return nil, err
	}

	return s.skillNames(ctx, userID)
}

func (s *ProfileService) RemoveSkill(ctx context.Context, userID uuid.UUID, name string) ([]string, error) {
	if err := s.skillRepo.RemoveFromUser(ctx, userID, name); err != nil {
		return nil, err
	}
	return s.skillNames(ctx, userID)
}

func (s *ProfileService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]*UserSummary, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]*UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, &UserSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Headline:  u.Headline,
			Location:  u.Location,
		})
	}
	return summaries, nil
}

func (s *ProfileService) skillNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	skills, err := s.skillRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names, nil
}
