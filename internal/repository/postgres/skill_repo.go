package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/careernet/careernet/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *skillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetOrCreate(ctx context.Context, name string) (*domain.Skill, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var skill domain.Skill
	err := r.db.WithContext(ctx).First(&skill, "name = ?", name).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill = domain.Skill{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) AddToUser(ctx context.Context, userID, skillID uuid.UUID) error {
	link := domain.UserSkill{ID: uuid.New(), UserID: userID, SkillID: skillID}
	// Re-adding an existing skill is a no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func (r *skillRepository) RemoveFromUser(ctx context.Context, userID uuid.UUID, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))

	var skill domain.Skill
	err := r.db.WithContext(ctx).First(&skill, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSkillNotFound
		}
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&domain.UserSkill{}, "user_id = ? AND skill_id = ?", userID, skill.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *skillRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Skill, error) {
	var skills []*domain.Skill
	err := r.db.WithContext(ctx).
		Joins("JOIN user_skills ON user_skills.skill_id = skills.id").
		Where("user_skills.user_id = ?", userID).
		Order("skills.name").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
