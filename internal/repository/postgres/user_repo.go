package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/careernet/careernet/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "lower(email) = lower(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.User, error) {
	var users []*domain.User
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.WithContext(ctx).
		Where(
			r.db.Where("first_name ILIKE ?", pattern).
				Or("last_name ILIKE ?", pattern).
				Or("headline ILIKE ?", pattern).
				Or("id IN (?)", r.db.Model(&domain.UserSkill{}).
					Select("user_skills.user_id").
					Joins("JOIN skills ON skills.id = user_skills.skill_id").
					Where("skills.name ILIKE ?", pattern)),
		).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetResetTicket(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token_hash":       tokenHash,
			"reset_token_expires_at": expiresAt,
		}).Error
}

// ConsumeResetTicket repeats the validity predicate in the WHERE clause of
// the update itself, so checking and consuming the ticket is one statement.
// Two concurrent completions with the same token cannot both match: the
// first update clears reset_token_hash and the second affects zero rows.
func (r *userRepository) ConsumeResetTicket(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("reset_token_hash = ? AND reset_token_expires_at > ?", tokenHash, now).
		Updates(map[string]interface{}{
			"password_hash":          newPasswordHash,
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
