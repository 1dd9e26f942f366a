package postgres

import (
	"github.com/careernet/careernet/internal/domain"
	"github.com/careernet/careernet/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Skill{},
		&domain.UserSkill{},
		&domain.Job{},
		&domain.JobApplication{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Skill:       NewSkillRepository(db),
		Job:         NewJobRepository(db),
		Application: NewApplicationRepository(db),
	}
}
