package service

import (
	"github.com/careernet/careernet/internal/config"
	"github.com/careernet/careernet/internal/logger"
	"github.com/careernet/careernet/internal/mailer"
	"github.com/careernet/careernet/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Job     *JobService
}

func NewServices(repos *repository.Repositories, m mailer.Mailer, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, m, cfg, logger.New("auth")),
		Profile: NewProfileService(repos.User, repos.Skill),
		Job:     NewJobService(repos.Job, repos.Application),
	}
}
