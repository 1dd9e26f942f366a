package domain

import "errors"

// Job errors
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrJobInactive    = errors.New("job is no longer active")
	ErrNotJobOwner    = errors.New("only the job owner can perform this action")
	ErrAlreadyApplied = errors.New("user has already applied to this job")
)

// Skill errors
var (
	ErrSkillNameEmpty = errors.New("skill name must not be empty")
	ErrSkillNotFound  = errors.New("skill not found")
)
