package usecase

import "errors"

var (
	ErrInternal       = errors.New("internal error")
	ErrInvalidInput   = errors.New("invalid input")
	ErrCourseNotFound = errors.New("course not found")
	ErrCloNotFound    = errors.New("clo not found")
	ErrCloHasNoSkill  = errors.New("clo has no linked skill")
	ErrSkillNotFound  = errors.New("skill not found")
)
