package service

import "prepai/internal/domain/entity"

// SeedSource supplies the reference content loaded by the seed command.
type SeedSource interface {
	Problems() ([]*entity.DSAProblem, error)
	Questions() ([]*entity.InterviewQuestion, error)
}
