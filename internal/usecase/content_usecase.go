package usecase

import (
	"context"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"

	"github.com/google/uuid"
)

// SeedReport counts what a seed run inserted and what it found already present.
type SeedReport struct {
	ProblemsCreated  int
	ProblemsSkipped  int
	QuestionsCreated int
	QuestionsSkipped int
}

// SeedUsecase loads the reference dataset into storage.
type SeedUsecase interface {
	Seed(ctx context.Context) (*SeedReport, error)
}

// ContentUsecase is the read side of the seeded practice content.
type ContentUsecase interface {
	ListProblems(ctx context.Context, filter repository.ProblemFilter) ([]*entity.DSAProblem, error)
	GetProblem(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error)
	ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]*entity.InterviewQuestion, error)
}
