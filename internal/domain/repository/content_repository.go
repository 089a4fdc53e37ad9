package repository

import (
	"context"

	"prepai/internal/domain/entity"
	"prepai/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrContentNotFound is returned when a problem or question does not exist.
	ErrContentNotFound = errors.New("content not found")
	// ErrContentConflict is returned when a problem title or question text is already stored.
	ErrContentConflict = errors.New("content already exists")
)

// ProblemFilter narrows a problem listing. Zero values match everything.
type ProblemFilter struct {
	Difficulty entity.Difficulty
	Topic      string
	Limit      int
	Offset     int
}

// QuestionFilter narrows a question listing. Zero values match everything.
type QuestionFilter struct {
	Category   entity.QuestionCategory
	Role       string
	Difficulty entity.Difficulty
	Limit      int
	Offset     int
}

// ProblemRepository persists DSA problems.
type ProblemRepository interface {
	Create(ctx context.Context, problem *entity.DSAProblem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error)
	FindByTitle(ctx context.Context, title string) (*entity.DSAProblem, error)
	List(ctx context.Context, filter ProblemFilter) ([]*entity.DSAProblem, error)
}

// QuestionRepository persists interview questions.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.InterviewQuestion) error
	FindByQuestion(ctx context.Context, question string) (*entity.InterviewQuestion, error)
	List(ctx context.Context, filter QuestionFilter) ([]*entity.InterviewQuestion, error)
}
