package impl

import (
	"context"

	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	problemRepo  repository.ProblemRepository
	questionRepo repository.QuestionRepository
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ProblemRepo  repository.ProblemRepository
	QuestionRepo repository.QuestionRepository
}

// NewContentService creates the read side of the practice content.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		problemRepo:  params.ProblemRepo,
		questionRepo: params.QuestionRepo,
	}
}

// ListProblems returns problems matching the filter.
func (srv *contentService) ListProblems(ctx context.Context, filter repository.ProblemFilter) ([]*entity.DSAProblem, error) {
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, domainerrors.NewValidationError("Unknown difficulty", []string{string(filter.Difficulty)})
	}
	filter.Limit = clampLimit(filter.Limit)
	filter.Offset = max(filter.Offset, 0)

	problems, err := srv.problemRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list problems")
	}

	return problems, nil
}

// GetProblem returns a single problem.
func (srv *contentService) GetProblem(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error) {
	problem, err := srv.problemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "problem not found")
		}

		return nil, errors.Wrap(err, "failed to find problem")
	}

	return problem, nil
}

// ListQuestions returns interview questions matching the filter.
func (srv *contentService) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]*entity.InterviewQuestion, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, domainerrors.NewValidationError("Unknown category", []string{string(filter.Category)})
	}
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, domainerrors.NewValidationError("Unknown difficulty", []string{string(filter.Difficulty)})
	}
	filter.Limit = clampLimit(filter.Limit)
	filter.Offset = max(filter.Offset, 0)

	questions, err := srv.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interview questions")
	}

	return questions, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}

	return min(limit, maxListLimit)
}
