package impl

import (
	"context"
	"testing"

	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	mockRepo "prepai/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_ListProblems_AppliesDefaultLimit(t *testing.T) {
	problems := mockRepo.NewMockProblemRepository(t)
	srv := NewContentService(ContentServiceParams{ProblemRepo: problems})
	ctx := context.Background()
	want := []*entity.DSAProblem{{Title: "Two Sum"}}

	problems.On("List", ctx, repository.ProblemFilter{Difficulty: entity.DifficultyEasy, Limit: defaultListLimit}).Return(want, nil)

	got, err := srv.ListProblems(ctx, repository.ProblemFilter{Difficulty: entity.DifficultyEasy, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContentService_ListProblems_RejectsUnknownDifficulty(t *testing.T) {
	srv := NewContentService(ContentServiceParams{ProblemRepo: mockRepo.NewMockProblemRepository(t)})

	_, err := srv.ListProblems(context.Background(), repository.ProblemFilter{Difficulty: "Impossible"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestContentService_GetProblem_NotFound(t *testing.T) {
	problems := mockRepo.NewMockProblemRepository(t)
	srv := NewContentService(ContentServiceParams{ProblemRepo: problems})
	ctx := context.Background()
	id := uuid.New()

	problems.On("FindByID", ctx, id).Return(nil, repository.ErrContentNotFound)

	_, err := srv.GetProblem(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestContentService_ListQuestions_ClampsLimit(t *testing.T) {
	questions := mockRepo.NewMockQuestionRepository(t)
	srv := NewContentService(ContentServiceParams{QuestionRepo: questions})
	ctx := context.Background()
	filter := repository.QuestionFilter{Category: entity.CategoryBehavioral, Role: "SDE", Limit: 1000}

	questions.On("List", ctx, repository.QuestionFilter{Category: entity.CategoryBehavioral, Role: "SDE", Limit: maxListLimit}).
		Return([]*entity.InterviewQuestion{}, nil)

	got, err := srv.ListQuestions(ctx, filter)

	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = srv.ListQuestions(ctx, repository.QuestionFilter{Category: "trivia"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
