// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"
	"testing"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"
	"prepai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock that asserts its expectations when the test ends.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.SignUpOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) SignInWithCredentials(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.SignInOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) BeginExternalSignIn(ctx context.Context) (*usecase.ExternalSignInStart, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*usecase.ExternalSignInStart)

	return out, args.Error(1)
}

func (m *MockUserUsecase) CompleteExternalSignIn(ctx context.Context, input *usecase.CompleteExternalSignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.SignInOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) GetSession(ctx context.Context, rawToken string) (*entity.Session, error) {
	args := m.Called(ctx, rawToken)
	session, _ := args.Get(0).(*entity.Session)

	return session, args.Error(1)
}

// MockContentUsecase is a mock of usecase.ContentUsecase.
type MockContentUsecase struct {
	mock.Mock
}

// NewMockContentUsecase creates a mock that asserts its expectations when the test ends.
func NewMockContentUsecase(t *testing.T) *MockContentUsecase {
	m := &MockContentUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockContentUsecase) ListProblems(ctx context.Context, filter repository.ProblemFilter) ([]*entity.DSAProblem, error) {
	args := m.Called(ctx, filter)
	problems, _ := args.Get(0).([]*entity.DSAProblem)

	return problems, args.Error(1)
}

func (m *MockContentUsecase) GetProblem(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error) {
	args := m.Called(ctx, id)
	problem, _ := args.Get(0).(*entity.DSAProblem)

	return problem, args.Error(1)
}

func (m *MockContentUsecase) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]*entity.InterviewQuestion, error) {
	args := m.Called(ctx, filter)
	questions, _ := args.Get(0).([]*entity.InterviewQuestion)

	return questions, args.Error(1)
}

// MockSeedUsecase is a mock of usecase.SeedUsecase.
type MockSeedUsecase struct {
	mock.Mock
}

// NewMockSeedUsecase creates a mock that asserts its expectations when the test ends.
func NewMockSeedUsecase(t *testing.T) *MockSeedUsecase {
	m := &MockSeedUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSeedUsecase) Seed(ctx context.Context) (*usecase.SeedReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*usecase.SeedReport)

	return report, args.Error(1)
}
