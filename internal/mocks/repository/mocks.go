// Package repository provides testify mocks of the repository interfaces.
package repository

import (
	"context"
	"testing"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs the transaction body directly against Factory and counts the runs.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

// NewMockTransactionManager returns a manager that hands factory to every transaction body.
func NewMockTransactionManager(factory repository.RepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{Factory: factory}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}

// MockRepositoryFactory returns fixed repositories.
type MockRepositoryFactory struct {
	Users     repository.UserRepository
	Auths     repository.AuthRepository
	Problems  repository.ProblemRepository
	Questions repository.QuestionRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository         { return f.Users }
func (f *MockRepositoryFactory) AuthRepo() repository.AuthRepository         { return f.Auths }
func (f *MockRepositoryFactory) ProblemRepo() repository.ProblemRepository   { return f.Problems }
func (f *MockRepositoryFactory) QuestionRepo() repository.QuestionRepository { return f.Questions }

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations when the test ends.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindRoleByEmail(ctx context.Context, email string) (entity.Role, error) {
	args := m.Called(ctx, email)
	role, _ := args.Get(0).(entity.Role)

	return role, args.Error(1)
}

// MockAuthRepository is a mock of repository.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

// NewMockAuthRepository creates a mock that asserts its expectations when the test ends.
func NewMockAuthRepository(t *testing.T) *MockAuthRepository {
	m := &MockAuthRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	return m.Called(ctx, auth).Error(0)
}

func (m *MockAuthRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	args := m.Called(ctx, provider, providerUserID)
	auth, _ := args.Get(0).(*entity.Authentication)

	return auth, args.Error(1)
}

func (m *MockAuthRepository) FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	args := m.Called(ctx, userID, provider)
	auth, _ := args.Get(0).(*entity.Authentication)

	return auth, args.Error(1)
}

// MockProblemRepository is a mock of repository.ProblemRepository.
type MockProblemRepository struct {
	mock.Mock
}

// NewMockProblemRepository creates a mock that asserts its expectations when the test ends.
func NewMockProblemRepository(t *testing.T) *MockProblemRepository {
	m := &MockProblemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProblemRepository) Create(ctx context.Context, problem *entity.DSAProblem) error {
	return m.Called(ctx, problem).Error(0)
}

func (m *MockProblemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error) {
	args := m.Called(ctx, id)
	problem, _ := args.Get(0).(*entity.DSAProblem)

	return problem, args.Error(1)
}

func (m *MockProblemRepository) FindByTitle(ctx context.Context, title string) (*entity.DSAProblem, error) {
	args := m.Called(ctx, title)
	problem, _ := args.Get(0).(*entity.DSAProblem)

	return problem, args.Error(1)
}

func (m *MockProblemRepository) List(ctx context.Context, filter repository.ProblemFilter) ([]*entity.DSAProblem, error) {
	args := m.Called(ctx, filter)
	problems, _ := args.Get(0).([]*entity.DSAProblem)

	return problems, args.Error(1)
}

// MockQuestionRepository is a mock of repository.QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

// NewMockQuestionRepository creates a mock that asserts its expectations when the test ends.
func NewMockQuestionRepository(t *testing.T) *MockQuestionRepository {
	m := &MockQuestionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.InterviewQuestion) error {
	return m.Called(ctx, question).Error(0)
}

func (m *MockQuestionRepository) FindByQuestion(ctx context.Context, question string) (*entity.InterviewQuestion, error) {
	args := m.Called(ctx, question)
	found, _ := args.Get(0).(*entity.InterviewQuestion)

	return found, args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context, filter repository.QuestionFilter) ([]*entity.InterviewQuestion, error) {
	args := m.Called(ctx, filter)
	questions, _ := args.Get(0).([]*entity.InterviewQuestion)

	return questions, args.Error(1)
}
